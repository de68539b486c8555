/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package instant provides the canonical point-in-time value used across the
library: whole seconds plus a millisecond remainder, both unsigned 64 bit,
counted from 1601-01-01T00:00:00Z. The reference date predates every epoch
we convert to, so all epoch offsets are non-negative and conversions only
ever subtract in one direction.

All arithmetic here is exact integer arithmetic. Floating point would lose
sub-second precision on 100ns tick conversions, so it is never used.
*/
package instant

// Unit is a time unit an Instant can be expressed in.
type Unit int

// Units supported by the conversion and diff engines.
const (
	Seconds Unit = iota
	Milliseconds
	Microseconds
	HundredNanoseconds
)

// TicksPerSecond returns how many ticks of the unit make up one second.
func (u Unit) TicksPerSecond() uint64 {
	switch u {
	case Milliseconds:
		return 1e3
	case Microseconds:
		return 1e6
	case HundredNanoseconds:
		return 1e7
	default:
		return 1
	}
}

// TicksPerMilli returns how many ticks of the unit make up one millisecond.
// Zero for units coarser than a millisecond: the sub-second remainder is
// truncated away when scaling into them.
func (u Unit) TicksPerMilli() uint64 {
	switch u {
	case Milliseconds:
		return 1
	case Microseconds:
		return 1e3
	case HundredNanoseconds:
		return 1e4
	default:
		return 0
	}
}

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	case Microseconds:
		return "us"
	case HundredNanoseconds:
		return "100ns"
	}
	return "unit?"
}

// Instant is a point in time: seconds and a millisecond remainder counted
// from 1601-01-01T00:00:00Z. The zero value is the reference date itself.
// Instants are immutable; everything operating on them returns new values.
type Instant struct {
	secs   uint64
	millis uint64
}

// New builds an Instant from whole seconds and a millisecond remainder
// since the reference date. A remainder of 1000 or more is carried into
// the seconds so that Millis() is always below 1000.
func New(secs, millis uint64) Instant {
	return Instant{secs: secs + millis/1000, millis: millis % 1000}
}

// FromMilli builds an Instant from total milliseconds since the reference date.
func FromMilli(total uint64) Instant {
	return Instant{secs: total / 1000, millis: total % 1000}
}

// Seconds returns whole seconds since the reference date.
func (x Instant) Seconds() uint64 {
	return x.secs
}

// Millis returns the sub-second remainder, always in [0, 999].
func (x Instant) Millis() uint64 {
	return x.millis
}

// TotalMilli returns the instant as total milliseconds since the reference
// date. This is the library's canonical raw form.
func (x Instant) TotalMilli() uint64 {
	return x.secs*1000 + x.millis
}

// Equal reports whether two instants are the same point in time.
func (x Instant) Equal(o Instant) bool {
	return x.secs == o.secs && x.millis == o.millis
}

// Before reports whether x is earlier than o.
func (x Instant) Before(o Instant) bool {
	return x.secs < o.secs || (x.secs == o.secs && x.millis < o.millis)
}

// After reports whether x is later than o.
func (x Instant) After(o Instant) bool {
	return o.Before(x)
}

// Compare orders two instants lexicographically by (seconds, millis),
// returning -1, 0 or +1.
func (x Instant) Compare(o Instant) int {
	switch {
	case x.Before(o):
		return -1
	case x.After(o):
		return 1
	default:
		return 0
	}
}

// Diff returns |a-b| expressed in the requested unit. The difference is
// computed with borrow arithmetic on the (seconds, millis) pair, so it
// never goes through floating point and never wraps for instants the
// representation can hold. Scaling down to seconds truncates, matching
// the conversion engine's rule. There is no error path: a difference is
// always well-defined and non-negative.
func Diff(a, b Instant, u Unit) uint64 {
	hi, lo := a, b
	if hi.Before(lo) {
		hi, lo = lo, hi
	}
	secs := hi.secs - lo.secs
	var millis uint64
	if hi.millis >= lo.millis {
		millis = hi.millis - lo.millis
	} else {
		secs--
		millis = hi.millis + 1000 - lo.millis
	}
	if u == Seconds {
		return secs
	}
	return (secs*1000 + millis) * u.TicksPerMilli()
}

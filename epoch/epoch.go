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
Package epoch holds the table of supported timestamp epochs and the
conversion engine between raw epoch timestamps and the canonical Instant.

Every epoch is described by a fixed offset from the 1601-01-01 reference
date and a native unit. The offsets are compile-time constants; they are
never recomputed at runtime. Conversions are pure functions over the
inputs and use overflow-checked integer arithmetic only.
*/
package epoch

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/werdl/thetime/instant"
)

// Offsets of each epoch's reference date from 1601-01-01T00:00:00Z, in
// seconds. Windows and WebKit share the reference date itself.
const (
	UnixOffsetSeconds          uint64 = 11644473600 // 1970-01-01
	WindowsOffsetSeconds       uint64 = 0           // 1601-01-01
	WebKitOffsetSeconds        uint64 = 0           // 1601-01-01
	MacOSOffsetSeconds         uint64 = 9561628800  // 1904-01-01
	MacOSAbsoluteOffsetSeconds uint64 = 12622780800 // 2001-01-01
	SAS4GLOffsetSeconds        uint64 = 11328854400 // 1960-01-01
)

// Epoch names a supported timestamp epoch.
type Epoch int

const (
	Unix Epoch = iota
	Windows
	MacOS
	MacOSAbsolute
	SAS4GL
	WebKit
)

// Errors returned by the conversion engine. Both are checked with errors.Is.
var (
	// ErrUnderflow means the instant predates the requested epoch's
	// reference date, e.g. asking a pre-1904 instant for its MacOS value.
	ErrUnderflow = errors.New("instant predates epoch")
	// ErrOverflow means the conversion result does not fit in uint64.
	// Timestamps never silently wrap.
	ErrOverflow = errors.New("epoch conversion overflows uint64")
)

// Descriptor is the static description of one epoch: its distance from the
// reference date and the unit its raw timestamps are counted in.
type Descriptor struct {
	Name          string
	OffsetSeconds uint64
	NativeUnit    instant.Unit
}

// exactly one descriptor per epoch, indexed by the Epoch constants above
var table = [...]Descriptor{
	Unix:          {Name: "unix", OffsetSeconds: UnixOffsetSeconds, NativeUnit: instant.Seconds},
	Windows:       {Name: "windows", OffsetSeconds: WindowsOffsetSeconds, NativeUnit: instant.HundredNanoseconds},
	MacOS:         {Name: "macos", OffsetSeconds: MacOSOffsetSeconds, NativeUnit: instant.Seconds},
	MacOSAbsolute: {Name: "macos-absolute", OffsetSeconds: MacOSAbsoluteOffsetSeconds, NativeUnit: instant.Seconds},
	SAS4GL:        {Name: "sas-4gl", OffsetSeconds: SAS4GLOffsetSeconds, NativeUnit: instant.Seconds},
	WebKit:        {Name: "webkit", OffsetSeconds: WebKitOffsetSeconds, NativeUnit: instant.Microseconds},
}

// Describe returns the epoch's static descriptor.
func (e Epoch) Describe() (Descriptor, error) {
	if e < Unix || int(e) >= len(table) {
		return Descriptor{}, fmt.Errorf("unknown epoch %d", int(e))
	}
	return table[e], nil
}

func (e Epoch) String() string {
	d, err := e.Describe()
	if err != nil {
		return "epoch?"
	}
	return d.Name
}

// ToEpoch expresses the instant as a raw timestamp of the given epoch in
// the given unit. It fails with ErrUnderflow when the instant predates the
// epoch and with ErrOverflow when the result does not fit in uint64.
// Scaling down to a coarser unit truncates, never rounds.
func ToEpoch(x instant.Instant, e Epoch, u instant.Unit) (uint64, error) {
	d, err := e.Describe()
	if err != nil {
		return 0, err
	}
	secs := x.Seconds()
	if secs < d.OffsetSeconds {
		return 0, fmt.Errorf("%w: instant %ds since 1601 is before %s reference date", ErrUnderflow, secs, d.Name)
	}
	secs -= d.OffsetSeconds
	if u == instant.Seconds {
		return secs, nil
	}
	hi, ticks := bits.Mul64(secs, u.TicksPerSecond())
	if hi != 0 {
		return 0, fmt.Errorf("%w: %ds since %s in %s", ErrOverflow, secs, d.Name, u)
	}
	total, carry := bits.Add64(ticks, x.Millis()*u.TicksPerMilli(), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %ds since %s in %s", ErrOverflow, secs, d.Name, u)
	}
	return total, nil
}

// Native expresses the instant as a raw timestamp in the epoch's native unit.
func Native(x instant.Instant, e Epoch) (uint64, error) {
	d, err := e.Describe()
	if err != nil {
		return 0, err
	}
	return ToEpoch(x, e, d.NativeUnit)
}

// FromEpoch interprets a raw timestamp of the given epoch in the given unit
// and returns the canonical Instant. Sub-millisecond precision in the raw
// value is truncated away. Fails with ErrOverflow if the instant's seconds
// would wrap past uint64.
func FromEpoch(raw uint64, e Epoch, u instant.Unit) (instant.Instant, error) {
	d, err := e.Describe()
	if err != nil {
		return instant.Instant{}, err
	}
	perSec := u.TicksPerSecond()
	secs := raw / perSec
	// rem < 10^7 so rem*1000 cannot overflow; the division is exact per unit
	millis := (raw % perSec) * 1000 / perSec
	total, carry := bits.Add64(secs, d.OffsetSeconds, 0)
	if carry != 0 {
		return instant.Instant{}, fmt.Errorf("%w: %d %s since %s", ErrOverflow, raw, u, d.Name)
	}
	return instant.New(total, millis), nil
}

// FromNative interprets a raw timestamp in the epoch's native unit.
func FromNative(raw uint64, e Epoch) (instant.Instant, error) {
	d, err := e.Describe()
	if err != nil {
		return instant.Instant{}, err
	}
	return FromEpoch(raw, e, d.NativeUnit)
}

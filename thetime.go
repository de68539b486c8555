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
Package thetime is a unified time representation and conversion library.

An instant is held in one canonical form (seconds plus milliseconds since
1601-01-01T00:00:00Z) and converted losslessly, with overflow-checked
integer arithmetic, to and from Unix, Windows/LDAP 100ns ticks, MacOS,
MacOS Absolute (CFAbsoluteTime), SAS 4GL and WebKit/Chromium timestamps.
Instants come from one of two interchangeable sources, the system clock
or an NTP server, from parsing text, or from raw epoch integers; the
conversion, diff and formatting machinery is source-agnostic, so
instants from different sources mix freely.

	sys, _ := thetime.System{}.Now()
	srv, _ := thetime.NewNTP("pool.ntp.org", 0).Now()
	fmt.Println(thetime.TSPrint(sys.Diff(srv)))
*/
package thetime

import (
	"github.com/werdl/thetime/epoch"
	"github.com/werdl/thetime/instant"
	"github.com/werdl/thetime/strtime"
)

// Origin tags which time source produced a Stamp. It carries no state
// beyond the provenance: every operation works the same on both.
type Origin int

const (
	// OriginSystem marks stamps produced from the OS clock; parsed and
	// raw-integer stamps default to it as well.
	OriginSystem Origin = iota
	// OriginNTP marks stamps produced by an NTP query.
	OriginNTP
)

func (o Origin) String() string {
	if o == OriginNTP {
		return "ntp"
	}
	return "system"
}

// Stamp is an instant plus its provenance: the source that produced it,
// the display UTC offset (zero unless the stamp was parsed with %z or
// re-labeled with ChangeTZ; the instant itself is always UTC), and the
// server it came from when the origin is NTP. Stamps are immutable.
type Stamp struct {
	at     instant.Instant
	origin Origin
	offset int32
	server string
}

// FromInstant wraps a canonical instant into a Stamp with the given origin.
func FromInstant(at instant.Instant, origin Origin) Stamp {
	return Stamp{at: at, origin: origin}
}

// Instant returns the canonical instant.
func (s Stamp) Instant() instant.Instant {
	return s.at
}

// Origin returns the source tag.
func (s Stamp) Origin() Origin {
	return s.origin
}

// Server returns the NTP server that produced this stamp, or "" for
// non-NTP origins.
func (s Stamp) Server() string {
	return s.server
}

// Epoch returns the canonical raw form: milliseconds since 1601-01-01.
func (s Stamp) Epoch() uint64 {
	return s.at.TotalMilli()
}

// In expresses the stamp in an arbitrary (epoch, unit) pair. The named
// accessors below cover the common cases.
func (s Stamp) In(e epoch.Epoch, u instant.Unit) (uint64, error) {
	return epoch.ToEpoch(s.at, e, u)
}

// Unix returns seconds since 1970-01-01.
func (s Stamp) Unix() (uint64, error) {
	return epoch.ToEpoch(s.at, epoch.Unix, instant.Seconds)
}

// UnixMilli returns milliseconds since 1970-01-01.
func (s Stamp) UnixMilli() (uint64, error) {
	return epoch.ToEpoch(s.at, epoch.Unix, instant.Milliseconds)
}

// WindowsNs returns 100-nanosecond ticks since 1601-01-01, the
// Windows/LDAP FILETIME scale.
func (s Stamp) WindowsNs() (uint64, error) {
	return epoch.ToEpoch(s.at, epoch.Windows, instant.HundredNanoseconds)
}

// Webkit returns microseconds since 1601-01-01, the WebKit/Chromium scale.
func (s Stamp) Webkit() (uint64, error) {
	return epoch.ToEpoch(s.at, epoch.WebKit, instant.Microseconds)
}

// MacOS returns seconds since 1904-01-01 (classic MacOS epoch).
func (s Stamp) MacOS() (uint64, error) {
	return epoch.ToEpoch(s.at, epoch.MacOS, instant.Seconds)
}

// MacOSCFA returns seconds since 2001-01-01 (CFAbsoluteTime).
func (s Stamp) MacOSCFA() (uint64, error) {
	return epoch.ToEpoch(s.at, epoch.MacOSAbsolute, instant.Seconds)
}

// SAS4GL returns seconds since 1960-01-01.
func (s Stamp) SAS4GL() (uint64, error) {
	return epoch.ToEpoch(s.at, epoch.SAS4GL, instant.Seconds)
}

// Strftime renders the stamp with strftime-style directives, applying the
// display offset.
func (s Stamp) Strftime(pattern string) string {
	return strtime.Format(s.at, s.offset, pattern)
}

// Pretty renders the stamp as "2006-01-02 15:04:05".
func (s Stamp) Pretty() string {
	return s.Strftime("%Y-%m-%d %H:%M:%S")
}

func (s Stamp) String() string {
	return s.Pretty()
}

// ISO8601 renders the stamp in UTC with millisecond precision.
func (s Stamp) ISO8601() string {
	return strtime.FormatISO8601(s.at)
}

// RFC3339 renders the stamp with its offset marker: Z for UTC stamps,
// +HH:MM otherwise.
func (s Stamp) RFC3339() string {
	return strtime.FormatRFC3339(s.at, s.offset)
}

// Diff returns |s-other| in whole seconds, regardless of which sources
// produced the two stamps.
func (s Stamp) Diff(other Stamp) uint64 {
	return instant.Diff(s.at, other.at, instant.Seconds)
}

// DiffMilli returns |s-other| in milliseconds.
func (s Stamp) DiffMilli(other Stamp) uint64 {
	return instant.Diff(s.at, other.at, instant.Milliseconds)
}

// DiffIn returns |s-other| in the requested unit.
func (s Stamp) DiffIn(other Stamp, u instant.Unit) uint64 {
	return instant.Diff(s.at, other.at, u)
}

// Compare orders two stamps by instant, returning -1, 0 or +1.
func (s Stamp) Compare(other Stamp) int {
	return s.at.Compare(other.at)
}

// Relation says whether one stamp lies before, at or after another.
type Relation int

const (
	Past Relation = iota - 1
	Present
	Future
)

func (r Relation) String() string {
	switch r {
	case Past:
		return "past"
	case Future:
		return "future"
	default:
		return "present"
	}
}

// PastFuture reports where s lies relative to other.
func (s Stamp) PastFuture(other Stamp) Relation {
	return Relation(s.at.Compare(other.at))
}

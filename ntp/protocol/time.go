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

package protocol

import (
	"github.com/werdl/thetime/instant"
)

// SecondsTo1900 is the distance between the canonical 1601 reference date
// and NTP era 0 (1900-01-01T00:00:00Z), in seconds.
const SecondsTo1900 = uint64(9435484800)

// ToInstant converts an NTP wire timestamp (seconds since 1900 plus a
// 32-bit binary fraction of a second) into a canonical instant. The
// fraction scales to milliseconds by exact integer shift; anything finer
// is truncated.
func ToInstant(sec, frac uint32) instant.Instant {
	millis := uint64(frac) * 1000 >> 32
	return instant.New(uint64(sec)+SecondsTo1900, millis)
}

// FromInstant converts a canonical instant into NTP wire seconds and
// fraction. Instants before 1900 and after the 32-bit NTP era are not
// representable; ok is false for those.
func FromInstant(x instant.Instant) (sec, frac uint32, ok bool) {
	secs := x.Seconds()
	if secs < SecondsTo1900 {
		return 0, 0, false
	}
	secs -= SecondsTo1900
	if secs > 0xFFFFFFFF {
		return 0, 0, false
	}
	// ceiling division keeps ToInstant(FromInstant(x)) exact at ms precision
	frac64 := ((x.Millis() << 32) + 999) / 1000
	return uint32(secs), uint32(frac64), true
}

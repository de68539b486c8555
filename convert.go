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

package thetime

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/werdl/thetime/epoch"
	"github.com/werdl/thetime/instant"
)

// The From* functions lift raw epoch integers into Stamps. They are
// generic over the unsigned integer types: raw timestamps are counts
// since an epoch, so negatives have no meaning here. Each can fail with
// epoch.ErrOverflow when the value does not fit the canonical range.

// FromUnix converts seconds since 1970-01-01.
func FromUnix[T constraints.Unsigned](raw T, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), epoch.Unix, instant.Seconds, origin)
}

// FromUnixMilli converts milliseconds since 1970-01-01.
func FromUnixMilli[T constraints.Unsigned](raw T, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), epoch.Unix, instant.Milliseconds, origin)
}

// FromWindowsNs converts 100ns ticks since 1601-01-01 (FILETIME).
func FromWindowsNs[T constraints.Unsigned](raw T, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), epoch.Windows, instant.HundredNanoseconds, origin)
}

// FromWebkit converts microseconds since 1601-01-01.
func FromWebkit[T constraints.Unsigned](raw T, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), epoch.WebKit, instant.Microseconds, origin)
}

// FromMacOS converts seconds since 1904-01-01.
func FromMacOS[T constraints.Unsigned](raw T, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), epoch.MacOS, instant.Seconds, origin)
}

// FromMacOSCFA converts seconds since 2001-01-01 (CFAbsoluteTime).
func FromMacOSCFA[T constraints.Unsigned](raw T, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), epoch.MacOSAbsolute, instant.Seconds, origin)
}

// FromSAS4GL converts seconds since 1960-01-01.
func FromSAS4GL[T constraints.Unsigned](raw T, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), epoch.SAS4GL, instant.Seconds, origin)
}

// FromEpochRaw converts a raw value of any supported (epoch, unit) pair.
func FromEpochRaw[T constraints.Unsigned](raw T, e epoch.Epoch, u instant.Unit, origin Origin) (Stamp, error) {
	return fromEpoch(uint64(raw), e, u, origin)
}

func fromEpoch(raw uint64, e epoch.Epoch, u instant.Unit, origin Origin) (Stamp, error) {
	at, err := epoch.FromEpoch(raw, e, u)
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{at: at, origin: origin}, nil
}

// TSPrint renders an elapsed-seconds count as "0w 0d 1h 0m 0s". Weeks are
// the largest unit: years are too irregular to print unambiguously.
func TSPrint[T constraints.Unsigned](totalSeconds T) string {
	s := uint64(totalSeconds)
	return fmt.Sprintf("%dw %dd %dh %dm %ds",
		s/604800,
		s%604800/86400,
		s%86400/3600,
		s%3600/60,
		s%60)
}

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
	"github.com/werdl/thetime/strtime"
	"github.com/werdl/thetime/timezone"
)

// UTCOffset returns the stamp's display offset in seconds east of UTC.
func (s Stamp) UTCOffset() int32 {
	return s.offset
}

// TZOffset returns the display offset formatted as ±HH:MM.
func (s Stamp) TZOffset() string {
	return timezone.OffsetString(s.offset)
}

// ChangeTZ re-labels the stamp with a display offset given as "Z", "±HHMM"
// or "±HH:MM", relative to UTC. The canonical instant is unchanged: only
// rendering moves, so Diff and the epoch conversions are unaffected.
func (s Stamp) ChangeTZ(offset string) (Stamp, error) {
	off, err := strtime.ParseOffset(offset)
	if err != nil {
		return Stamp{}, err
	}
	s.offset = off
	return s, nil
}

// InZone re-labels the stamp with the display offset of a named zone from
// the timezone table, e.g. "IST" or "PST".
func (s Stamp) InZone(name string) (Stamp, error) {
	off, err := timezone.Offset(name)
	if err != nil {
		return Stamp{}, err
	}
	s.offset = off
	return s, nil
}

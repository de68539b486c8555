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
)

// ParseTime parses a string against a strptime-style pattern into a Stamp
// tagged with the given origin. The instant is stored in UTC; an offset
// parsed via %z becomes the stamp's display offset. Fails with
// strtime.ErrParseMismatch when the input does not conform to the pattern.
func ParseTime(s, pattern string, origin Origin) (Stamp, error) {
	at, offset, err := strtime.Parse(s, pattern)
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{at: at, origin: origin, offset: offset}, nil
}

// StrpISO8601 parses "2006-01-02T15:04:05.000".
func StrpISO8601(s string, origin Origin) (Stamp, error) {
	return ParseTime(s, strtime.PatternISO8601, origin)
}

// StrpRFC3339 parses "2006-01-02T15:04:05.000Z" or the same with a
// numeric UTC offset; the instant is adjusted to UTC before storing.
func StrpRFC3339(s string, origin Origin) (Stamp, error) {
	return ParseTime(s, strtime.PatternRFC3339, origin)
}

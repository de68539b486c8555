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

package strtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/werdl/thetime/epoch"
	"github.com/werdl/thetime/instant"
)

// 2017-01-01T00:00:00Z
const canon2017 = uint64(11644473600 + 1483228800)

func TestParseBasic(t *testing.T) {
	x, off, err := Parse("2017-01-01 00:00:00", "%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)
	require.Equal(t, int32(0), off)
	require.Equal(t, canon2017, x.Seconds())
	require.Equal(t, uint64(0), x.Millis())

	got, err := epoch.ToEpoch(x, epoch.Unix, instant.Seconds)
	require.NoError(t, err)
	require.Equal(t, uint64(1483228800), got)
}

func TestParseWithOffsetAdjustsToUTC(t *testing.T) {
	x, off, err := Parse("2021-01-01 00:00:00 +0000", "%Y-%m-%d %H:%M:%S %z")
	require.NoError(t, err)
	require.Equal(t, int32(0), off)
	unix, err := epoch.ToEpoch(x, epoch.Unix, instant.Seconds)
	require.NoError(t, err)
	require.Equal(t, uint64(1609459200), unix)

	// one hour east of UTC: same wall clock is an hour earlier in UTC
	east, off, err := Parse("2021-01-01 01:00:00 +01:00", "%Y-%m-%d %H:%M:%S %z")
	require.NoError(t, err)
	require.Equal(t, int32(3600), off)
	require.True(t, east.Equal(x))

	west, off, err := Parse("2020-12-31 19:00:00 -0500", "%Y-%m-%d %H:%M:%S %z")
	require.NoError(t, err)
	require.Equal(t, int32(-5*3600), off)
	require.True(t, west.Equal(x))
}

func TestParseNamedFields(t *testing.T) {
	x, _, err := Parse("2017-January-01 12:30:45", "%Y-%B-%d %H:%M:%S")
	require.NoError(t, err)
	require.Equal(t, canon2017+12*3600+30*60+45, x.Seconds())

	y, _, err := Parse("01 Jan 2017 12:30:45 PM", "%d %b %Y %I:%M:%S %p")
	require.NoError(t, err)
	require.True(t, y.Equal(x))

	z, _, err := Parse("Sun 2017-01-01", "%a %Y-%m-%d")
	require.NoError(t, err)
	require.Equal(t, canon2017, z.Seconds())
}

func TestParseFraction(t *testing.T) {
	x, _, err := Parse("2017-01-01T00:00:00.250", PatternISO8601)
	require.NoError(t, err)
	require.Equal(t, uint64(250), x.Millis())

	// short and long fractions rescale to milliseconds, truncating
	y, _, err := Parse("2017-01-01T00:00:00.2", PatternISO8601)
	require.NoError(t, err)
	require.Equal(t, uint64(200), y.Millis())

	z, _, err := Parse("2017-01-01T00:00:00.123456789", PatternISO8601)
	require.NoError(t, err)
	require.Equal(t, uint64(123), z.Millis())
}

func TestParseMismatch(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		pattern string
	}{
		{name: "wrong separator", input: "2017/01/01 00:00:00", pattern: "%Y-%m-%d %H:%M:%S"},
		{name: "month out of range", input: "2017-13-01 00:00:00", pattern: "%Y-%m-%d %H:%M:%S"},
		{name: "no such date", input: "2017-02-30 00:00:00", pattern: "%Y-%m-%d %H:%M:%S"},
		{name: "hour out of range", input: "2017-01-01 25:00:00", pattern: "%Y-%m-%d %H:%M:%S"},
		{name: "not numeric", input: "2017-ab-01 00:00:00", pattern: "%Y-%m-%d %H:%M:%S"},
		{name: "truncated input", input: "2017-01", pattern: "%Y-%m-%d"},
		{name: "trailing garbage", input: "2017-01-01x", pattern: "%Y-%m-%d"},
		{name: "bad month name", input: "2017-Janvier-01", pattern: "%Y-%B-%d"},
		{name: "bad offset", input: "2017-01-01 00:00:00 +25:00", pattern: "%Y-%m-%d %H:%M:%S %z"},
		{name: "predates 1601", input: "1600-12-31 23:59:59", pattern: "%Y-%m-%d %H:%M:%S"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.input, tc.pattern)
			require.ErrorIs(t, err, ErrParseMismatch)
		})
	}
}

func TestFormat(t *testing.T) {
	x := instant.New(canon2017, 0)
	testCases := []struct {
		pattern string
		want    string
	}{
		{pattern: "%Y-%m-%d %H:%M:%S", want: "2017-01-01 00:00:00"},
		{pattern: "%Y-%B-%d", want: "2017-January-01"},
		{pattern: "%a %b %e", want: "Sun Jan  1"},
		{pattern: "%A", want: "Sunday"},
		{pattern: "%y %j", want: "17 001"},
		{pattern: "%I:%M %p", want: "12:00 AM"},
		{pattern: "100%%", want: "100%"},
		{pattern: "%Q", want: "%Q"}, // unknown directives pass through
	}
	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			require.Equal(t, tc.want, Format(x, 0, tc.pattern))
		})
	}
}

func TestFormatWithOffset(t *testing.T) {
	x := instant.New(canon2017, 0)
	require.Equal(t, "2017-01-01 01:00:00 +0100", Format(x, 3600, "%Y-%m-%d %H:%M:%S %z"))
	require.Equal(t, "2016-12-31 19:00:00 -0500", Format(x, -5*3600, "%Y-%m-%d %H:%M:%S %z"))
	require.Equal(t, "UTC", Format(x, 0, "%Z"))
	require.Equal(t, "+05:30", Format(x, 19800, "%Z"))
}

func TestParseFormatInverse(t *testing.T) {
	const pattern = "%Y-%m-%d %H:%M:%S.%f"
	for _, s := range []string{
		"2017-01-01 00:00:00.000",
		"2024-01-05 14:46:29.123",
		"1899-12-31 23:59:59.999",
		"1960-01-01 00:00:00.001",
	} {
		x, _, err := Parse(s, pattern)
		require.NoError(t, err)
		require.Equal(t, s, Format(x, 0, pattern))
	}
}

func TestISO8601(t *testing.T) {
	x, err := ParseISO8601("2017-01-01T00:00:00.000")
	require.NoError(t, err)
	unix, err := epoch.ToEpoch(x, epoch.Unix, instant.Seconds)
	require.NoError(t, err)
	require.Equal(t, uint64(1483228800), unix)

	require.Equal(t, "2017-01-01T00:00:00.000", FormatISO8601(x))
}

func TestRFC3339(t *testing.T) {
	x, off, err := ParseRFC3339("2017-01-01T00:00:00.000Z")
	require.NoError(t, err)
	require.Equal(t, int32(0), off)
	unix, err := epoch.ToEpoch(x, epoch.Unix, instant.Seconds)
	require.NoError(t, err)
	require.Equal(t, uint64(1483228800), unix)

	require.Equal(t, "2017-01-01T00:00:00.000Z", FormatRFC3339(x, 0))
	require.Equal(t, "2017-01-01T05:30:00.000+05:30", FormatRFC3339(x, 19800))

	// numeric offsets are adjusted to UTC before storing
	y, off, err := ParseRFC3339("2017-01-01T05:30:00.000+05:30")
	require.NoError(t, err)
	require.Equal(t, int32(19800), off)
	require.True(t, y.Equal(x))
}

func TestFormatFarOutsideUnixRange(t *testing.T) {
	// the reference date itself
	require.Equal(t, "1601-01-01 00:00:00", Format(instant.New(0, 0), 0, "%Y-%m-%d %H:%M:%S"))

	// a date past the 32-bit Unix range
	x, _, err := Parse("2106-02-07 06:28:17", "%Y-%m-%d %H:%M:%S")
	require.NoError(t, err)
	require.Equal(t, "2106-02-07 06:28:17", Format(x, 0, "%Y-%m-%d %H:%M:%S"))
}

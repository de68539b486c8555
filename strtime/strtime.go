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
Package strtime is the text codec for canonical instants: strftime-style
formatting, strptime-style parsing, and the fixed ISO-8601 / RFC-3339
patterns built on top of them.

Calendar math (instant to year/month/day fields and back) is delegated to
the standard library's proleptic Gregorian calendar; this package only
implements the directive grammar. Instants are always stored in UTC; a
display offset, when present, is applied while rendering and stripped
while parsing.
*/
package strtime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/werdl/thetime/epoch"
	"github.com/werdl/thetime/instant"
)

// ErrParseMismatch means the input string does not conform to the pattern:
// a literal or separator differs, a field is not numeric where one is
// expected, or a field is out of range for a real calendar date.
var ErrParseMismatch = errors.New("input does not match pattern")

// Fixed patterns bound by the ISO-8601 and RFC-3339 helpers.
const (
	PatternISO8601 = "%Y-%m-%dT%H:%M:%S.%f"
	PatternRFC3339 = "%Y-%m-%dT%H:%M:%S.%f%z"
)

// civil converts an instant, shifted by a display offset in seconds east
// of UTC, into calendar fields. The stdlib calendar is proleptic Gregorian
// and exact far outside the Unix range, which is all we need from the
// external calendar capability.
func civil(x instant.Instant, offsetSec int32) time.Time {
	unix := int64(x.Seconds()) - int64(epoch.UnixOffsetSeconds) + int64(offsetSec)
	return time.Unix(unix, 0).UTC()
}

// Format renders the instant according to the strftime-style pattern,
// applying the display offset to the calendar fields. Unrecognized
// directives are emitted literally.
func Format(x instant.Instant, offsetSec int32, pattern string) string {
	t := civil(x, offsetSec)
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i == len(pattern)-1 {
			b.WriteByte(pattern[i])
			continue
		}
		i++
		switch pattern[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", t.Year())
		case 'y':
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case 'd':
			fmt.Fprintf(&b, "%02d", t.Day())
		case 'e':
			fmt.Fprintf(&b, "%2d", t.Day())
		case 'H':
			fmt.Fprintf(&b, "%02d", t.Hour())
		case 'I':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			fmt.Fprintf(&b, "%02d", h)
		case 'p':
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'M':
			fmt.Fprintf(&b, "%02d", t.Minute())
		case 'S':
			fmt.Fprintf(&b, "%02d", t.Second())
		case 'f':
			fmt.Fprintf(&b, "%03d", x.Millis())
		case 'a':
			b.WriteString(t.Weekday().String()[:3])
		case 'A':
			b.WriteString(t.Weekday().String())
		case 'b':
			b.WriteString(t.Month().String()[:3])
		case 'B':
			b.WriteString(t.Month().String())
		case 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		case 'z':
			b.WriteString(offsetString(offsetSec, ""))
		case 'Z':
			if offsetSec == 0 {
				b.WriteString("UTC")
			} else {
				b.WriteString(offsetString(offsetSec, ":"))
			}
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

// offsetString renders seconds east of UTC as +HHMM or +HH:MM.
func offsetString(offsetSec int32, sep string) string {
	sign := "+"
	if offsetSec < 0 {
		sign = "-"
		offsetSec = -offsetSec
	}
	return fmt.Sprintf("%s%02d%s%02d", sign, offsetSec/3600, sep, offsetSec%3600/60)
}

// FormatISO8601 renders the instant as 2006-01-02T15:04:05.000 in UTC.
func FormatISO8601(x instant.Instant) string {
	return Format(x, 0, PatternISO8601)
}

// FormatRFC3339 renders the instant with its display offset marker: a
// trailing Z for UTC, +HH:MM otherwise.
func FormatRFC3339(x instant.Instant, offsetSec int32) string {
	s := Format(x, offsetSec, "%Y-%m-%dT%H:%M:%S.%f")
	if offsetSec == 0 {
		return s + "Z"
	}
	return s + offsetString(offsetSec, ":")
}

// parser consumes the input string positionally against a pattern.
type parser struct {
	input string
	pos   int
}

func (p *parser) mismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s at byte %d of %q", ErrParseMismatch, fmt.Sprintf(format, args...), p.pos, p.input)
}

func (p *parser) literal(c byte) error {
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return p.mismatch("expected %q", string(c))
	}
	p.pos++
	return nil
}

// digits consumes between min and max consecutive ASCII digits.
func (p *parser) digits(min, max int) (int, error) {
	start := p.pos
	for p.pos < len(p.input) && p.pos-start < max && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos-start < min {
		return 0, p.mismatch("expected at least %d digits", min)
	}
	v := 0
	for _, c := range []byte(p.input[start:p.pos]) {
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// name consumes a case-insensitive match of one of the candidates,
// returning its index.
func (p *parser) name(candidates []string) (int, error) {
	rest := p.input[p.pos:]
	for i, c := range candidates {
		if len(rest) >= len(c) && strings.EqualFold(rest[:len(c)], c) {
			p.pos += len(c)
			return i, nil
		}
	}
	return 0, p.mismatch("expected one of %v", candidates)
}

// offset consumes a UTC offset: Z, z, +HHMM, -HHMM, +HH:MM or -HH:MM.
func (p *parser) offset() (int32, error) {
	if p.pos >= len(p.input) {
		return 0, p.mismatch("expected UTC offset")
	}
	switch p.input[p.pos] {
	case 'Z', 'z':
		p.pos++
		return 0, nil
	case '+', '-':
	default:
		return 0, p.mismatch("expected UTC offset")
	}
	neg := p.input[p.pos] == '-'
	p.pos++
	hours, err := p.digits(2, 2)
	if err != nil {
		return 0, err
	}
	if p.pos < len(p.input) && p.input[p.pos] == ':' {
		p.pos++
	}
	minutes, err := p.digits(2, 2)
	if err != nil {
		return 0, err
	}
	if hours > 23 || minutes > 59 {
		return 0, p.mismatch("offset %02d:%02d out of range", hours, minutes)
	}
	off := int32(hours*3600 + minutes*60)
	if neg {
		off = -off
	}
	return off, nil
}

var longMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var longDays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func short(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n[:3]
	}
	return out
}

// Parse tokenizes the pattern against the input, extracts the calendar
// fields and returns the UTC instant plus the UTC offset the input carried
// (zero when the pattern has no %z). The instant is always adjusted to UTC
// before being returned, so `2021-01-01 01:00:00 +0100` and
// `2021-01-01 00:00:00 Z` parse to the same instant.
func Parse(input, pattern string) (instant.Instant, int32, error) {
	p := &parser{input: input}
	year, month, day := 1970, 1, 1
	hour, minute, second := 0, 0, 0
	millis := 0
	hour12, pm := 0, false
	var offsetSec int32
	seen12Hour := false

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i == len(pattern)-1 {
			if err := p.literal(pattern[i]); err != nil {
				return instant.Instant{}, 0, err
			}
			continue
		}
		i++
		var err error
		switch pattern[i] {
		case 'Y':
			year, err = p.digits(1, 6)
		case 'y':
			year, err = p.digits(2, 2)
			if year >= 69 {
				year += 1900
			} else {
				year += 2000
			}
		case 'm':
			month, err = p.digits(1, 2)
		case 'b':
			month, err = p.name(short(longMonths))
			month++
		case 'B':
			month, err = p.name(longMonths)
			month++
		case 'd', 'e':
			day, err = p.digits(1, 2)
		case 'H':
			hour, err = p.digits(1, 2)
		case 'I':
			hour12, err = p.digits(1, 2)
			seen12Hour = true
		case 'p':
			var idx int
			idx, err = p.name([]string{"AM", "PM"})
			pm = idx == 1
		case 'M':
			minute, err = p.digits(1, 2)
		case 'S':
			second, err = p.digits(1, 2)
		case 'f':
			start := p.pos
			var frac int
			frac, err = p.digits(1, 9)
			if err == nil {
				millis = rescaleFraction(frac, p.pos-start)
			}
		case 'a':
			_, err = p.name(short(longDays))
		case 'A':
			_, err = p.name(longDays)
		case 'j':
			// day of year is redundant next to %m/%d; consumed, not used
			_, err = p.digits(1, 3)
		case 'z':
			offsetSec, err = p.offset()
		case '%':
			err = p.literal('%')
		default:
			return instant.Instant{}, 0, p.mismatch("unsupported directive %%%s", string(pattern[i]))
		}
		if err != nil {
			return instant.Instant{}, 0, err
		}
	}
	if p.pos != len(p.input) {
		return instant.Instant{}, 0, p.mismatch("trailing input")
	}

	if seen12Hour {
		if hour12 < 1 || hour12 > 12 {
			return instant.Instant{}, 0, fmt.Errorf("%w: hour %d out of 12-hour range", ErrParseMismatch, hour12)
		}
		hour = hour12 % 12
		if pm {
			hour += 12
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return instant.Instant{}, 0, fmt.Errorf("%w: field out of range in %q", ErrParseMismatch, input)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes impossible dates (Feb 30 becomes Mar 2); reject them
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return instant.Instant{}, 0, fmt.Errorf("%w: no such date %04d-%02d-%02d", ErrParseMismatch, year, month, day)
	}

	// wall clock at +offset back to UTC, then onto the 1601 reference epoch
	canonical := t.Unix() - int64(offsetSec) + int64(epoch.UnixOffsetSeconds)
	if canonical < 0 {
		return instant.Instant{}, 0, fmt.Errorf("%w: %q predates 1601-01-01", ErrParseMismatch, input)
	}
	return instant.New(uint64(canonical), uint64(millis)), offsetSec, nil
}

// rescaleFraction turns n fraction digits into milliseconds, truncating
// anything finer.
func rescaleFraction(v, digits int) int {
	for ; digits < 3; digits++ {
		v *= 10
	}
	for ; digits > 3; digits-- {
		v /= 10
	}
	return v
}

// ParseOffset parses a standalone UTC offset: Z, ±HHMM or ±HH:MM.
func ParseOffset(s string) (int32, error) {
	p := &parser{input: s}
	off, err := p.offset()
	if err != nil {
		return 0, err
	}
	if p.pos != len(s) {
		return 0, p.mismatch("trailing input")
	}
	return off, nil
}

// ParseISO8601 parses the fixed ISO-8601 pattern with fractional seconds.
func ParseISO8601(input string) (instant.Instant, error) {
	x, _, err := Parse(input, PatternISO8601)
	return x, err
}

// ParseRFC3339 parses the fixed RFC-3339 pattern: fractional seconds plus
// a trailing Z or numeric UTC offset. The returned instant is UTC.
func ParseRFC3339(input string) (instant.Instant, int32, error) {
	return Parse(input, PatternRFC3339)
}

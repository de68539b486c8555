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

// Package timezone is a small table of common named UTC offsets. It is a
// name-to-offset lookup, not a timezone database: no DST rules, no
// historical transitions. Some abbreviations collide across regions
// (Arabia vs Atlantic Standard Time); colliding names resolve per the
// table below.
package timezone

import (
	"errors"
	"fmt"
)

// ErrUnknownZone means the name is not in the table.
var ErrUnknownZone = errors.New("unknown timezone")

// Offsets in seconds east of UTC.
const (
	UTC  int32 = 0      // Universal Standard Time, Western European Time
	BST  int32 = 3600   // British Summer Time, Central European Time
	CEST int32 = 7200   // Central European Summer Time, Eastern European Time
	EEST int32 = 10800  // Eastern European Summer Time, Arabian Standard Time
	IST  int32 = 19800  // Indian Standard Time
	ICT  int32 = 25200  // Indochina Time, Western Indonesian Time
	CST  int32 = 28800  // China Standard Time, Australian Western, Singapore, Hong Kong
	JST  int32 = 32400  // Japan Standard Time, Korea Standard Time
	ACST int32 = 34200  // Australian Central Standard Time
	AEST int32 = 36000  // Australian Eastern Standard Time, Chamorro Standard Time
	LHST int32 = 37800  // Lord Howe Standard Time
	NZST int32 = 43200  // New Zealand Standard Time, Fiji Time
	SST  int32 = -39600 // Samoa Standard Time
	HAST int32 = -36000 // Hawaii-Aleutian Standard Time
	AKST int32 = -32400 // Alaska Standard Time
	PST  int32 = -28800 // Pacific Standard Time
	MST  int32 = -25200 // Mountain Standard Time
	CENT int32 = -21600 // Central Standard Time (US)
	EST  int32 = -18000 // Eastern Standard Time
	AST  int32 = -14400 // Atlantic Standard Time, Chile Time
	NST  int32 = -12600 // Newfoundland Standard Time
	BRT  int32 = -10800 // Brazil Time, Argentina Time, Uruguay Time
)

var names = map[string]int32{
	"UTC": UTC, "WET": UTC,
	"BST": BST, "CET": BST,
	"CEST": CEST, "EET": CEST,
	"EEST": EEST, "ARST": EEST,
	"IST": IST,
	"ICT": ICT, "WIB": ICT,
	"CST": CST, "AWST": CST, "SGT": CST, "HKT": CST,
	"JST": JST, "KST": JST,
	"ACST": ACST,
	"AEST": AEST, "CHST": AEST,
	"LHST": LHST,
	"NZST": NZST, "FJT": NZST,
	"SST":  SST,
	"HAST": HAST,
	"AKST": AKST,
	"PST":  PST,
	"MST":  MST,
	"CENT": CENT,
	"EST":  EST,
	"AST":  AST, "CLT": AST,
	"NST": NST,
	"BRT": BRT, "ART": BRT, "UYT": BRT,
}

// Offset looks up a zone abbreviation, returning seconds east of UTC.
func Offset(name string) (int32, error) {
	off, ok := names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return off, nil
}

// OffsetString renders seconds east of UTC as ±HH:MM.
func OffsetString(offsetSec int32) string {
	sign := "+"
	if offsetSec < 0 {
		sign = "-"
		offsetSec = -offsetSec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetSec/3600, offsetSec%3600/60)
}

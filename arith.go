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
	"time"

	"github.com/werdl/thetime/epoch"
	"github.com/werdl/thetime/instant"
)

// AddSeconds returns the stamp shifted by n seconds, which may be
// negative. Shifting before 1601-01-01 fails with epoch.ErrUnderflow and
// wrapping past the representable range fails with epoch.ErrOverflow;
// stamps never wrap silently.
func (s Stamp) AddSeconds(n int64) (Stamp, error) {
	secs := s.at.Seconds()
	if n >= 0 {
		shifted := secs + uint64(n)
		if shifted < secs {
			return Stamp{}, fmt.Errorf("%w: %s + %ds", epoch.ErrOverflow, s, n)
		}
		s.at = instant.New(shifted, s.at.Millis())
		return s, nil
	}
	back := uint64(-n)
	if back > secs {
		return Stamp{}, fmt.Errorf("%w: %s - %ds crosses 1601-01-01", epoch.ErrUnderflow, s, back)
	}
	s.at = instant.New(secs-back, s.at.Millis())
	return s, nil
}

// AddMinutes returns the stamp shifted by n minutes.
func (s Stamp) AddMinutes(n int64) (Stamp, error) {
	return s.AddSeconds(n * 60)
}

// AddHours returns the stamp shifted by n hours.
func (s Stamp) AddHours(n int64) (Stamp, error) {
	return s.AddSeconds(n * 3600)
}

// AddDays returns the stamp shifted by n days.
func (s Stamp) AddDays(n int64) (Stamp, error) {
	return s.AddSeconds(n * 86400)
}

// AddWeeks returns the stamp shifted by n weeks. Weeks are the largest
// supported step: months and years are irregular.
func (s Stamp) AddWeeks(n int64) (Stamp, error) {
	return s.AddSeconds(n * 604800)
}

// Add returns the stamp shifted by a duration, at millisecond precision.
func (s Stamp) Add(d time.Duration) (Stamp, error) {
	shifted, err := s.AddSeconds(int64(d / time.Second))
	if err != nil {
		return Stamp{}, err
	}
	ms := int64(d % time.Second / time.Millisecond)
	total := int64(shifted.at.Millis()) + ms
	switch {
	case total < 0:
		return shifted.withBorrowedMillis(total)
	case total >= 1000:
		shifted.at = instant.New(shifted.at.Seconds()+1, uint64(total-1000))
	default:
		shifted.at = instant.New(shifted.at.Seconds(), uint64(total))
	}
	return shifted, nil
}

// withBorrowedMillis resolves a negative millisecond remainder by
// borrowing one second.
func (s Stamp) withBorrowedMillis(total int64) (Stamp, error) {
	secs := s.at.Seconds()
	if secs == 0 {
		return Stamp{}, fmt.Errorf("%w: duration crosses 1601-01-01", epoch.ErrUnderflow)
	}
	s.at = instant.New(secs-1, uint64(total+1000))
	return s, nil
}

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

// Package clock reads the OS wall clock. It is the only place the library
// touches the kernel clock, and the read is never retried: a broken clock
// is not recoverable in-process.
package clock

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrReadFailed means the OS clock could not be read. Callers should treat
// it as fatal.
var ErrReadFailed = errors.New("clock read failed")

// Read returns CLOCK_REALTIME as whole seconds since the Unix epoch plus
// the nanosecond remainder.
func Read() (secs int64, nsec int64, err error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return 0, 0, fmt.Errorf("%w: clock_gettime(CLOCK_REALTIME): %v", ErrReadFailed, err)
	}
	secs, nsec = ts.Unix()
	return secs, nsec, nil
}

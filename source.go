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

	"github.com/werdl/thetime/clock"
	"github.com/werdl/thetime/epoch"
	"github.com/werdl/thetime/instant"
	"github.com/werdl/thetime/ntp"
)

// Source produces "now" as a Stamp. The two implementations, System and
// NTP, are interchangeable: stamps from either feed the same conversion
// and diff machinery.
type Source interface {
	Now() (Stamp, error)
}

// System reads the OS wall clock.
type System struct{}

// Now reads CLOCK_REALTIME and converts it onto the canonical reference
// epoch. A clock read failure is fatal and propagates unwrapped; there is
// nothing to retry in-process.
func (System) Now() (Stamp, error) {
	secs, nsec, err := clock.Read()
	if err != nil {
		return Stamp{}, err
	}
	if secs < 0 {
		return Stamp{}, fmt.Errorf("%w: clock is set before 1970 (%d)", clock.ErrReadFailed, secs)
	}
	at := instant.New(uint64(secs)+epoch.UnixOffsetSeconds, uint64(nsec)/uint64(time.Millisecond))
	return Stamp{at: at, origin: OriginSystem}, nil
}

// NTP queries an NTP server for "now". The zero value queries the default
// public pool with the default timeout.
type NTP struct {
	Client ntp.Client
}

// NewNTP builds an NTP source for the given server ("" for the default
// pool) and timeout (0 for the default).
func NewNTP(server string, timeout time.Duration) *NTP {
	return &NTP{Client: ntp.Client{Server: server, Timeout: timeout}}
}

// Now performs one NTP round trip. On timeout or a malformed reply it
// fails with ntp.ErrQueryFailed; it never retries and never falls back to
// the system clock — the caller decides what a failed query means.
func (n *NTP) Now() (Stamp, error) {
	at, err := n.Client.Query()
	if err != nil {
		return Stamp{}, err
	}
	server := n.Client.Server
	if server == "" {
		server = ntp.DefaultServer
	}
	return Stamp{at: at, origin: OriginNTP, server: server}, nil
}

// Now is the package-level convenience for the common case: the system
// clock. NTP time is always requested explicitly through an NTP source.
func Now() (Stamp, error) {
	return System{}.Now()
}

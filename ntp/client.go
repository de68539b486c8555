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
Package ntp implements a best-effort unauthenticated SNTP client: one UDP
round trip per query, reduced to a canonical instant.

A query either fully succeeds or fails with ErrQueryFailed; nothing is
retried and nothing is defaulted. Retry policy, including re-querying a
different server, belongs to the caller. Each query owns its own socket
and buffers, so concurrent queries do not interfere.
*/
package ntp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/werdl/thetime/instant"
	"github.com/werdl/thetime/ntp/protocol"
)

// Defaults used by zero-value Client fields.
const (
	DefaultServer  = "pool.ntp.org"
	DefaultPort    = "123"
	DefaultTimeout = 5 * time.Second
)

// ErrQueryFailed covers every way a query can fail: unreachable server,
// timeout, short read, or a malformed reply. Checked with errors.Is.
var ErrQueryFailed = errors.New("ntp query failed")

// Client queries one NTP server. The zero value queries pool.ntp.org with
// a 5 second timeout. Connection, when set, replaces the UDP transport
// entirely (and with it the timeout handling), which is how tests inject
// a fake server.
type Client struct {
	Server     string
	Timeout    time.Duration
	Connection io.ReadWriter
}

// Query performs a single NTP round trip and returns the server's transmit
// timestamp as a canonical instant.
func (c *Client) Query() (instant.Instant, error) {
	conn := c.Connection
	if conn == nil {
		addr := serverAddr(c.Server)
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		netConn, err := net.DialTimeout("udp", addr, timeout)
		if err != nil {
			return instant.Instant{}, fmt.Errorf("%w: dialing %s: %v", ErrQueryFailed, addr, err)
		}
		defer netConn.Close()
		if err := netConn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return instant.Instant{}, fmt.Errorf("%w: setting deadline: %v", ErrQueryFailed, err)
		}
		log.Debugf("querying NTP server %s with timeout %s", addr, timeout)
		conn = netConn
	}
	return exchange(conn)
}

// exchange writes one request and reads one reply on an established
// connection.
func exchange(conn io.ReadWriter) (instant.Instant, error) {
	req, err := protocol.NewRequest().Bytes()
	if err != nil {
		return instant.Instant{}, fmt.Errorf("%w: encoding request: %v", ErrQueryFailed, err)
	}
	if _, err := conn.Write(req); err != nil {
		return instant.Instant{}, fmt.Errorf("%w: sending request: %v", ErrQueryFailed, err)
	}

	buf := make([]byte, protocol.PacketSizeBytes)
	n, err := conn.Read(buf)
	if err != nil {
		return instant.Instant{}, fmt.Errorf("%w: reading response: %v", ErrQueryFailed, err)
	}
	if n != protocol.PacketSizeBytes {
		return instant.Instant{}, fmt.Errorf("%w: response is %d bytes, want %d", ErrQueryFailed, n, protocol.PacketSizeBytes)
	}

	resp, err := protocol.BytesToPacket(buf)
	if err != nil {
		return instant.Instant{}, fmt.Errorf("%w: decoding response: %v", ErrQueryFailed, err)
	}
	if !resp.ValidServerResponse() {
		return instant.Instant{}, fmt.Errorf("%w: bad response settings leap=%d version=%d mode=%d", ErrQueryFailed, resp.Leap(), resp.Version(), resp.Mode())
	}
	if resp.ZeroTransmit() {
		return instant.Instant{}, fmt.Errorf("%w: zero transmit timestamp", ErrQueryFailed)
	}

	log.Debugf("NTP response: stratum=%d refid=0x%08x tx=%d.%d", resp.Stratum, resp.ReferenceID, resp.TxTimeSec, resp.TxTimeFrac)
	return protocol.ToInstant(resp.TxTimeSec, resp.TxTimeFrac), nil
}

// serverAddr normalizes a server name to host:port, defaulting both parts.
func serverAddr(server string) string {
	if server == "" {
		server = DefaultServer
	}
	if strings.Contains(server, ":") {
		return server
	}
	return net.JoinHostPort(server, DefaultPort)
}

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

package ntp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/werdl/thetime/instant"
	"github.com/werdl/thetime/ntp/protocol"
)

// fakeConn gives us a fake io.ReadWriter for which we can provide canned
// responses and assert the request that was written.
type fakeConn struct {
	response []byte
	readErr  error
	written  [][]byte
}

func (c *fakeConn) Write(p []byte) (int, error) {
	b := make([]byte, len(p))
	copy(b, p)
	c.written = append(c.written, b)
	return len(p), nil
}

func (c *fakeConn) Read(p []byte) (int, error) {
	if c.readErr != nil {
		return 0, c.readErr
	}
	return copy(p, c.response), nil
}

func serverResponse(t *testing.T, x instant.Instant) []byte {
	t.Helper()
	sec, frac, ok := protocol.FromInstant(x)
	require.True(t, ok)
	p := &protocol.Packet{
		Settings:  0x24, // leap 0, version 4, mode server
		Stratum:   1,
		TxTimeSec: sec, TxTimeFrac: frac,
	}
	b, err := p.Bytes()
	require.NoError(t, err)
	return b
}

func TestQuerySuccess(t *testing.T) {
	// 2017-01-01T00:00:00.500Z
	want := instant.New(11644473600+1483228800, 500)
	conn := &fakeConn{response: serverResponse(t, want)}
	c := &Client{Connection: conn}

	got, err := c.Query()
	require.NoError(t, err)
	require.True(t, got.Equal(want), "got %v", got)

	// exactly one request: 48 bytes, all zero except the settings byte
	require.Len(t, conn.written, 1)
	req := conn.written[0]
	require.Len(t, req, protocol.PacketSizeBytes)
	require.Equal(t, uint8(protocol.RequestSettings), req[0])
	for _, b := range req[1:] {
		require.Equal(t, uint8(0), b)
	}
}

func TestQueryReadError(t *testing.T) {
	conn := &fakeConn{readErr: errors.New("i/o timeout")}
	c := &Client{Connection: conn}
	_, err := c.Query()
	require.ErrorIs(t, err, ErrQueryFailed)
}

func TestQueryShortResponse(t *testing.T) {
	conn := &fakeConn{response: []byte{0x24, 1, 2}}
	c := &Client{Connection: conn}
	_, err := c.Query()
	require.ErrorIs(t, err, ErrQueryFailed)
}

func TestQueryWrongMode(t *testing.T) {
	// a reply in client mode is not a server response
	bad := serverResponse(t, instant.New(12000000000, 0))
	bad[0] = protocol.RequestSettings
	conn := &fakeConn{response: bad}
	c := &Client{Connection: conn}
	_, err := c.Query()
	require.ErrorIs(t, err, ErrQueryFailed)
}

func TestQueryZeroTransmit(t *testing.T) {
	p := &protocol.Packet{Settings: 0x24, Stratum: 1}
	b, err := p.Bytes()
	require.NoError(t, err)
	conn := &fakeConn{response: b}
	c := &Client{Connection: conn}
	_, err = c.Query()
	require.ErrorIs(t, err, ErrQueryFailed)
}

func TestQueryTimeoutBounded(t *testing.T) {
	// an unroutable address must fail within the configured timeout,
	// never block indefinitely
	c := &Client{Server: "127.0.0.1:1", Timeout: 200 * time.Millisecond}
	start := time.Now()
	_, err := c.Query()
	require.ErrorIs(t, err, ErrQueryFailed)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestServerAddr(t *testing.T) {
	require.Equal(t, "pool.ntp.org:123", serverAddr(""))
	require.Equal(t, "time.example.com:123", serverAddr("time.example.com"))
	require.Equal(t, "time.example.com:4123", serverAddr("time.example.com:4123"))
}

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
Package protocol implements the NTPv4 packet and conversions between NTP
wire timestamps and the canonical 1601-based instant. It provides quick
and transparent translation between 48 bytes and a simply accessible
struct in the most efficient way.
*/
package protocol

import (
	"bytes"
	"encoding/binary"
)

// PacketSizeBytes sets the size of NTP packet
const PacketSizeBytes = 48

// Packet is an NTPv4 packet
/*
http://seriot.ch/ntp.php
https://tools.ietf.org/html/rfc958
   0                   1                   2                   3
   0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
0 +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |LI | VN  |Mode |    Stratum     |     Poll      |  Precision   |
4 +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |                         Root Delay                            |
8 +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |                         Root Dispersion                       |
12+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |                          Reference ID                         |
16+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |                                                               |
  +                     Reference Timestamp (64)                  +
  |                                                               |
24+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |                                                               |
  +                      Origin Timestamp (64)                    +
  |                                                               |
32+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |                                                               |
  +                      Receive Timestamp (64)                   +
  |                                                               |
40+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
  |                                                               |
  +                      Transmit Timestamp (64)                  +
  |                                                               |
48+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

 0 1 2 3 4 5 6 7
+-+-+-+-+-+-+-+-+
|LI | VN  |Mode |
+-+-+-+-+-+-+-+-+
 0 0 1 0 0 0 1 1

Setting = LI | VN  |Mode. Client request example:
00 100 011 (or 0x23)
|  |   +-- client mode (3)
|  + ----- version (4)
+ -------- leap indicator, 0 no warning
*/
type Packet struct {
	Settings       uint8  // leap indicator, version number and mode
	Stratum        uint8  // stratum
	Poll           int8   // poll. Power of 2
	Precision      int8   // precision. Power of 2
	RootDelay      uint32 // total delay to the reference clock
	RootDispersion uint32 // total dispersion to the reference clock
	ReferenceID    uint32 // identifier of server or a reference clock
	RefTimeSec     uint32 // last time local clock was updated sec
	RefTimeFrac    uint32 // last time local clock was updated frac
	OrigTimeSec    uint32 // client time sec
	OrigTimeFrac   uint32 // client time frac
	RxTimeSec      uint32 // receive time sec
	RxTimeFrac     uint32 // receive time frac
	TxTimeSec      uint32 // transmit time sec
	TxTimeFrac     uint32 // transmit time frac
}

const (
	liNoWarning      = 0
	liAlarmCondition = 3
	vnFirst          = 1
	vnLast           = 4
	modeServer       = 4

	// VersionClient and ModeClient form the settings byte of our requests
	VersionClient = 4
	ModeClient    = 3
)

// RequestSettings is the first byte of a client request: leap 0,
// version 4, mode 3.
const RequestSettings = VersionClient<<3 | ModeClient // 0x23

// NewRequest returns a client request packet: all zero except the
// settings byte.
func NewRequest() *Packet {
	return &Packet{Settings: RequestSettings}
}

// Leap extracts the leap indicator from the settings byte.
func (p *Packet) Leap() uint8 {
	return p.Settings >> 6
}

// Version extracts the protocol version from the settings byte.
func (p *Packet) Version() uint8 {
	return (p.Settings << 2) >> 5
}

// Mode extracts the association mode from the settings byte.
func (p *Packet) Mode() uint8 {
	return (p.Settings << 5) >> 5
}

// ValidServerResponse verifies that LI | VN | Mode fields mark a usable
// server reply:
// LI: must be 0, 1 or 2 (3 means the server's clock is unsynchronized)
// VN: must be 1, 2, 3 or 4
// Mode: must be 4 (server)
func (p *Packet) ValidServerResponse() bool {
	if p.Leap() == liAlarmCondition {
		return false
	}
	if v := p.Version(); v < vnFirst || v > vnLast {
		return false
	}
	return p.Mode() == modeServer
}

// ZeroTransmit reports whether the transmit timestamp is unset, which
// marks the reply as unusable.
func (p *Packet) ZeroTransmit() bool {
	return p.TxTimeSec == 0 && p.TxTimeFrac == 0
}

// Bytes converts Packet to []bytes
func (p *Packet) Bytes() ([]byte, error) {
	var bytes bytes.Buffer
	err := binary.Write(&bytes, binary.BigEndian, p)
	return bytes.Bytes(), err
}

// BytesToPacket converts []bytes to Packet
func BytesToPacket(ntpPacketBytes []byte) (*Packet, error) {
	packet := &Packet{}
	reader := bytes.NewReader(ntpPacketBytes)
	err := binary.Read(reader, binary.BigEndian, packet)
	return packet, err
}

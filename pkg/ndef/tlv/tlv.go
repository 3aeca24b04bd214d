// go-ndef-record
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-ndef-record.
//
// go-ndef-record is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-ndef-record is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-ndef-record; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package tlv wraps and unwraps NDEF data in the TLV container used by
// NFC Forum Type 2 tags. This is tag container framing around already
// encoded record bytes, not NDEF message assembly.
package tlv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// TLV block types and markers on Type 2 tags.
const (
	ndefTLV        = 0x03 // NDEF message TLV block
	terminatorTLV  = 0xFE // terminator TLV block
	longFormMarker = 0xFF // length byte indicating the 2-byte long form

	// maxPayloadLen is the largest payload the long form length can carry.
	// NFCForum-TS-Type-2-Tag_1.1, page 9.
	maxPayloadLen = 0xFFFF
)

var (
	// ErrNoNDEF is returned when no NDEF TLV block is found.
	ErrNoNDEF = errors.New("no NDEF TLV found")
	// ErrInvalidTLV is returned when a TLV structure is malformed.
	ErrInvalidTLV = errors.New("invalid TLV structure")
	// ErrPayloadTooLarge is returned when a payload exceeds the TLV length
	// field range.
	ErrPayloadTooLarge = errors.New("payload too large for TLV")
)

// header returns the NDEF TLV header for a payload of the given length.
func header(length int) ([]byte, error) {
	if length < 255 {
		return []byte{ndefTLV, byte(length)}, nil
	}
	if length > maxPayloadLen {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d",
			ErrPayloadTooLarge, length, maxPayloadLen)
	}

	hdr := make([]byte, 4)
	hdr[0] = ndefTLV
	hdr[1] = longFormMarker
	binary.BigEndian.PutUint16(hdr[2:], uint16(length))
	return hdr, nil
}

// WrappedLen returns the total size of payload once wrapped in an NDEF TLV
// block with a terminator.
func WrappedLen(payload []byte) (int, error) {
	hdr, err := header(len(payload))
	if err != nil {
		return 0, err
	}
	return len(hdr) + len(payload) + 1, nil
}

// Wrap frames payload as an NDEF TLV block followed by a terminator TLV,
// ready to write to a Type 2 tag data area.
func Wrap(payload []byte) ([]byte, error) {
	hdr, err := header(len(payload))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(hdr)+len(payload)+1)
	out = append(out, hdr...)
	out = append(out, payload...)
	out = append(out, terminatorTLV)
	return out, nil
}

// Extract locates the first NDEF TLV block in data and returns its payload.
// The returned slice aliases data.
func Extract(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: data too short", ErrInvalidTLV)
	}

	for i := 0; i < len(data)-1; i++ {
		if data[i] != ndefTLV {
			continue
		}
		if payload := extractAt(data, i); payload != nil {
			return payload, nil
		}
	}
	return nil, ErrNoNDEF
}

// extractAt slices the payload of the TLV block starting at offset, or nil
// when the block is truncated.
func extractAt(data []byte, offset int) []byte {
	if data[offset+1] != longFormMarker {
		length := int(data[offset+1])
		if offset+2+length <= len(data) {
			return data[offset+2 : offset+2+length]
		}
		return nil
	}

	if offset+4 > len(data) {
		return nil
	}
	length := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
	if offset+4+length <= len(data) {
		return data[offset+4 : offset+4+length]
	}
	return nil
}

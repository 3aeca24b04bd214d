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

package record

import (
	"encoding/binary"
	"fmt"
	"math"
)

// shortRecordMax is the largest payload that still allows the short record
// form with its single-byte payload length field.
const shortRecordMax = 255

// longFormSlack is how much wider the long form payload length field (4
// bytes) is than the short form (1 byte).
const longFormSlack = 3

// Encode writes one NDEF record described by desc into buf and returns the
// number of bytes written.
//
// The payload length field width depends on the payload length, which is
// only known after the payload constructor has run. Encode therefore
// reserves a worst-case long-form header, constructs the payload after it,
// then writes the final header and moves the payload down when the short
// record form applies. A short record consequently needs up to 3 bytes more
// buffer capacity than its final encoded length.
//
// On any error the contents of buf are unspecified and must not be used as a
// record.
func Encode(desc *Descriptor, location Location, buf []byte) (int, error) {
	switch location {
	case LocationFirst, LocationMiddle, LocationLast, LocationLone:
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidLocation, uint8(location))
	}
	if desc == nil {
		return 0, fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	if desc.Payload == nil {
		return 0, fmt.Errorf("%w: missing payload constructor", ErrInvalidDescriptor)
	}
	if desc.TNF > tnfMask {
		return 0, fmt.Errorf("%w: TNF value %d does not fit in 3 bits",
			ErrInvalidDescriptor, desc.TNF)
	}
	if len(desc.Type) > maxFieldLen {
		return 0, fmt.Errorf("%w: type field is %d bytes, limit is %d",
			ErrInvalidDescriptor, len(desc.Type), maxFieldLen)
	}
	if len(desc.ID) > maxFieldLen {
		return 0, fmt.Errorf("%w: ID field is %d bytes, limit is %d",
			ErrInvalidDescriptor, len(desc.ID), maxFieldLen)
	}

	// Worst-case header: flags, TYPE_LENGTH, 4-byte PAYLOAD_LENGTH, then
	// ID_LENGTH and the ID bytes when an ID is present.
	reserved := 2 + 4 + len(desc.Type)
	if len(desc.ID) > 0 {
		reserved += 1 + len(desc.ID)
	}
	if reserved > len(buf) {
		return 0, fmt.Errorf("%w: header needs %d bytes, buffer has %d",
			ErrOutOfSpace, reserved, len(buf))
	}

	plLen, err := desc.Payload.ConstructPayload(buf[reserved:])
	if err != nil {
		return 0, fmt.Errorf("payload constructor: %w", err)
	}
	if plLen < 0 || plLen > len(buf)-reserved {
		return 0, fmt.Errorf("%w: payload constructor reported %d bytes written",
			ErrInvalidDescriptor, plLen)
	}
	if uint64(plLen) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: payload is %d bytes, limit is %d",
			ErrInvalidDescriptor, plLen, uint32(math.MaxUint32))
	}

	short := plLen <= shortRecordMax
	headerLen := reserved
	if short {
		headerLen -= longFormSlack
	}

	flags := byte(location) | byte(desc.TNF)
	if short {
		flags |= flagSR
	}
	if len(desc.ID) > 0 {
		flags |= flagIL
	}

	buf[0] = flags
	buf[1] = byte(len(desc.Type))
	n := 2
	if short {
		buf[n] = byte(plLen)
		n++
	} else {
		binary.BigEndian.PutUint32(buf[n:], uint32(plLen))
		n += 4
	}
	if len(desc.ID) > 0 {
		buf[n] = byte(len(desc.ID))
		n++
	}
	n += copy(buf[n:], desc.Type)
	n += copy(buf[n:], desc.ID)

	if headerLen != reserved {
		copy(buf[headerLen:], buf[reserved:reserved+plLen])
	}
	return headerLen + plLen, nil
}

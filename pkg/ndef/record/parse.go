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
)

// Record is one decoded NDEF record.
type Record struct {
	// Type is the record type field.
	Type []byte
	// ID is the record ID field, nil when the IL flag was not set.
	ID []byte
	// Payload is the record payload.
	Payload []byte
	// Location is the record's position within its message, from the MB
	// and ME flags.
	Location Location
	// TNF is the record's Type Name Format.
	TNF TNF
}

// Parse decodes a single NDEF record from the start of data and returns the
// record plus the number of bytes it occupied, so concatenated records can
// be walked back to back. The returned record's byte slices alias data;
// callers that keep them past the lifetime of data must copy.
//
// Chunked records (Chunk Flag set) are rejected: this package never encodes
// them and does not decode them.
func Parse(data []byte) (*Record, int, error) {
	if len(data) < 3 {
		return nil, 0, fmt.Errorf("%w: record too short", ErrInvalidRecord)
	}

	flags := data[0]
	if flags&flagCF != 0 {
		return nil, 0, fmt.Errorf("%w: chunked records not supported", ErrInvalidRecord)
	}
	short := flags&flagSR != 0
	hasID := flags&flagIL != 0

	typeLen := int(data[1])
	n := 2

	var payloadLen int
	if short {
		payloadLen = int(data[n])
		n++
	} else {
		if len(data) < n+4 {
			return nil, 0, fmt.Errorf("%w: truncated payload length", ErrInvalidRecord)
		}
		pl := binary.BigEndian.Uint32(data[n:])
		if uint64(pl) > uint64(len(data)) {
			return nil, 0, fmt.Errorf("%w: truncated payload", ErrInvalidRecord)
		}
		payloadLen = int(pl)
		n += 4
	}

	idLen := 0
	if hasID {
		if len(data) < n+1 {
			return nil, 0, fmt.Errorf("%w: truncated ID length", ErrInvalidRecord)
		}
		idLen = int(data[n])
		n++
	}

	if len(data) < n+typeLen+idLen+payloadLen {
		return nil, 0, fmt.Errorf("%w: truncated record", ErrInvalidRecord)
	}

	rec := &Record{
		Location: Location(flags & locationMask),
		TNF:      TNF(flags & tnfMask),
	}
	if typeLen > 0 {
		rec.Type = data[n : n+typeLen]
	}
	n += typeLen
	if hasID {
		rec.ID = data[n : n+idLen]
	}
	n += idLen
	if payloadLen > 0 {
		rec.Payload = data[n : n+payloadLen]
	}
	n += payloadLen

	return rec, n, nil
}

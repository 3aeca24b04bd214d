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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		data         []byte
		wantTNF      TNF
		wantLocation Location
		wantType     []byte
		wantID       []byte
		wantPayload  []byte
		wantN        int
	}{
		{
			name:         "lone short text record",
			data:         []byte{0xD1, 0x01, 0x03, 'T', 0x02, 'e', 'n'},
			wantTNF:      TNFWellKnown,
			wantLocation: LocationLone,
			wantType:     []byte("T"),
			wantPayload:  []byte{0x02, 'e', 'n'},
			wantN:        7,
		},
		{
			name:         "empty record",
			data:         []byte{0xD0, 0x00, 0x00},
			wantTNF:      TNFEmpty,
			wantLocation: LocationLone,
			wantN:        3,
		},
		{
			name: "record with ID",
			data: []byte{
				0xD9, 0x01, 0x02, 0x03, 'T', 'i', 'd', '0', 0xAA, 0xBB,
			},
			wantTNF:      TNFWellKnown,
			wantLocation: LocationLone,
			wantType:     []byte("T"),
			wantID:       []byte("id0"),
			wantPayload:  []byte{0xAA, 0xBB},
			wantN:        10,
		},
		{
			name: "first record of message",
			data: []byte{0x91, 0x01, 0x01, 'U', 0x01},
			// MB=1, ME=0
			wantTNF:      TNFWellKnown,
			wantLocation: LocationFirst,
			wantType:     []byte("U"),
			wantPayload:  []byte{0x01},
			wantN:        5,
		},
		{
			name: "long form record",
			data: append(
				[]byte{0xC2, 0x03, 0x00, 0x00, 0x01, 0x00, 'a', '/', 'b'},
				bytes.Repeat([]byte{0x42}, 256)...,
			),
			wantTNF:      TNFMediaType,
			wantLocation: LocationLone,
			wantType:     []byte("a/b"),
			wantPayload:  bytes.Repeat([]byte{0x42}, 256),
			wantN:        9 + 256,
		},
		{
			name: "trailing bytes are not consumed",
			data: []byte{0xD1, 0x01, 0x01, 'T', 0x00, 0xFE, 0xFE},
			wantTNF:      TNFWellKnown,
			wantLocation: LocationLone,
			wantType:     []byte("T"),
			wantPayload:  []byte{0x00},
			wantN:        5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, n, err := Parse(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.wantN, n)

			assert.Equal(t, tt.wantTNF, rec.TNF)
			assert.Equal(t, tt.wantLocation, rec.Location)
			assert.Equal(t, tt.wantType, rec.Type)
			assert.Equal(t, tt.wantID, rec.ID)
			assert.Equal(t, tt.wantPayload, rec.Payload)
		})
	}
}

func TestParse_InvalidRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "too short", data: []byte{0xD1, 0x01}},
		{name: "chunk flag set", data: []byte{0xF1, 0x01, 0x01, 'T', 'x'}},
		{name: "truncated type", data: []byte{0xD1, 0x0A, 0x01, 'T', 'x'}},
		{name: "truncated payload", data: []byte{0xD1, 0x01, 0x0A, 'T', 'x'}},
		{name: "truncated long length", data: []byte{0xC1, 0x01, 0x00, 0x00}},
		{
			name: "long length beyond input",
			data: []byte{0xC1, 0x01, 0xFF, 0xFF, 0xFF, 0xFF, 'T'},
		},
		{name: "truncated ID length", data: []byte{0xD9, 0x00, 0x00}},
		{
			name: "truncated ID",
			data: []byte{0xD9, 0x01, 0x01, 0x05, 'T', 'i', 'x'},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tt.data)
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

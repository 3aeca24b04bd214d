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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryPayload_ConstructPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dstLen  int
		wantN   int
		wantErr bool
	}{
		{name: "fits exactly", data: []byte{1, 2, 3}, dstLen: 3, wantN: 3},
		{name: "fits with room", data: []byte{1, 2, 3}, dstLen: 10, wantN: 3},
		{name: "empty payload", data: nil, dstLen: 0, wantN: 0},
		{name: "too large by one", data: []byte{1, 2, 3}, dstLen: 2, wantErr: true},
		{name: "no space at all", data: []byte{1}, dstLen: 0, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dst := make([]byte, tt.dstLen)
			n, err := BinaryPayload{Data: tt.data}.ConstructPayload(dst)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrOutOfSpace)
				assert.Zero(t, n, "no bytes reported on failure")
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.data, append([]byte(nil), dst[:n]...))
		})
	}
}

func TestPayloadFunc_Adapter(t *testing.T) {
	t.Parallel()

	pc := PayloadFunc(func(dst []byte) (int, error) {
		return copy(dst, "abc"), nil
	})

	dst := make([]byte, 8)
	n, err := pc.ConstructPayload(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), dst[:n])
}

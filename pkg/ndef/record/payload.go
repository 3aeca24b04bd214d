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

import "fmt"

// PayloadConstructor generates the payload bytes of an NDEF record directly
// into the destination buffer during encoding. Implementations must never
// write past len(dst) and must return ErrOutOfSpace (possibly wrapped) when
// the payload cannot fit. On failure the destination contents are
// unspecified; the encode call that invoked the constructor fails as a
// whole.
type PayloadConstructor interface {
	ConstructPayload(dst []byte) (int, error)
}

// PayloadFunc adapts a plain function to the PayloadConstructor interface.
type PayloadFunc func(dst []byte) (int, error)

// ConstructPayload calls f.
func (f PayloadFunc) ConstructPayload(dst []byte) (int, error) {
	return f(dst)
}

// BinaryPayload is a PayloadConstructor that copies a fixed byte slice into
// the record payload.
type BinaryPayload struct {
	Data []byte
}

// ConstructPayload copies the payload data into dst.
func (p BinaryPayload) ConstructPayload(dst []byte) (int, error) {
	if len(p.Data) > len(dst) {
		return 0, fmt.Errorf("%w: payload is %d bytes, buffer has %d",
			ErrOutOfSpace, len(p.Data), len(dst))
	}
	return copy(dst, p.Data), nil
}

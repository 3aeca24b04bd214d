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

import "errors"

var (
	// ErrOutOfSpace is returned when the record or its payload does not fit
	// in the destination buffer.
	ErrOutOfSpace = errors.New("not enough space in buffer")
	// ErrInvalidLocation is returned when a record location is not one of
	// the four defined values.
	ErrInvalidLocation = errors.New("invalid record location")
	// ErrInvalidDescriptor is returned when a record descriptor cannot be
	// represented on the wire.
	ErrInvalidDescriptor = errors.New("invalid record descriptor")
	// ErrInvalidRecord is returned when Parse is given data that is not a
	// well-formed NDEF record.
	ErrInvalidRecord = errors.New("invalid NDEF record")
)

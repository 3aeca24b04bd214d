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

// Package record encodes and decodes single NDEF records in caller-supplied
// buffers. It covers only the record framing layer: assembling records into
// a full NDEF message and well-known payload formats (text, URI, carriers)
// belong to the caller.
package record

// TNF is the 3-bit Type Name Format field classifying how a record's Type
// field should be interpreted.
type TNF uint8

// Type Name Format values as defined by the NDEF specification.
const (
	TNFEmpty       TNF = 0x00 // no type or payload associated with the record
	TNFWellKnown   TNF = 0x01 // NFC Forum well-known type (RTD)
	TNFMediaType   TNF = 0x02 // media type as defined in RFC 2046
	TNFAbsoluteURI TNF = 0x03 // absolute URI as defined in RFC 3986
	TNFExternal    TNF = 0x04 // NFC Forum external type (RTD)
	TNFUnknown     TNF = 0x05 // no type associated with the record
	TNFUnchanged   TNF = 0x06 // chunked payload continuation
	TNFReserved    TNF = 0x07 // reserved for future use
)

const tnfMask = 0x07

// Location describes a record's position within an NDEF message. The values
// are the Message Begin and Message End bits at their final position in the
// record's flags byte.
type Location uint8

// Record locations within an NDEF message.
const (
	LocationFirst  Location = 0x80 // first record of a multi-record message
	LocationMiddle Location = 0x00 // middle record of a multi-record message
	LocationLast   Location = 0x40 // last record of a multi-record message
	LocationLone   Location = 0xC0 // only record in the message
)

// locationMask covers the MB and ME bits in the flags byte.
const locationMask = 0xC0

// Flag bits of the NDEF record header byte.
const (
	flagMB = 1 << 7 // Message Begin
	flagME = 1 << 6 // Message End
	flagCF = 1 << 5 // Chunk Flag, never set by this package
	flagSR = 1 << 4 // Short Record
	flagIL = 1 << 3 // ID Length field present
)

// maxFieldLen is the maximum length of the Type and ID fields, whose length
// prefixes are a single byte on the wire.
const maxFieldLen = 255

// Descriptor fully describes one NDEF record to encode. All referenced byte
// slices are owned by the caller and must not be mutated while an Encode call
// using the descriptor is in progress; Encode never retains them.
type Descriptor struct {
	// Payload generates the record's payload bytes during encoding.
	Payload PayloadConstructor
	// Type is the record type field, up to 255 bytes.
	Type []byte
	// ID is the optional record ID field, up to 255 bytes. The ID_LENGTH
	// field and ID bytes are emitted only when ID is non-empty.
	ID []byte
	// TNF is the record's Type Name Format.
	TNF TNF
}

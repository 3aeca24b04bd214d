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

// Package recorddef loads NDEF record definitions from TOML files and turns
// them into encodable record descriptors. Text and URI payloads are built by
// go-ndef; raw definitions carry TNF, type, and hex payload directly.
package recorddef

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ZaparooProject/go-ndef-record/pkg/ndef/record"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	ndef "github.com/hsanjuan/go-ndef"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Definition is one record definition file.
type Definition struct {
	Record   Record `toml:"record"             validate:"required"`
	Location string `toml:"location,omitempty" validate:"omitempty,oneof=first middle last lone"`
}

// Record is the record section of a definition file.
type Record struct {
	Kind     string `toml:"kind"               validate:"required,oneof=text uri raw"`
	Text     string `toml:"text,omitempty"`
	URI      string `toml:"uri,omitempty"      validate:"required_if=Kind uri"`
	Language string `toml:"language,omitempty"`
	Type     string `toml:"type,omitempty"`
	ID       string `toml:"id,omitempty"`
	Payload  string `toml:"payload,omitempty"  validate:"omitempty,hexadecimal"`
	TNF      *uint8 `toml:"tnf,omitempty"      validate:"required_if=Kind raw,omitempty,lte=7"`
}

// autoID generates a fresh record ID when a definition sets id = "auto".
const autoID = "auto"

// defaultLanguage is used for text records without an explicit language code.
const defaultLanguage = "en"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads, parses, and validates a record definition file.
func Load(fsys afero.Fs, path string) (*Definition, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read record definition: %w", err)
	}

	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse record definition: %w", err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("invalid record definition: %w", err)
	}
	return &def, nil
}

// RecordLocation returns the record location named by the definition,
// defaulting to a lone record.
func (d *Definition) RecordLocation() record.Location {
	switch d.Location {
	case "first":
		return record.LocationFirst
	case "middle":
		return record.LocationMiddle
	case "last":
		return record.LocationLast
	default:
		return record.LocationLone
	}
}

// Descriptor builds the record descriptor described by the definition.
func (d *Definition) Descriptor() (*record.Descriptor, error) {
	desc := &record.Descriptor{}

	switch d.Record.Kind {
	case "text":
		lang := d.Record.Language
		if lang == "" {
			lang = defaultLanguage
		}
		payload, recType, err := wellKnownPayload(ndef.NewTextMessage(d.Record.Text, lang))
		if err != nil {
			return nil, err
		}
		desc.TNF = record.TNFWellKnown
		desc.Type = []byte(recType)
		desc.Payload = record.BinaryPayload{Data: payload}
	case "uri":
		payload, recType, err := wellKnownPayload(ndef.NewURIMessage(d.Record.URI))
		if err != nil {
			return nil, err
		}
		desc.TNF = record.TNFWellKnown
		desc.Type = []byte(recType)
		desc.Payload = record.BinaryPayload{Data: payload}
	case "raw":
		if d.Record.TNF == nil {
			return nil, errors.New("raw record definition requires a tnf value")
		}
		payload, err := hex.DecodeString(d.Record.Payload)
		if err != nil {
			return nil, fmt.Errorf("decode raw payload: %w", err)
		}
		desc.TNF = record.TNF(*d.Record.TNF)
		desc.Type = []byte(d.Record.Type)
		desc.Payload = record.BinaryPayload{Data: payload}
	default:
		return nil, fmt.Errorf("unknown record kind: %q", d.Record.Kind)
	}

	desc.ID = recordID(d.Record.ID)
	return desc, nil
}

// wellKnownPayload extracts the payload and type of the first record of a
// go-ndef message.
func wellKnownPayload(msg *ndef.Message) ([]byte, string, error) {
	if len(msg.Records) == 0 {
		return nil, "", errors.New("NDEF message has no records")
	}

	rec := msg.Records[0]
	payload, err := rec.Payload()
	if err != nil {
		return nil, "", fmt.Errorf("build NDEF payload: %w", err)
	}
	return payload.Marshal(), rec.Type(), nil
}

// recordID resolves the ID field of a definition, generating a UUID for the
// auto marker.
func recordID(id string) []byte {
	if id == autoID {
		return []byte(uuid.NewString())
	}
	if id == "" {
		return nil
	}
	return []byte(id)
}

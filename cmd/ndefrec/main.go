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

// ndefrec encodes a single NDEF record from a TOML definition file into its
// binary wire form, optionally wrapped in a Type 2 tag TLV block.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ZaparooProject/go-ndef-record/pkg/ndef/record"
	"github.com/ZaparooProject/go-ndef-record/pkg/ndef/tlv"
	"github.com/ZaparooProject/go-ndef-record/pkg/recorddef"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	inPath := flag.String(
		"in",
		"",
		"record definition TOML file",
	)
	outPath := flag.String(
		"out",
		"-",
		"output file, - for stdout",
	)
	capacity := flag.Int(
		"capacity",
		8192,
		"encode buffer capacity in bytes",
	)
	wrapTLV := flag.Bool(
		"tlv",
		false,
		"wrap the record in a Type 2 tag TLV block",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *inPath == "" {
		return errors.New("no record definition given, use -in")
	}
	if *capacity <= 0 {
		return errors.New("capacity must be positive")
	}

	def, err := recorddef.Load(afero.NewOsFs(), *inPath)
	if err != nil {
		return err
	}
	desc, err := def.Descriptor()
	if err != nil {
		return err
	}

	buf := make([]byte, *capacity)
	n, err := record.Encode(desc, def.RecordLocation(), buf)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	log.Debug().Msgf("encoded %d byte record (TNF %d)", n, desc.TNF)

	out := buf[:n]
	if *wrapTLV {
		out, err = wrapOutput(out, *capacity)
		if err != nil {
			return err
		}
		log.Debug().Msgf("wrapped record in %d byte TLV block", len(out))
	}

	return writeOutput(*outPath, out)
}

// wrapOutput frames an encoded record for a Type 2 tag data area, keeping
// the final output within the declared buffer capacity.
func wrapOutput(rec []byte, capacity int) ([]byte, error) {
	wrappedLen, err := tlv.WrappedLen(rec)
	if err != nil {
		return nil, fmt.Errorf("wrap record: %w", err)
	}
	if wrappedLen > capacity {
		return nil, fmt.Errorf("wrapped record is %d bytes, capacity is %d",
			wrappedLen, capacity)
	}

	out, err := tlv.Wrap(rec)
	if err != nil {
		return nil, fmt.Errorf("wrap record: %w", err)
	}
	return out, nil
}

func writeOutput(outPath string, out []byte) error {
	if outPath == "-" {
		if _, err := os.Stdout.Write(out); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	log.Info().Msgf("wrote %d bytes to %s", len(out), outPath)
	return nil
}

// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package compiler

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// This file defines the binary framing of compiled units. The format is the
// contract between the compiler and the processors consuming its output:
// a four-byte magic identifying the unit kind, a format version byte, and
// the RLP encoding of the unit itself.

const formatVersion = 1

var (
	moduleMagic = [4]byte{'K', 'M', 'O', 'D'}
	scriptMagic = [4]byte{'K', 'S', 'C', 'R'}
)

// Module is a compiled module: the address it declares itself to live
// under, its name, and its (opaque) body.
type Module struct {
	Address kestrel.Address
	Name    string
	Body    []byte
}

// Script is a compiled script. Scripts resolve to one of the built-in
// programs understood by the processor.
type Script struct {
	Builtin string
}

// EncodeModule serializes a compiled module into its code blob.
func EncodeModule(module Module) []byte {
	return encodeUnit(moduleMagic, &module)
}

// DecodeModule deserializes a module code blob. An error is reported for
// blobs that are not well-framed modules.
func DecodeModule(code []byte) (Module, error) {
	var res Module
	if err := decodeUnit(moduleMagic, "module", code, &res); err != nil {
		return Module{}, err
	}
	return res, nil
}

// EncodeScript serializes a compiled script into its code blob.
func EncodeScript(script Script) []byte {
	return encodeUnit(scriptMagic, &script)
}

// DecodeScript deserializes a script code blob.
func DecodeScript(code []byte) (Script, error) {
	var res Script
	if err := decodeUnit(scriptMagic, "script", code, &res); err != nil {
		return Script{}, err
	}
	return res, nil
}

func encodeUnit(magic [4]byte, unit any) []byte {
	body, err := rlp.EncodeToBytes(unit)
	if err != nil {
		panic(fmt.Sprintf("failed to encode compiled unit: %v", err))
	}
	res := make([]byte, 0, len(magic)+1+len(body))
	res = append(res, magic[:]...)
	res = append(res, formatVersion)
	return append(res, body...)
}

func decodeUnit(magic [4]byte, kind string, code []byte, unit any) error {
	if len(code) < len(magic)+1 || !bytes.Equal(code[:len(magic)], magic[:]) {
		return fmt.Errorf("not a compiled %s", kind)
	}
	if version := code[len(magic)]; version != formatVersion {
		return fmt.Errorf("unsupported %s format version %d", kind, version)
	}
	if err := rlp.DecodeBytes(code[len(magic)+1:], unit); err != nil {
		return fmt.Errorf("malformed %s body: %w", kind, err)
	}
	return nil
}

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
	"fmt"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// Names of the built-in scripts shipped with the network. Processors
// recognize these by name after decoding a script blob.
const (
	// EmptyScriptName is a script with no effect, useful for probing the
	// admission pipeline in isolation.
	EmptyScriptName = "empty"
	// PeerToPeerScriptName transfers coins from the sender to a recipient;
	// arguments: recipient address, amount.
	PeerToPeerScriptName = "peer_to_peer"
	// CreateAccountScriptName creates a fresh account and funds it from the
	// sender; arguments: new account address, initial amount.
	CreateAccountScriptName = "create_account"
)

// EmptyScript returns the canonical blob of the empty script.
func EmptyScript() []byte {
	return EncodeScript(Script{Builtin: EmptyScriptName})
}

// PeerToPeerScript returns the canonical blob of the coin transfer script.
func PeerToPeerScript() []byte {
	return EncodeScript(Script{Builtin: PeerToPeerScriptName})
}

// CreateAccountScript returns the canonical blob of the account creation
// script.
func CreateAccountScript() []byte {
	return EncodeScript(Script{Builtin: CreateAccountScriptName})
}

// CompileScript resolves a script source naming one of the built-in scripts
// to its canonical blob.
func CompileScript(name string) ([]byte, error) {
	switch name {
	case EmptyScriptName, PeerToPeerScriptName, CreateAccountScriptName:
		return EncodeScript(Script{Builtin: name}), nil
	default:
		return nil, fmt.Errorf("unknown script %q", name)
	}
}

// StandardScriptHashes returns the code hashes of all built-in scripts, in
// the form expected by a locked publishing option's whitelist.
func StandardScriptHashes() []kestrel.Hash {
	return []kestrel.Hash{
		kestrel.CodeHash(EmptyScript()),
		kestrel.CodeHash(PeerToPeerScript()),
		kestrel.CodeHash(CreateAccountScript()),
	}
}

// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package keygen produces ed25519 key pairs from a deterministic random
// stream. Tests derive all account keys from fixed seeds so that addresses,
// signatures, and therefore entire execution results are reproducible from
// run to run.
package keygen

import (
	"crypto/ed25519"

	"pgregory.net/rand"
)

// Generator yields a deterministic sequence of key pairs for a given seed.
// Generators are not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator producing the key sequence of the given seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(seed)}
}

// Generate returns the next key pair of the sequence.
func (g *Generator) Generate() (ed25519.PublicKey, ed25519.PrivateKey) {
	var seed [ed25519.SeedSize]byte
	g.rng.Read(seed[:])
	private := ed25519.NewKeyFromSeed(seed[:])
	return private.Public().(ed25519.PublicKey), private
}

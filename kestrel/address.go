// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package kestrel

import (
	"crypto/ed25519"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Address represents the 128-bit (16 bytes) address of an account.
type Address [16]byte

// RootAddress is the address of the root account created during genesis.
// Under restricted publishing policies it is the only account permitted to
// publish modules.
var RootAddress = Address{12: 0x0b, 13: 0xa5, 14: 0x5e, 15: 0x01}

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

// AuthKey is the authentication key of an account, the sha3-256 digest of
// the account's public key. It is stored in the account's on-chain resource
// and checked against the public key attached to submitted transactions.
type AuthKey [32]byte

func (k AuthKey) String() string {
	return fmt.Sprintf("0x%x", k[:])
}

// Hash represents the 256-bit (32 bytes) sha3 digest of a code blob or a
// signing payload.
type Hash [32]byte

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// AuthKeyFromPublicKey derives the authentication key for an ed25519 public
// key.
func AuthKeyFromPublicKey(key ed25519.PublicKey) AuthKey {
	return sha3.Sum256(key)
}

// AddressFromPublicKey derives the account address for an ed25519 public
// key. The address is the last 16 bytes of the authentication key.
func AddressFromPublicKey(key ed25519.PublicKey) Address {
	authKey := AuthKeyFromPublicKey(key)
	var res Address
	copy(res[:], authKey[len(authKey)-len(res):])
	return res
}

// CodeHash computes the hash identifying a compiled code blob. Script
// whitelists are expressed in terms of these hashes.
func CodeHash(code []byte) Hash {
	return sha3.Sum256(code)
}

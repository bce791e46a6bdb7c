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

	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/sha3"
)

// PayloadKind distinguishes the two program forms a transaction can carry.
type PayloadKind uint8

const (
	// ModulePayload publishes a compiled module under the sender's address.
	ModulePayload PayloadKind = iota + 1
	// ScriptPayload runs a compiled script with the given arguments.
	ScriptPayload
)

// ArgumentKind is the type tag of a script argument.
type ArgumentKind uint8

const (
	U64Argument ArgumentKind = iota + 1
	AddressArgument
)

// Argument is one argument passed to a script. Exactly the field selected
// by Kind is meaningful.
type Argument struct {
	Kind    ArgumentKind
	U64     uint64
	Address Address
}

// U64Arg creates a 64-bit integer script argument.
func U64Arg(value uint64) Argument {
	return Argument{Kind: U64Argument, U64: value}
}

// AddressArg creates an address script argument.
func AddressArg(address Address) Argument {
	return Argument{Kind: AddressArgument, Address: address}
}

// Payload is the program of a transaction: a module to be published or a
// script to be run. The code blob is opaque at this level; its format is a
// contract between the compiler and the processor executing it.
type Payload struct {
	Kind PayloadKind
	Code []byte
	Args []Argument
}

// NewModulePayload wraps a compiled module blob into a payload.
func NewModulePayload(code []byte) Payload {
	return Payload{Kind: ModulePayload, Code: code}
}

// NewScriptPayload wraps a compiled script blob and its arguments into a
// payload.
func NewScriptPayload(code []byte, args ...Argument) Payload {
	return Payload{Kind: ScriptPayload, Code: code, Args: args}
}

// RawTransaction summarizes the parameters of a transaction before signing.
type RawTransaction struct {
	Sender          Address // the account paying for and sequencing the transaction
	SequenceNumber  uint64  // must equal the sender's current sequence number
	Payload         Payload // the program to publish or run
	MaxGasAmount    uint64  // the maximum number of gas units the sender is willing to buy
	GasUnitPrice    uint64  // the price per gas unit in the gas currency
	GasCurrencyCode string  // the currency gas is paid in, see CoinName
}

// SigningHash computes the digest covered by the transaction signature:
// the sha3-256 hash of the RLP encoding of the raw transaction.
func (t *RawTransaction) SigningHash() Hash {
	data, err := rlp.EncodeToBytes(t)
	if err != nil {
		// The raw transaction is composed exclusively of RLP-encodable
		// field types; an encoding failure is a programming error.
		panic(fmt.Sprintf("failed to encode raw transaction: %v", err))
	}
	return sha3.Sum256(data)
}

// SignedTransaction is a raw transaction together with the public key and
// ed25519 signature authenticating it. Immutable once constructed.
type SignedTransaction struct {
	Raw       RawTransaction
	PublicKey []byte
	Signature []byte
}

// Sign signs the raw transaction with the given key pair.
func Sign(raw RawTransaction, key ed25519.PrivateKey) SignedTransaction {
	hash := raw.SigningHash()
	return SignedTransaction{
		Raw:       raw,
		PublicKey: key.Public().(ed25519.PublicKey),
		Signature: ed25519.Sign(key, hash[:]),
	}
}

// VerifySignature checks that the attached signature covers the raw
// transaction and was produced by the attached public key. It does not
// check that the key is authorized for the sender account.
func (t *SignedTransaction) VerifySignature() bool {
	if len(t.PublicKey) != ed25519.PublicKeySize {
		return false
	}
	hash := t.Raw.SigningHash()
	return ed25519.Verify(ed25519.PublicKey(t.PublicKey), hash[:], t.Signature)
}

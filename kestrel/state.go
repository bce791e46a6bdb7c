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
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

//go:generate mockgen -source state.go -destination state_mock.go -package kestrel

// StateView is a point-in-time, read-only view of ledger state. The absence
// of a value at a path is not an error; it is the meaningful state of an
// account or module that does not exist yet.
type StateView interface {
	// Read returns the value stored at the given path, or false if the path
	// holds no value.
	Read(path AccessPath) ([]byte, bool)
}

// AccountResource is the materialized on-chain state of an account. It is
// stored RLP-encoded at the account's resource path.
type AccountResource struct {
	AuthKey        AuthKey
	Balance        uint64
	SequenceNumber uint64
}

// Encode serializes the resource for storage in ledger state.
func (r *AccountResource) Encode() []byte {
	data, err := rlp.EncodeToBytes(r)
	if err != nil {
		panic(fmt.Sprintf("failed to encode account resource: %v", err))
	}
	return data
}

// DecodeAccountResource deserializes an account resource from ledger state.
func DecodeAccountResource(data []byte) (AccountResource, error) {
	var res AccountResource
	if err := rlp.DecodeBytes(data, &res); err != nil {
		return AccountResource{}, fmt.Errorf("failed to decode account resource: %w", err)
	}
	return res, nil
}

// ReadAccountResource reads and decodes the account resource of the given
// address from the given state. The second result is false if the account
// does not exist.
func ReadAccountResource(state StateView, address Address) (AccountResource, bool) {
	data, found := state.Read(AccountResourcePath(address))
	if !found {
		return AccountResource{}, false
	}
	res, err := DecodeAccountResource(data)
	if err != nil {
		return AccountResource{}, false
	}
	return res, true
}

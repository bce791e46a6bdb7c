// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package harness

import (
	"fmt"

	"github.com/kestrel-foundation/kestrel/compiler"
	"github.com/kestrel-foundation/kestrel/kestrel"
)

// Builders for the transaction shapes most tests need.

// EmptyTxn creates a transaction running the empty script.
func EmptyTxn(sender *Account, sequenceNumber uint64) kestrel.SignedTransaction {
	return sender.CreateSignedTxn(
		kestrel.NewScriptPayload(compiler.EmptyScript()), sequenceNumber)
}

// PeerToPeerTxn creates a transaction transferring the given amount from the
// sender to the receiver.
func PeerToPeerTxn(
	sender *Account,
	receiver *Account,
	sequenceNumber uint64,
	amount uint64,
) kestrel.SignedTransaction {
	return sender.CreateSignedTxn(
		kestrel.NewScriptPayload(
			compiler.PeerToPeerScript(),
			kestrel.AddressArg(receiver.Address),
			kestrel.U64Arg(amount),
		), sequenceNumber)
}

// CreateAccountTxn creates a transaction creating the given account on chain
// with the given initial amount funded by the sender.
func CreateAccountTxn(
	sender *Account,
	newAccount *Account,
	sequenceNumber uint64,
	initialAmount uint64,
) kestrel.SignedTransaction {
	return sender.CreateSignedTxn(
		kestrel.NewScriptPayload(
			compiler.CreateAccountScript(),
			kestrel.AddressArg(newAccount.Address),
			kestrel.U64Arg(initialAmount),
		), sequenceNumber)
}

// PublishModuleTxn compiles the given module source for the sender's address
// and creates a transaction publishing it.
func PublishModuleTxn(
	sender *Account,
	sequenceNumber uint64,
	source string,
) kestrel.SignedTransaction {
	return PublishModuleTxnForAddress(sender, sender.Address, sequenceNumber, source)
}

// PublishModuleTxnForAddress compiles the given module source declaring the
// given address, which tests may deliberately pick different from the
// sender's.
func PublishModuleTxnForAddress(
	sender *Account,
	address kestrel.Address,
	sequenceNumber uint64,
	source string,
) kestrel.SignedTransaction {
	code, err := compiler.CompileModuleWithAddress(address, "txn.module", source)
	if err != nil {
		panic(fmt.Sprintf("failed to compile module: %v", err))
	}
	return sender.CreateSignedTxn(kestrel.NewModulePayload(code), sequenceNumber)
}

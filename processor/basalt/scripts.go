// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package basalt

import (
	"github.com/kestrel-foundation/kestrel/compiler"
	"github.com/kestrel-foundation/kestrel/kestrel"
)

// AccountModuleName is the abort location of the built-in account programs.
const AccountModuleName = "Account"

// Abort codes raised by the built-in account programs.
const (
	// AbortInsufficientBalance signals that the sender cannot cover the
	// requested amount after the gas budget was set aside.
	AbortInsufficientBalance uint64 = 10
	// AbortAccountAlreadyExists signals an account creation for an address
	// that is already in use.
	AbortAccountAlreadyExists uint64 = 16
	// AbortPayeeDoesNotExist signals a transfer to a non-existent account.
	AbortPayeeDoesNotExist uint64 = 17
)

// executeScript runs one of the built-in scripts. Unknown builtins and
// malformed blobs or argument lists fail verification-style, keeping the
// transaction with its gas charge.
func executeScript(raw *kestrel.RawTransaction, s *transactionState) (kestrel.VMStatus, uint64) {
	script, err := compiler.DecodeScript(raw.Payload.Code)
	if err != nil {
		return kestrel.Status(kestrel.MalformedBytecode), 0
	}
	switch script.Builtin {
	case compiler.EmptyScriptName:
		return kestrel.Status(kestrel.Executed), emptyScriptGasUnits
	case compiler.PeerToPeerScriptName:
		return peerToPeer(raw, s), transferGasUnits
	case compiler.CreateAccountScriptName:
		return createAccount(raw, s), createAccountGasUnits
	default:
		return kestrel.Status(kestrel.MalformedBytecode), 0
	}
}

// peerToPeer moves coins from the sender to an existing recipient account.
// Arguments: recipient address, amount.
func peerToPeer(raw *kestrel.RawTransaction, s *transactionState) kestrel.VMStatus {
	recipient, amount, status := addressAmountArgs(raw.Payload.Args)
	if status.Code != kestrel.Executed {
		return status
	}

	sender, _ := s.accountResource(raw.Sender)
	if sender.Balance < amount {
		return kestrel.AbortStatus(AccountModuleName, AbortInsufficientBalance)
	}
	payee, found := s.accountResource(recipient)
	if !found {
		return kestrel.AbortStatus(AccountModuleName, AbortPayeeDoesNotExist)
	}
	if recipient == raw.Sender {
		// Self-payment on a single resource is a no-op.
		return kestrel.Status(kestrel.Executed)
	}

	sender.Balance -= amount
	payee.Balance += amount
	s.setAccountResource(raw.Sender, sender)
	s.setAccountResource(recipient, payee)
	return kestrel.Status(kestrel.Executed)
}

// createAccount creates a fresh account at the given address and seeds it
// with the given amount from the sender. The created account starts with an
// all-zero authentication key and sequence number zero.
// Arguments: new account address, initial amount.
func createAccount(raw *kestrel.RawTransaction, s *transactionState) kestrel.VMStatus {
	address, amount, status := addressAmountArgs(raw.Payload.Args)
	if status.Code != kestrel.Executed {
		return status
	}

	if _, exists := s.accountResource(address); exists {
		return kestrel.AbortStatus(AccountModuleName, AbortAccountAlreadyExists)
	}
	sender, _ := s.accountResource(raw.Sender)
	if sender.Balance < amount {
		return kestrel.AbortStatus(AccountModuleName, AbortInsufficientBalance)
	}

	sender.Balance -= amount
	s.setAccountResource(raw.Sender, sender)
	s.setAccountResource(address, kestrel.AccountResource{Balance: amount})
	return kestrel.Status(kestrel.Executed)
}

// addressAmountArgs unpacks the (address, amount) argument list shared by
// the transfer and account creation scripts.
func addressAmountArgs(args []kestrel.Argument) (kestrel.Address, uint64, kestrel.VMStatus) {
	if len(args) != 2 ||
		args[0].Kind != kestrel.AddressArgument ||
		args[1].Kind != kestrel.U64Argument {
		return kestrel.Address{}, 0, kestrel.Status(kestrel.MalformedBytecode)
	}
	return args[0].Address, args[1].U64, kestrel.Status(kestrel.Executed)
}

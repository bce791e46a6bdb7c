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
	"testing"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// These tests pin the parity between verification and execution for every
// admission failure: both phases must reject with the same status, and the
// execution side must discard without any state change.

func TestVerifyTxn_SequenceNumberTooOld(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	txn := EmptyTxn(sender, 9)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.SequenceNumberTooOld)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_SequenceNumberTooNew(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	txn := EmptyTxn(sender, 11)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.SequenceNumberTooNew)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_SendingAccountDoesNotExist(t *testing.T) {
	executor := FromGenesis()
	stranger := NewAccount()

	txn := EmptyTxn(stranger, 0)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.SendingAccountDoesNotExist)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_InvalidSignature(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	txn := EmptyTxn(sender, 10)
	txn.Raw.MaxGasAmount++
	if err := CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.InvalidSignature)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_InvalidAuthKey(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)
	imposter := NewAccount()

	txn := imposter.CreateSignedTxnWithSender(
		sender.Address, kestrel.NewScriptPayload(nil),
		10, DefaultMaxGasAmount, DefaultGasUnitPrice)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.InvalidAuthKey)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_InsufficientBalanceForTransactionFee(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultMaxGasAmount-1, 10)

	txn := EmptyTxn(sender, 10)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.InsufficientBalanceForTransactionFee)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_UnknownGasCurrency(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	raw := EmptyTxn(sender, 10).Raw
	raw.GasCurrencyCode = "DOGE"
	txn := kestrel.Sign(raw, sender.PrivateKey)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.CurrencyCodeNotRecognized)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_GasBudgetBounds(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	tooSmall := sender.CreateSignedTxnWithGas(
		kestrel.NewScriptPayload(nil), 10, 1, 1)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(tooSmall),
		executor.ExecuteTransaction(tooSmall).Status,
		kestrel.Status(kestrel.MaxGasUnitsBelowMinTransactionGas)); err != nil {
		t.Error(err)
	}

	tooLarge := sender.CreateSignedTxnWithGas(
		kestrel.NewScriptPayload(nil), 10, 1<<40, 0)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(tooLarge),
		executor.ExecuteTransaction(tooLarge).Status,
		kestrel.Status(kestrel.MaxGasUnitsExceedsMaxGasBound)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_LockedPolicyRejectsUnknownScripts(t *testing.T) {
	executor := WhitelistGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	// Built-in scripts pass the whitelist.
	admitted := EmptyTxn(sender, 10)
	if status := executor.VerifyTransaction(admitted); status != nil {
		t.Errorf("whitelisted script rejected with %v", *status)
	}

	// A custom script blob does not.
	custom := sender.CreateSignedTxn(
		kestrel.NewScriptPayload([]byte("custom script")), 10)
	if err := CheckPrologueParity(
		executor.VerifyTransaction(custom),
		executor.ExecuteTransaction(custom).Status,
		kestrel.Status(kestrel.UnknownScript)); err != nil {
		t.Error(err)
	}
}

func TestVerifyTxn_DiscardedTransactionsLeaveNoTrace(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	before, _ := executor.ReadAccountResource(sender)
	output := executor.ExecuteTransaction(EmptyTxn(sender, 12))
	if !output.Status.IsDiscard() {
		t.Fatalf("transaction finished as %v, want a discard", output.Status)
	}
	if len(output.WriteSet) != 0 || output.GasUsed != 0 {
		t.Errorf("discarded transaction produced effects: %d writes, %d gas",
			len(output.WriteSet), output.GasUsed)
	}
	after, _ := executor.ReadAccountResource(sender)
	if before != after {
		t.Errorf("discarded transaction changed the sender account")
	}
}

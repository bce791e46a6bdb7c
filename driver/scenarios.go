// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/kestrel-foundation/kestrel/harness"
	"github.com/kestrel-foundation/kestrel/kestrel"
	"github.com/kestrel-foundation/kestrel/processor/basalt"
)

// A scenario drives one end-to-end flow through a processor and checks its
// outcomes against the reference semantics. Each run starts from a fresh
// genesis ledger.
type scenario struct {
	Name string
	Run  func(processor kestrel.Processor) error
}

var scenarios = []scenario{
	{Name: "publish/open-policy", Run: publishOpenPolicy},
	{Name: "publish/duplicate-module", Run: publishDuplicateModule},
	{Name: "publish/address-mismatch", Run: publishAddressMismatch},
	{Name: "publish/restricted-rejects-non-root", Run: publishRestrictedRejectsNonRoot},
	{Name: "publish/restricted-allows-root", Run: publishRestrictedAllowsRoot},
	{Name: "transfer/success", Run: transferSuccess},
	{Name: "transfer/insufficient-balance", Run: transferInsufficientBalance},
	{Name: "account/create", Run: accountCreate},
	{Name: "prologue/sequence-number", Run: prologueSequenceNumber},
	{Name: "prologue/fee-balance", Run: prologueFeeBalance},
	{Name: "script/whitelist", Run: scriptWhitelist},
}

const moduleSource = "module M { }"

func expectExecuted(output kestrel.Output) error {
	want := kestrel.Keep(kestrel.Status(kestrel.Executed))
	if !harness.TransactionStatusEq(output.Status, want) {
		return fmt.Errorf("transaction finished as %v, want %v", output.Status, want)
	}
	return nil
}

func expectKept(output kestrel.Output, code kestrel.StatusCode) error {
	want := kestrel.Keep(kestrel.Status(code))
	if !harness.TransactionStatusEq(output.Status, want) {
		return fmt.Errorf("transaction finished as %v, want %v", output.Status, want)
	}
	return nil
}

func publishOpenPolicy(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)

	txn := harness.PublishModuleTxn(sender, 10, moduleSource)
	if status := executor.VerifyTransaction(txn); status != nil {
		return fmt.Errorf("verification rejected the publish with %v", *status)
	}
	return expectExecuted(executor.ExecuteAndApply(txn))
}

func publishDuplicateModule(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)

	if err := expectExecuted(executor.ExecuteAndApply(
		harness.PublishModuleTxn(sender, 10, moduleSource))); err != nil {
		return err
	}
	return expectKept(executor.ExecuteAndApply(
		harness.PublishModuleTxn(sender, 11, moduleSource)),
		kestrel.DuplicateModuleName)
}

func publishAddressMismatch(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)
	other := harness.NewAccount()

	txn := harness.PublishModuleTxnForAddress(sender, other.Address, 10, moduleSource)
	if status := executor.VerifyTransaction(txn); status != nil {
		return fmt.Errorf("verification rejected the publish with %v", *status)
	}
	return expectKept(executor.ExecuteTransaction(txn),
		kestrel.ModuleAddressDoesNotMatchSender)
}

func publishRestrictedRejectsNonRoot(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.CustomScripts())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)

	txn := harness.PublishModuleTxn(sender, 10, moduleSource)
	return harness.CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.InvalidModulePublisher))
}

func publishRestrictedAllowsRoot(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.CustomScripts())
	root := executor.RootAccount()

	txn := harness.PublishModuleTxn(root, harness.RootSequenceNumber(), moduleSource)
	if status := executor.VerifyTransaction(txn); status != nil {
		return fmt.Errorf("verification rejected the root publish with %v", *status)
	}
	return expectExecuted(executor.ExecuteAndApply(txn))
}

func transferSuccess(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)
	receiver := executor.AddAccount(harness.DefaultAccountAmount, 10)

	const amount = 1000
	output := executor.ExecuteAndApply(harness.PeerToPeerTxn(sender, receiver, 10, amount))
	if err := expectExecuted(output); err != nil {
		return err
	}

	got, found := executor.ReadAccountResource(receiver)
	if !found {
		return fmt.Errorf("receiver account vanished")
	}
	if want := uint64(harness.DefaultAccountAmount + amount); got.Balance != want {
		return fmt.Errorf("receiver balance is %d, want %d", got.Balance, want)
	}
	return nil
}

func transferInsufficientBalance(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)
	receiver := executor.AddAccount(harness.DefaultAccountAmount, 10)

	output := executor.ExecuteTransaction(
		harness.PeerToPeerTxn(sender, receiver, 10, 10*harness.DefaultAccountAmount))
	want := kestrel.Keep(kestrel.AbortStatus(
		basalt.AccountModuleName, basalt.AbortInsufficientBalance))
	if !harness.TransactionStatusEq(output.Status, want) {
		return fmt.Errorf("transfer finished as %v, want %v", output.Status, want)
	}
	return nil
}

func accountCreate(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)
	fresh := harness.NewAccount()

	const amount = 5000
	output := executor.ExecuteAndApply(harness.CreateAccountTxn(sender, fresh, 10, amount))
	if err := expectExecuted(output); err != nil {
		return err
	}

	got, found := executor.ReadAccountResource(fresh)
	if !found {
		return fmt.Errorf("created account does not exist")
	}
	if got.Balance != amount {
		return fmt.Errorf("created account balance is %d, want %d", got.Balance, amount)
	}
	return nil
}

func prologueSequenceNumber(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)

	if err := harness.CheckPrologueParity(
		executor.VerifyTransaction(harness.EmptyTxn(sender, 9)),
		executor.ExecuteTransaction(harness.EmptyTxn(sender, 9)).Status,
		kestrel.Status(kestrel.SequenceNumberTooOld)); err != nil {
		return err
	}
	return harness.CheckPrologueParity(
		executor.VerifyTransaction(harness.EmptyTxn(sender, 11)),
		executor.ExecuteTransaction(harness.EmptyTxn(sender, 11)).Status,
		kestrel.Status(kestrel.SequenceNumberTooNew))
}

func prologueFeeBalance(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor, kestrel.Open())
	sender := executor.AddAccount(harness.DefaultMaxGasAmount-1, 10)

	txn := harness.EmptyTxn(sender, 10)
	return harness.CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.InsufficientBalanceForTransactionFee))
}

func scriptWhitelist(processor kestrel.Processor) error {
	executor := harness.NewExecutor(processor,
		kestrel.Locked(kestrel.CodeHash(nil)))
	sender := executor.AddAccount(harness.DefaultAccountAmount, 10)

	txn := harness.EmptyTxn(sender, 10)
	return harness.CheckPrologueParity(
		executor.VerifyTransaction(txn),
		executor.ExecuteTransaction(txn).Status,
		kestrel.Status(kestrel.UnknownScript))
}

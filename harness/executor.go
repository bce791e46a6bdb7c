// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package harness provides a deterministic in-memory test bed for
// transaction processors: a fake ledger, deterministic accounts, and an
// executor driving single transactions through verification and execution.
package harness

import (
	"fmt"

	"github.com/kestrel-foundation/kestrel/compiler"
	"github.com/kestrel-foundation/kestrel/kestrel"

	// Register the reference processor used by the genesis constructors.
	_ "github.com/kestrel-foundation/kestrel/processor/basalt"
)

// Harness default gas parameters. They admit every transaction of the test
// corpus against the default account balances.
const (
	DefaultMaxGasAmount  = 100_000
	DefaultGasUnitPrice  = 1
	DefaultAccountAmount = 1_000_000

	rootBalance        = 1_000_000_000
	rootSequenceNumber = 1
)

// ReferenceProcessorName selects the reference processor in the registry.
const ReferenceProcessorName = "basalt"

// Executor drives transactions through a processor against an in-memory
// ledger. Executing a transaction never changes the ledger; applying its
// write set is a separate, explicit step.
type Executor struct {
	processor kestrel.Processor
	store     *DataStore
	root      *Account
}

// FromGenesis creates an executor on a fresh ledger with an open publishing
// policy, using the reference processor.
func FromGenesis() *Executor {
	return FromGenesisWithOptions(kestrel.Open())
}

// FromGenesisWithOptions creates an executor on a fresh ledger carrying the
// given publishing option, using the reference processor.
func FromGenesisWithOptions(option kestrel.PublishingOption) *Executor {
	factory := kestrel.GetProcessorFactory(ReferenceProcessorName)
	if factory == nil {
		panic(fmt.Sprintf("reference processor %q is not registered", ReferenceProcessorName))
	}
	return NewExecutor(factory(), option)
}

// WhitelistGenesis creates an executor on a fresh ledger that only admits
// the built-in scripts and restricts module publishing to the root account.
func WhitelistGenesis() *Executor {
	return FromGenesisWithOptions(kestrel.Locked(compiler.StandardScriptHashes()...))
}

// NewExecutor creates an executor on a fresh ledger using the given
// processor. The ledger starts with the root account and the given
// publishing option; everything else is added by the test.
func NewExecutor(processor kestrel.Processor, option kestrel.PublishingOption) *Executor {
	root := NewRootAccount()
	store := NewDataStore()
	rootResource := kestrel.AccountResource{
		AuthKey:        root.AuthKey(),
		Balance:        rootBalance,
		SequenceNumber: rootSequenceNumber,
	}
	store.Set(kestrel.AccountResourcePath(root.Address), rootResource.Encode())
	store.Set(kestrel.PublishingOptionPath(), option.Encode())
	return &Executor{
		processor: processor,
		store:     store,
		root:      root,
	}
}

// RootAccount returns the root account seeded at genesis. Its starting
// sequence number is one, reflecting the genesis transaction itself.
func (e *Executor) RootAccount() *Account {
	return e.root
}

// RootSequenceNumber returns the sequence number the root account starts
// with at genesis.
func RootSequenceNumber() uint64 {
	return rootSequenceNumber
}

// AddAccount creates a fresh account with the given balance and sequence
// number and registers it in the ledger.
func (e *Executor) AddAccount(balance, sequenceNumber uint64) *Account {
	data := NewAccountData(balance, sequenceNumber)
	e.AddAccountData(data)
	return data.Account
}

// AddAccountData registers the given account in the ledger. Registering an
// address twice is a test bug and panics.
func (e *Executor) AddAccountData(data *AccountData) {
	path := kestrel.AccountResourcePath(data.Account.Address)
	if _, exists := e.store.Read(path); exists {
		panic(fmt.Sprintf("account %v is already registered", data.Account.Address))
	}
	resource := data.Resource()
	e.store.Set(path, resource.Encode())
}

// VerifyTransaction runs the processor's admission checks against the
// current ledger. A nil result means the transaction would be admitted.
func (e *Executor) VerifyTransaction(txn kestrel.SignedTransaction) *kestrel.VMStatus {
	return e.processor.Verify(txn, e.store)
}

// ExecuteTransaction executes a transaction against the current ledger and
// returns its output without applying it. A discarded output carrying state
// changes violates the processor contract and panics.
func (e *Executor) ExecuteTransaction(txn kestrel.SignedTransaction) kestrel.Output {
	output := e.processor.Execute(txn, e.store)
	if output.Status.IsDiscard() && len(output.WriteSet) > 0 {
		panic(fmt.Sprintf(
			"processor produced a discarded transaction with %d state changes",
			len(output.WriteSet)))
	}
	return output
}

// ExecuteAndApply executes a transaction and, if it is kept, applies its
// write set to the ledger.
func (e *Executor) ExecuteAndApply(txn kestrel.SignedTransaction) kestrel.Output {
	output := e.ExecuteTransaction(txn)
	if output.Status.IsKeep() {
		e.ApplyWriteSet(output.WriteSet)
	}
	return output
}

// ApplyWriteSet applies a write set to the ledger.
func (e *Executor) ApplyWriteSet(writeSet kestrel.WriteSet) {
	e.store.Apply(writeSet)
}

// Read returns the raw value at the given path of the current ledger.
func (e *Executor) Read(path kestrel.AccessPath) ([]byte, bool) {
	return e.store.Read(path)
}

// ReadAccountResource returns the current account resource of the given
// account.
func (e *Executor) ReadAccountResource(account *Account) (kestrel.AccountResource, bool) {
	return kestrel.ReadAccountResource(e.store, account.Address)
}

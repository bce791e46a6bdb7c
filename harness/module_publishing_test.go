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

const testModuleSource = "module M { }"

func TestModulePublishing_OpenPolicyAllowsAnySender(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	txn := PublishModuleTxn(sender, 10, testModuleSource)
	if status := executor.VerifyTransaction(txn); status != nil {
		t.Fatalf("verification rejected the publish with %v", *status)
	}

	output := executor.ExecuteAndApply(txn)
	want := kestrel.Keep(kestrel.Status(kestrel.Executed))
	if !TransactionStatusEq(output.Status, want) {
		t.Fatalf("publish finished as %v, want %v", output.Status, want)
	}

	if _, found := executor.Read(kestrel.ModulePath(sender.Address, "M")); !found {
		t.Errorf("published module not found in the ledger")
	}
}

func TestModulePublishing_SecondPublishOfSameNameIsKeptAsFailure(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	output := executor.ExecuteAndApply(PublishModuleTxn(sender, 10, testModuleSource))
	if want := kestrel.Keep(kestrel.Status(kestrel.Executed)); !TransactionStatusEq(output.Status, want) {
		t.Fatalf("first publish finished as %v, want %v", output.Status, want)
	}

	output = executor.ExecuteAndApply(PublishModuleTxn(sender, 11, testModuleSource))
	want := kestrel.Keep(kestrel.Status(kestrel.DuplicateModuleName))
	if !TransactionStatusEq(output.Status, want) {
		t.Fatalf("second publish finished as %v, want %v", output.Status, want)
	}

	resource, _ := executor.ReadAccountResource(sender)
	if resource.SequenceNumber != 12 {
		t.Errorf("sequence number is %d, want 12", resource.SequenceNumber)
	}
}

func TestModulePublishing_ForeignDeclaredAddressSplitsVerifyAndExecute(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)
	other := NewAccount()

	// Admission cannot inspect the compiled module, so the mismatch passes
	// verification and only fails during execution.
	txn := PublishModuleTxnForAddress(sender, other.Address, 10, testModuleSource)
	if err := CheckPrologueDisparity(
		executor.VerifyTransaction(txn), nil,
		executor.ExecuteTransaction(txn).Status,
		kestrel.Keep(kestrel.Status(kestrel.ModuleAddressDoesNotMatchSender))); err != nil {
		t.Error(err)
	}
}

func TestModulePublishing_RestrictedPolicyRejectsNormalAccounts(t *testing.T) {
	for _, option := range []kestrel.PublishingOption{
		kestrel.CustomScripts(),
		kestrel.Locked(),
	} {
		t.Run(option.Policy.String(), func(t *testing.T) {
			executor := FromGenesisWithOptions(option)
			sender := executor.AddAccount(DefaultAccountAmount, 10)

			txn := PublishModuleTxn(sender, 10, testModuleSource)
			if err := CheckPrologueParity(
				executor.VerifyTransaction(txn),
				executor.ExecuteTransaction(txn).Status,
				kestrel.Status(kestrel.InvalidModulePublisher)); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestModulePublishing_RestrictedPolicyAllowsRoot(t *testing.T) {
	for _, option := range []kestrel.PublishingOption{
		kestrel.CustomScripts(),
		kestrel.Locked(),
	} {
		t.Run(option.Policy.String(), func(t *testing.T) {
			executor := FromGenesisWithOptions(option)
			root := executor.RootAccount()

			txn := PublishModuleTxn(root, RootSequenceNumber(), testModuleSource)
			if status := executor.VerifyTransaction(txn); status != nil {
				t.Fatalf("verification rejected the root publish with %v", *status)
			}

			output := executor.ExecuteAndApply(txn)
			want := kestrel.Keep(kestrel.Status(kestrel.Executed))
			if !TransactionStatusEq(output.Status, want) {
				t.Fatalf("root publish finished as %v, want %v", output.Status, want)
			}
			if _, found := executor.Read(kestrel.ModulePath(root.Address, "M")); !found {
				t.Errorf("root module not found in the ledger")
			}
		})
	}
}

func TestModulePublishing_DistinctNamesCoexistUnderOneAccount(t *testing.T) {
	executor := FromGenesis()
	sender := executor.AddAccount(DefaultAccountAmount, 10)

	for i, source := range []string{"module A { }", "module B { }"} {
		output := executor.ExecuteAndApply(
			PublishModuleTxn(sender, 10+uint64(i), source))
		want := kestrel.Keep(kestrel.Status(kestrel.Executed))
		if !TransactionStatusEq(output.Status, want) {
			t.Fatalf("publish %d finished as %v, want %v", i, output.Status, want)
		}
	}

	for _, name := range []string{"A", "B"} {
		if _, found := executor.Read(kestrel.ModulePath(sender.Address, name)); !found {
			t.Errorf("module %s not found in the ledger", name)
		}
	}
}

func TestModulePublishing_SameNameUnderDifferentAccountsCoexists(t *testing.T) {
	executor := FromGenesis()
	first := executor.AddAccount(DefaultAccountAmount, 0)
	second := executor.AddAccount(DefaultAccountAmount, 0)

	for _, sender := range []*Account{first, second} {
		output := executor.ExecuteAndApply(PublishModuleTxn(sender, 0, testModuleSource))
		want := kestrel.Keep(kestrel.Status(kestrel.Executed))
		if !TransactionStatusEq(output.Status, want) {
			t.Fatalf("publish finished as %v, want %v", output.Status, want)
		}
	}
}

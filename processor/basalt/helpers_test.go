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
	"crypto/ed25519"
	"testing"

	"github.com/kestrel-foundation/kestrel/compiler"
	"github.com/kestrel-foundation/kestrel/keygen"
	"github.com/kestrel-foundation/kestrel/kestrel"
)

// ledger is a minimal in-memory state view for processor tests.
type ledger map[kestrel.AccessPath][]byte

func (l ledger) Read(path kestrel.AccessPath) ([]byte, bool) {
	value, found := l[path]
	return value, found
}

func (l ledger) apply(writeSet kestrel.WriteSet) {
	for _, op := range writeSet {
		if op.Delete {
			delete(l, op.Path)
		} else {
			l[op.Path] = op.Value
		}
	}
}

func (l ledger) setAccount(account *testAccount, balance, sequenceNumber uint64) {
	resource := kestrel.AccountResource{
		AuthKey:        kestrel.AuthKeyFromPublicKey(account.public),
		Balance:        balance,
		SequenceNumber: sequenceNumber,
	}
	l[kestrel.AccountResourcePath(account.address)] = resource.Encode()
}

func (l ledger) setPublishingOption(option kestrel.PublishingOption) {
	l[kestrel.PublishingOptionPath()] = option.Encode()
}

func (l ledger) account(t *testing.T, account *testAccount) kestrel.AccountResource {
	t.Helper()
	resource, found := kestrel.ReadAccountResource(l, account.address)
	if !found {
		t.Fatalf("account %v does not exist", account.address)
	}
	return resource
}

type testAccount struct {
	address kestrel.Address
	public  ed25519.PublicKey
	private ed25519.PrivateKey
}

func newTestAccount(seed uint64) *testAccount {
	public, private := keygen.New(seed).Generate()
	return &testAccount{
		address: kestrel.AddressFromPublicKey(public),
		public:  public,
		private: private,
	}
}

const (
	testMaxGasAmount = 100_000
	testBalance      = 1_000_000
)

func (a *testAccount) sign(payload kestrel.Payload, sequenceNumber uint64) kestrel.SignedTransaction {
	return kestrel.Sign(kestrel.RawTransaction{
		Sender:          a.address,
		SequenceNumber:  sequenceNumber,
		Payload:         payload,
		MaxGasAmount:    testMaxGasAmount,
		GasUnitPrice:    1,
		GasCurrencyCode: kestrel.CoinName,
	}, a.private)
}

func compileModule(t *testing.T, address kestrel.Address, source string) []byte {
	t.Helper()
	code, err := compiler.CompileModuleWithAddress(address, "test.module", source)
	if err != nil {
		t.Fatalf("failed to compile module: %v", err)
	}
	return code
}

func emptyScriptPayload() kestrel.Payload {
	return kestrel.NewScriptPayload(compiler.EmptyScript())
}

func transferPayload(to kestrel.Address, amount uint64) kestrel.Payload {
	return kestrel.NewScriptPayload(
		compiler.PeerToPeerScript(),
		kestrel.AddressArg(to),
		kestrel.U64Arg(amount))
}

func createAccountPayload(at kestrel.Address, amount uint64) kestrel.Payload {
	return kestrel.NewScriptPayload(
		compiler.CreateAccountScript(),
		kestrel.AddressArg(at),
		kestrel.U64Arg(amount))
}

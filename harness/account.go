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
	"crypto/ed25519"
	"sync"

	"github.com/kestrel-foundation/kestrel/keygen"
	"github.com/kestrel-foundation/kestrel/kestrel"
)

// Account holds the keys and address of one test account. Accounts created
// by NewAccount form a deterministic sequence, so tests get the same
// addresses and signatures on every run.
type Account struct {
	Address    kestrel.Address
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// Key generator seeds. The account stream and the root key are derived from
// separate fixed seeds so that adding accounts never shifts the root key.
const (
	accountKeySeed = 0x6b65737472656c01
	rootKeySeed    = 0x6b65737472656c02
)

var (
	accountKeysMu sync.Mutex
	accountKeys   = keygen.New(accountKeySeed)
)

// NewAccount creates the next account of the deterministic account sequence.
func NewAccount() *Account {
	accountKeysMu.Lock()
	public, private := accountKeys.Generate()
	accountKeysMu.Unlock()
	return &Account{
		Address:    kestrel.AddressFromPublicKey(public),
		PublicKey:  public,
		PrivateKey: private,
	}
}

// NewRootAccount returns the association root account. Its address is the
// well-known root address; its keys are fixed so that signatures over root
// transactions are reproducible.
func NewRootAccount() *Account {
	public, private := keygen.New(rootKeySeed).Generate()
	return &Account{
		Address:    kestrel.RootAddress,
		PublicKey:  public,
		PrivateKey: private,
	}
}

// AuthKey returns the authentication key matching the account's public key.
func (a *Account) AuthKey() kestrel.AuthKey {
	return kestrel.AuthKeyFromPublicKey(a.PublicKey)
}

// CreateSignedTxn signs a transaction sending the given payload from this
// account, using the harness default gas parameters.
func (a *Account) CreateSignedTxn(
	payload kestrel.Payload,
	sequenceNumber uint64,
) kestrel.SignedTransaction {
	return a.CreateSignedTxnWithGas(
		payload, sequenceNumber, DefaultMaxGasAmount, DefaultGasUnitPrice)
}

// CreateSignedTxnWithGas signs a transaction with explicit gas parameters.
func (a *Account) CreateSignedTxnWithGas(
	payload kestrel.Payload,
	sequenceNumber uint64,
	maxGasAmount uint64,
	gasUnitPrice uint64,
) kestrel.SignedTransaction {
	return a.CreateSignedTxnWithSender(
		a.Address, payload, sequenceNumber, maxGasAmount, gasUnitPrice)
}

// CreateSignedTxnWithSender signs a transaction naming an arbitrary sender
// address. The sender does not have to match this account's address; tests
// use the mismatch to probe authorization failures.
func (a *Account) CreateSignedTxnWithSender(
	sender kestrel.Address,
	payload kestrel.Payload,
	sequenceNumber uint64,
	maxGasAmount uint64,
	gasUnitPrice uint64,
) kestrel.SignedTransaction {
	return kestrel.Sign(kestrel.RawTransaction{
		Sender:          sender,
		SequenceNumber:  sequenceNumber,
		Payload:         payload,
		MaxGasAmount:    maxGasAmount,
		GasUnitPrice:    gasUnitPrice,
		GasCurrencyCode: kestrel.CoinName,
	}, a.PrivateKey)
}

// AccountData pairs an account with the ledger state it should start with.
type AccountData struct {
	Account        *Account
	Balance        uint64
	SequenceNumber uint64
}

// NewAccountData creates a fresh account with the given starting balance and
// sequence number.
func NewAccountData(balance, sequenceNumber uint64) *AccountData {
	return &AccountData{
		Account:        NewAccount(),
		Balance:        balance,
		SequenceNumber: sequenceNumber,
	}
}

// Resource returns the account resource representing this account data in
// ledger state.
func (d *AccountData) Resource() kestrel.AccountResource {
	return kestrel.AccountResource{
		AuthKey:        d.Account.AuthKey(),
		Balance:        d.Balance,
		SequenceNumber: d.SequenceNumber,
	}
}

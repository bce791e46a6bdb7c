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

	"github.com/holiman/uint256"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// runPrologue performs the admission checks of a transaction against the
// given state. It never modifies state. A nil result means the transaction
// is admissible; otherwise the returned status names the first failed check.
// The check order is fixed; tests rely on it when several checks would fail.
func runPrologue(txn *kestrel.SignedTransaction, state kestrel.StateView) *kestrel.VMStatus {
	raw := &txn.Raw

	if raw.GasCurrencyCode != kestrel.CoinName {
		return statusOf(kestrel.CurrencyCodeNotRecognized)
	}

	account, found := kestrel.ReadAccountResource(state, raw.Sender)
	if !found {
		return statusOf(kestrel.SendingAccountDoesNotExist)
	}

	if !txn.VerifySignature() {
		return statusOf(kestrel.InvalidSignature)
	}
	if kestrel.AuthKeyFromPublicKey(ed25519.PublicKey(txn.PublicKey)) != account.AuthKey {
		return statusOf(kestrel.InvalidAuthKey)
	}

	option := publishingOption(state)
	switch raw.Payload.Kind {
	case kestrel.ModulePayload:
		if !option.AllowsModulePublisher(raw.Sender) {
			return statusOf(kestrel.InvalidModulePublisher)
		}
	case kestrel.ScriptPayload:
		if !option.AllowsScript(kestrel.CodeHash(raw.Payload.Code)) {
			return statusOf(kestrel.UnknownScript)
		}
	}

	if raw.MaxGasAmount > maxTransactionGasUnits {
		return statusOf(kestrel.MaxGasUnitsExceedsMaxGasBound)
	}
	if raw.MaxGasAmount < minTransactionGasUnits {
		return statusOf(kestrel.MaxGasUnitsBelowMinTransactionGas)
	}

	// The fee bound is checked in 256-bit space since the product of two
	// uint64 values does not fit a uint64.
	maxFee := new(uint256.Int).Mul(
		uint256.NewInt(raw.MaxGasAmount),
		uint256.NewInt(raw.GasUnitPrice),
	)
	if maxFee.CmpUint64(account.Balance) > 0 {
		return statusOf(kestrel.InsufficientBalanceForTransactionFee)
	}

	if raw.SequenceNumber < account.SequenceNumber {
		return statusOf(kestrel.SequenceNumberTooOld)
	}
	if raw.SequenceNumber > account.SequenceNumber {
		return statusOf(kestrel.SequenceNumberTooNew)
	}

	return nil
}

// publishingOption reads the on-chain publishing configuration. A chain
// without the configuration entry behaves as an open chain.
func publishingOption(state kestrel.StateView) kestrel.PublishingOption {
	data, found := state.Read(kestrel.PublishingOptionPath())
	if !found {
		return kestrel.Open()
	}
	option, err := kestrel.DecodePublishingOption(data)
	if err != nil {
		return kestrel.Open()
	}
	return option
}

func statusOf(code kestrel.StatusCode) *kestrel.VMStatus {
	status := kestrel.Status(code)
	return &status
}

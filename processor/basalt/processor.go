// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package basalt provides the reference transaction processor. It favors
// clarity over speed and serves as the semantic baseline other processor
// implementations are tested against.
package basalt

import (
	"github.com/kestrel-foundation/kestrel/kestrel"
)

func init() {
	kestrel.RegisterProcessorFactory("basalt", NewProcessor)
}

type processor struct{}

// NewProcessor creates a reference processor instance.
func NewProcessor() kestrel.Processor {
	return &processor{}
}

func (p *processor) Verify(txn kestrel.SignedTransaction, state kestrel.StateView) *kestrel.VMStatus {
	return runPrologue(&txn, state)
}

func (p *processor) Execute(txn kestrel.SignedTransaction, state kestrel.StateView) kestrel.Output {
	if status := runPrologue(&txn, state); status != nil {
		return kestrel.Output{Status: kestrel.TransactionStatusFor(*status)}
	}

	raw := &txn.Raw
	s := newTransactionState(state)

	// Buy the full gas budget up front; the prologue established that the
	// product fits a uint64 and that the balance covers it. The unused part
	// is refunded in the epilogue.
	maxFee := raw.MaxGasAmount * raw.GasUnitPrice
	account, _ := s.accountResource(raw.Sender)
	account.Balance -= maxFee
	s.setAccountResource(raw.Sender, account)

	snapshot := s.snapshot()
	status, programGas := executePayload(raw, s)

	gasUsed := intrinsicGas(raw) + programGas
	if gasUsed > raw.MaxGasAmount {
		status = kestrel.Status(kestrel.OutOfGas)
		gasUsed = raw.MaxGasAmount
	}
	if status.Code != kestrel.Executed {
		s.restore(snapshot)
	}

	runEpilogue(raw, s, gasUsed)

	return kestrel.Output{
		Status:   kestrel.TransactionStatusFor(status),
		WriteSet: s.toWriteSet(),
		GasUsed:  gasUsed,
	}
}

// runEpilogue refunds the unused part of the gas budget and advances the
// sender's sequence number. It runs for failed programs as well; only the
// program's own writes are rolled back.
func runEpilogue(raw *kestrel.RawTransaction, s *transactionState, gasUsed uint64) {
	account, _ := s.accountResource(raw.Sender)
	account.Balance += (raw.MaxGasAmount - gasUsed) * raw.GasUnitPrice
	account.SequenceNumber++
	s.setAccountResource(raw.Sender, account)
}

// executePayload runs the transaction's program against the mutation buffer
// and reports its status together with the program's gas charge. Program
// writes are applied to the buffer directly; rolling back on failure is the
// caller's concern.
func executePayload(raw *kestrel.RawTransaction, s *transactionState) (kestrel.VMStatus, uint64) {
	switch raw.Payload.Kind {
	case kestrel.ModulePayload:
		return publishModule(raw, s), publishGasUnits
	case kestrel.ScriptPayload:
		return executeScript(raw, s)
	default:
		return kestrel.Status(kestrel.MalformedBytecode), 0
	}
}

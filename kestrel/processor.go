// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package kestrel

//go:generate mockgen -source processor.go -destination processor_mock.go -package kestrel

// Processor is an interface for a component capable of verifying and
// executing signed transactions against a state view. Implementations
// handle admission checks (signatures, replay protection, gas purchase,
// publishing permissions), program execution, and the production of write
// sets, without ever mutating the underlying state themselves.
type Processor interface {
	// Verify runs only the admission phase of the pipeline. It returns nil
	// if the transaction would be admitted, or the status describing the
	// rejection reason otherwise. Verify must not mutate the state view.
	Verify(transaction SignedTransaction, state StateView) *VMStatus

	// Execute runs full verification and execution. The returned output
	// carries the transaction status and, for kept transactions, the write
	// set describing all resulting state mutations. The write set is not
	// applied; the caller decides whether and where to apply it.
	Execute(transaction SignedTransaction, state StateView) Output
}

// Output summarizes the result of executing one transaction. A discarded
// status is never accompanied by a write set; a kept status always carries
// at least the sender's sequence-number increment and gas debit.
type Output struct {
	Status   TransactionStatus
	WriteSet WriteSet
	GasUsed  uint64
}

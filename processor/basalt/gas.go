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

import "github.com/kestrel-foundation/kestrel/kestrel"

// The gas schedule of the reference processor. Every transaction pays an
// intrinsic charge covering admission and bookkeeping plus a flat charge for
// the program it runs. All values are in gas units.
const (
	// minTransactionGasUnits is both the lower bound on a transaction's
	// declared gas budget and the base intrinsic charge.
	minTransactionGasUnits = 600
	// maxTransactionGasUnits is the upper bound on a declared gas budget.
	maxTransactionGasUnits = 4_000_000

	// intrinsicGasPerByte is charged per byte of payload code.
	intrinsicGasPerByte = 8

	publishGasUnits       = 500
	emptyScriptGasUnits   = 20
	transferGasUnits      = 300
	createAccountGasUnits = 400
)

// intrinsicGas is the charge every transaction pays before its program runs,
// failed ones included.
func intrinsicGas(raw *kestrel.RawTransaction) uint64 {
	return minTransactionGasUnits + uint64(len(raw.Payload.Code))*intrinsicGasPerByte
}

// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package kestrel defines the public types and interfaces of the Kestrel
// transaction-execution infrastructure: addresses, transactions, statuses,
// write sets, and the Processor interface implemented by virtual machine
// implementations. Client code interacts with VM implementations exclusively
// through the types of this package.
package kestrel

// CoinName is the currency code of the network's native coin. Transactions
// naming any other gas currency are rejected during validation.
const CoinName = "KST"

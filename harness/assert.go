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
	"fmt"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// StatusEq compares two statuses by code and abort code. The abort location
// is diagnostic only and deliberately not part of the comparison.
func StatusEq(a, b kestrel.VMStatus) bool {
	return a.Code == b.Code && a.AbortCode == b.AbortCode
}

// TransactionStatusEq compares two transaction dispositions, using StatusEq
// for the inner statuses.
func TransactionStatusEq(a, b kestrel.TransactionStatus) bool {
	return a.IsKeep() == b.IsKeep() && StatusEq(a.VMStatus(), b.VMStatus())
}

// CheckPrologueParity checks that verification and execution reject a
// transaction with the same status: verification reports the status and
// execution discards with it. This is the normal shape of an admission
// failure.
func CheckPrologueParity(
	verified *kestrel.VMStatus,
	executed kestrel.TransactionStatus,
	want kestrel.VMStatus,
) error {
	if verified == nil {
		return fmt.Errorf("verification accepted the transaction, want %v", want)
	}
	if !StatusEq(*verified, want) {
		return fmt.Errorf("verification returned %v, want %v", *verified, want)
	}
	if wantExecuted := kestrel.Discard(want); !TransactionStatusEq(executed, wantExecuted) {
		return fmt.Errorf("execution returned %v, want %v", executed, wantExecuted)
	}
	return nil
}

// CheckPrologueDisparity checks the exceptional shape where verification and
// execution disagree: verification reports wantVerified (possibly nil for
// acceptance) while execution resolves to wantExecuted.
func CheckPrologueDisparity(
	verified *kestrel.VMStatus,
	wantVerified *kestrel.VMStatus,
	executed kestrel.TransactionStatus,
	wantExecuted kestrel.TransactionStatus,
) error {
	switch {
	case wantVerified == nil && verified != nil:
		return fmt.Errorf("verification returned %v, want acceptance", *verified)
	case wantVerified != nil && verified == nil:
		return fmt.Errorf("verification accepted the transaction, want %v", *wantVerified)
	case wantVerified != nil && !StatusEq(*verified, *wantVerified):
		return fmt.Errorf("verification returned %v, want %v", *verified, *wantVerified)
	}
	if !TransactionStatusEq(executed, wantExecuted) {
		return fmt.Errorf("execution returned %v, want %v", executed, wantExecuted)
	}
	return nil
}

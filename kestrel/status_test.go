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

import (
	"strings"
	"testing"
)

func TestStatusCode_TypeIsDerivedFromRange(t *testing.T) {
	tests := map[StatusCode]StatusType{
		UnknownStatus:                        StatusTypeUnknown,
		InvalidSignature:                     StatusTypeValidation,
		SequenceNumberTooNew:                 StatusTypeValidation,
		InsufficientBalanceForTransactionFee: StatusTypeValidation,
		CurrencyCodeNotRecognized:            StatusTypeValidation,
		ModuleAddressDoesNotMatchSender:      StatusTypeVerification,
		DuplicateModuleName:                  StatusTypeVerification,
		MalformedBytecode:                    StatusTypeVerification,
		Executed:                             StatusTypeExecution,
		OutOfGas:                             StatusTypeExecution,
		Aborted:                              StatusTypeExecution,
	}
	for code, want := range tests {
		if got := code.Type(); got != want {
			t.Errorf("type of %v is %v, want %v", code, got, want)
		}
	}
}

func TestTransactionStatusFor_ValidationDiscardsEverythingElseKeeps(t *testing.T) {
	discarded := TransactionStatusFor(Status(SequenceNumberTooOld))
	if !discarded.IsDiscard() {
		t.Errorf("validation failure resolved to %v, want a discard", discarded)
	}

	for _, code := range []StatusCode{DuplicateModuleName, Executed, OutOfGas, Aborted} {
		kept := TransactionStatusFor(Status(code))
		if !kept.IsKeep() {
			t.Errorf("%v resolved to %v, want a keep", code, kept)
		}
		if got := kept.VMStatus().Code; got != code {
			t.Errorf("inner status of keep is %v, want %v", got, code)
		}
	}
}

func TestVMStatus_AbortStringNamesLocationAndCode(t *testing.T) {
	status := AbortStatus("Account", 17)
	print := status.String()
	if !strings.Contains(print, "ABORTED") ||
		!strings.Contains(print, "17") ||
		!strings.Contains(print, "Account") {
		t.Errorf("unexpected print of abort status: %s", print)
	}
}

func TestTransactionStatus_StringShowsDisposition(t *testing.T) {
	if got := Keep(Status(Executed)).String(); !strings.HasPrefix(got, "Keep(") {
		t.Errorf("unexpected print of kept status: %s", got)
	}
	if got := Discard(Status(InvalidSignature)).String(); !strings.HasPrefix(got, "Discard(") {
		t.Errorf("unexpected print of discarded status: %s", got)
	}
}

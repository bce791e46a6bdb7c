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

import "fmt"

// StatusType groups status codes by the phase of the transaction pipeline
// that produces them. The type of a status determines whether a failing
// transaction is discarded or kept on the ledger.
type StatusType int

const (
	StatusTypeUnknown StatusType = iota
	// StatusTypeValidation covers rejections during the admission phase.
	// Transactions failing validation are discarded without any state change.
	StatusTypeValidation
	// StatusTypeVerification covers bytecode-level rejections discovered
	// after admission. Such transactions are kept on the ledger; the sender
	// is charged and its sequence number advances.
	StatusTypeVerification
	// StatusTypeExecution covers runtime outcomes, including success.
	StatusTypeExecution
)

func (t StatusType) String() string {
	switch t {
	case StatusTypeValidation:
		return "validation"
	case StatusTypeVerification:
		return "verification"
	case StatusTypeExecution:
		return "execution"
	default:
		return "unknown"
	}
}

// StatusCode identifies one specific transaction outcome. Codes are stable
// across releases; tests assert on them directly.
type StatusCode uint16

const (
	UnknownStatus StatusCode = 0

	// Validation statuses (1-999).
	InvalidSignature                     StatusCode = 1
	InvalidAuthKey                       StatusCode = 2
	SequenceNumberTooOld                 StatusCode = 3
	SequenceNumberTooNew                 StatusCode = 4
	InsufficientBalanceForTransactionFee StatusCode = 5
	SendingAccountDoesNotExist           StatusCode = 6
	InvalidModulePublisher               StatusCode = 7
	UnknownScript                        StatusCode = 8
	MaxGasUnitsExceedsMaxGasBound        StatusCode = 9
	MaxGasUnitsBelowMinTransactionGas    StatusCode = 10
	CurrencyCodeNotRecognized            StatusCode = 11

	// Verification statuses (1000-1999).
	ModuleAddressDoesNotMatchSender StatusCode = 1000
	DuplicateModuleName             StatusCode = 1001
	MalformedBytecode               StatusCode = 1002

	// Execution statuses (4000-4999).
	Executed StatusCode = 4000
	OutOfGas StatusCode = 4001
	Aborted  StatusCode = 4002
)

// Type returns the status type the code belongs to, derived from the code's
// numeric range.
func (c StatusCode) Type() StatusType {
	switch {
	case c >= 1 && c < 1000:
		return StatusTypeValidation
	case c >= 1000 && c < 2000:
		return StatusTypeVerification
	case c >= 4000 && c < 5000:
		return StatusTypeExecution
	default:
		return StatusTypeUnknown
	}
}

func (c StatusCode) String() string {
	switch c {
	case InvalidSignature:
		return "INVALID_SIGNATURE"
	case InvalidAuthKey:
		return "INVALID_AUTH_KEY"
	case SequenceNumberTooOld:
		return "SEQUENCE_NUMBER_TOO_OLD"
	case SequenceNumberTooNew:
		return "SEQUENCE_NUMBER_TOO_NEW"
	case InsufficientBalanceForTransactionFee:
		return "INSUFFICIENT_BALANCE_FOR_TRANSACTION_FEE"
	case SendingAccountDoesNotExist:
		return "SENDING_ACCOUNT_DOES_NOT_EXIST"
	case InvalidModulePublisher:
		return "INVALID_MODULE_PUBLISHER"
	case UnknownScript:
		return "UNKNOWN_SCRIPT"
	case MaxGasUnitsExceedsMaxGasBound:
		return "MAX_GAS_UNITS_EXCEEDS_MAX_GAS_BOUND"
	case MaxGasUnitsBelowMinTransactionGas:
		return "MAX_GAS_UNITS_BELOW_MIN_TRANSACTION_GAS"
	case CurrencyCodeNotRecognized:
		return "CURRENCY_CODE_NOT_RECOGNIZED"
	case ModuleAddressDoesNotMatchSender:
		return "MODULE_ADDRESS_DOES_NOT_MATCH_SENDER"
	case DuplicateModuleName:
		return "DUPLICATE_MODULE_NAME"
	case MalformedBytecode:
		return "MALFORMED_BYTECODE"
	case Executed:
		return "EXECUTED"
	case OutOfGas:
		return "OUT_OF_GAS"
	case Aborted:
		return "ABORTED"
	default:
		return fmt.Sprintf("UNKNOWN_STATUS(%d)", uint16(c))
	}
}

// VMStatus describes the outcome of verifying or executing one transaction.
// AbortCode is only meaningful for Aborted statuses, where it carries the
// user-defined abort reason raised by the executed program. Location names
// the module raising an abort; it is diagnostic and not considered stable.
type VMStatus struct {
	Code      StatusCode
	AbortCode uint64
	Location  string
}

// Status creates a VMStatus for the given code.
func Status(code StatusCode) VMStatus {
	return VMStatus{Code: code}
}

// AbortStatus creates the status of a program abort raised at the given
// location with the given user-defined abort code.
func AbortStatus(location string, abortCode uint64) VMStatus {
	return VMStatus{Code: Aborted, AbortCode: abortCode, Location: location}
}

func (s VMStatus) Type() StatusType {
	return s.Code.Type()
}

func (s VMStatus) String() string {
	if s.Code == Aborted {
		return fmt.Sprintf("%v(%d) at %s", s.Code, s.AbortCode, s.Location)
	}
	return s.Code.String()
}

// TransactionStatus is the ledger-level disposition of one transaction:
// either discarded before reaching the ledger, or kept with an inner status
// describing the execution outcome. A kept transaction always charges gas
// and advances the sender's sequence number, even if its inner status is a
// failure.
type TransactionStatus struct {
	kept   bool
	status VMStatus
}

// Keep creates the status of a transaction accepted into the ledger.
func Keep(status VMStatus) TransactionStatus {
	return TransactionStatus{kept: true, status: status}
}

// Discard creates the status of a transaction rejected without state change.
func Discard(status VMStatus) TransactionStatus {
	return TransactionStatus{kept: false, status: status}
}

// TransactionStatusFor derives the disposition for a status: validation
// failures discard the transaction, every other status keeps it.
func TransactionStatusFor(status VMStatus) TransactionStatus {
	if status.Type() == StatusTypeValidation {
		return Discard(status)
	}
	return Keep(status)
}

func (t TransactionStatus) IsKeep() bool {
	return t.kept
}

func (t TransactionStatus) IsDiscard() bool {
	return !t.kept
}

// VMStatus returns the inner status of the disposition.
func (t TransactionStatus) VMStatus() VMStatus {
	return t.status
}

func (t TransactionStatus) String() string {
	if t.kept {
		return fmt.Sprintf("Keep(%v)", t.status)
	}
	return fmt.Sprintf("Discard(%v)", t.status)
}

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
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// PublishingPolicy selects one of the recognized publishing regimes.
type PublishingPolicy uint8

const (
	// OpenPolicy allows any account to publish modules and run any script.
	OpenPolicy PublishingPolicy = iota + 1
	// CustomScriptsPolicy allows any script to run but restricts module
	// publication to the root account.
	CustomScriptsPolicy
	// LockedPolicy restricts scripts to a whitelist of code hashes and
	// module publication to the root account.
	LockedPolicy
)

func (p PublishingPolicy) String() string {
	switch p {
	case OpenPolicy:
		return "open"
	case CustomScriptsPolicy:
		return "custom_scripts"
	case LockedPolicy:
		return "locked"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// PublishingOption is the on-chain configuration controlling which accounts
// may publish modules and which scripts may run. It is part of ledger state,
// written during genesis; the VM reads it from there when admitting
// transactions.
type PublishingOption struct {
	Policy PublishingPolicy
	// AllowedScripts is the whitelist of script code hashes, consulted only
	// under LockedPolicy.
	AllowedScripts []Hash
}

// Open returns the policy allowing any account to publish modules and any
// script to run.
func Open() PublishingOption {
	return PublishingOption{Policy: OpenPolicy}
}

// CustomScripts returns the policy allowing arbitrary scripts while
// restricting module publication to the root account.
func CustomScripts() PublishingOption {
	return PublishingOption{Policy: CustomScriptsPolicy}
}

// Locked returns the policy restricting scripts to the given whitelist and
// module publication to the root account.
func Locked(allowedScripts ...Hash) PublishingOption {
	return PublishingOption{Policy: LockedPolicy, AllowedScripts: allowedScripts}
}

// AllowsModulePublisher reports whether an account at the given address may
// publish modules under this policy.
func (o PublishingOption) AllowsModulePublisher(address Address) bool {
	if o.Policy == OpenPolicy {
		return true
	}
	return address == RootAddress
}

// AllowsScript reports whether a script with the given code hash may run
// under this policy.
func (o PublishingOption) AllowsScript(hash Hash) bool {
	if o.Policy != LockedPolicy {
		return true
	}
	for _, allowed := range o.AllowedScripts {
		if allowed == hash {
			return true
		}
	}
	return false
}

// Encode serializes the option for storage in ledger state.
func (o PublishingOption) Encode() []byte {
	data, err := rlp.EncodeToBytes(&o)
	if err != nil {
		panic(fmt.Sprintf("failed to encode publishing option: %v", err))
	}
	return data
}

// DecodePublishingOption deserializes a publishing option from ledger state.
func DecodePublishingOption(data []byte) (PublishingOption, error) {
	var res PublishingOption
	if err := rlp.DecodeBytes(data, &res); err != nil {
		return PublishingOption{}, fmt.Errorf("failed to decode publishing option: %w", err)
	}
	return res, nil
}

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
	"bytes"
	"fmt"
	"strings"
)

// PathTag distinguishes the kinds of state a path can address under an
// account.
type PathTag uint8

const (
	// AccountResourceTag addresses the account's resource holding its
	// authentication key, balance and sequence number.
	AccountResourceTag PathTag = iota + 1
	// ModuleTag addresses a published module; the path name carries the
	// module name.
	ModuleTag
	// ConfigTag addresses a piece of on-chain configuration under the root
	// account.
	ConfigTag
)

// AccessPath identifies one piece of ledger state. Within one state
// snapshot each path maps to at most one value.
type AccessPath struct {
	Address Address
	Tag     PathTag
	Name    string
}

// AccountResourcePath returns the path of the account resource of the
// given address.
func AccountResourcePath(address Address) AccessPath {
	return AccessPath{Address: address, Tag: AccountResourceTag}
}

// ModulePath returns the path a module with the given name is published
// under at the given address.
func ModulePath(address Address, name string) AccessPath {
	return AccessPath{Address: address, Tag: ModuleTag, Name: name}
}

// PublishingOptionPath returns the path of the publishing policy
// configuration. The policy lives in ledger state under the root address so
// the VM's own admission checks read and enforce it.
func PublishingOptionPath() AccessPath {
	return AccessPath{Address: RootAddress, Tag: ConfigTag, Name: "publishing_option"}
}

// Compare orders paths by address, tag, and name. Write sets are sorted in
// this order to keep execution results deterministic.
func (p AccessPath) Compare(other AccessPath) int {
	if res := bytes.Compare(p.Address[:], other.Address[:]); res != 0 {
		return res
	}
	if p.Tag != other.Tag {
		if p.Tag < other.Tag {
			return -1
		}
		return 1
	}
	return strings.Compare(p.Name, other.Name)
}

func (p AccessPath) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%v/%d", p.Address, p.Tag)
	}
	return fmt.Sprintf("%v/%d/%s", p.Address, p.Tag, p.Name)
}

// WriteOp is one state mutation: a value stored at a path, or the deletion
// of the path.
type WriteOp struct {
	Path   AccessPath
	Value  []byte
	Delete bool
}

// StoreOp creates a write operation storing the given value.
func StoreOp(path AccessPath, value []byte) WriteOp {
	return WriteOp{Path: path, Value: value}
}

// DeleteOp creates a write operation removing the path.
func DeleteOp(path AccessPath) WriteOp {
	return WriteOp{Path: path, Delete: true}
}

// WriteSet is the ordered batch of state mutations produced by one
// transaction. It is a delta against the state it was produced on; applying
// it elsewhere, or twice, is not guaranteed to be meaningful. Later
// operations on the same path override earlier ones.
type WriteSet []WriteOp

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
	"maps"
	"slices"

	expmaps "golang.org/x/exp/maps"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// transactionState is a mutation buffer over an immutable state view. All
// writes of a transaction are collected here; the underlying view is never
// touched. At the end of a successful execution the buffer is drained into
// a deterministically ordered write set.
type transactionState struct {
	base   kestrel.StateView
	writes map[kestrel.AccessPath]entry
}

type entry struct {
	value   []byte
	deleted bool
}

func newTransactionState(base kestrel.StateView) *transactionState {
	return &transactionState{
		base:   base,
		writes: map[kestrel.AccessPath]entry{},
	}
}

func (s *transactionState) Read(path kestrel.AccessPath) ([]byte, bool) {
	if e, found := s.writes[path]; found {
		if e.deleted {
			return nil, false
		}
		return e.value, true
	}
	return s.base.Read(path)
}

func (s *transactionState) write(path kestrel.AccessPath, value []byte) {
	s.writes[path] = entry{value: value}
}

func (s *transactionState) remove(path kestrel.AccessPath) {
	s.writes[path] = entry{deleted: true}
}

// snapshot captures the current write buffer; restore rolls the buffer back
// to a captured snapshot, discarding every write made in between.
func (s *transactionState) snapshot() map[kestrel.AccessPath]entry {
	return maps.Clone(s.writes)
}

func (s *transactionState) restore(snapshot map[kestrel.AccessPath]entry) {
	s.writes = snapshot
	if s.writes == nil {
		s.writes = map[kestrel.AccessPath]entry{}
	}
}

// toWriteSet drains the buffer into a write set ordered by access path.
func (s *transactionState) toWriteSet() kestrel.WriteSet {
	paths := expmaps.Keys(s.writes)
	slices.SortFunc(paths, kestrel.AccessPath.Compare)
	res := make(kestrel.WriteSet, 0, len(paths))
	for _, path := range paths {
		if s.writes[path].deleted {
			res = append(res, kestrel.DeleteOp(path))
		} else {
			res = append(res, kestrel.StoreOp(path, s.writes[path].value))
		}
	}
	return res
}

func (s *transactionState) accountResource(address kestrel.Address) (kestrel.AccountResource, bool) {
	return kestrel.ReadAccountResource(s, address)
}

func (s *transactionState) setAccountResource(address kestrel.Address, res kestrel.AccountResource) {
	s.write(kestrel.AccountResourcePath(address), res.Encode())
}

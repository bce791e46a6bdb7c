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
	"slices"
	"sync"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// DataStore is the in-memory ledger state backing an executor. It implements
// kestrel.StateView and additionally accepts write sets produced by executed
// transactions. Safe for concurrent use.
type DataStore struct {
	mu   sync.RWMutex
	data map[kestrel.AccessPath][]byte
}

// NewDataStore creates an empty data store.
func NewDataStore() *DataStore {
	return &DataStore{data: map[kestrel.AccessPath][]byte{}}
}

// Read returns a copy of the value stored at the given path. Callers may
// retain and modify the result freely.
func (s *DataStore) Read(path kestrel.AccessPath) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.data[path]
	if !found {
		return nil, false
	}
	return slices.Clone(value), true
}

// Set stores a value at the given path, replacing any previous value.
func (s *DataStore) Set(path kestrel.AccessPath, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = slices.Clone(value)
}

// Delete removes the value at the given path, if any.
func (s *DataStore) Delete(path kestrel.AccessPath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, path)
}

// Apply applies a write set in order. Later operations on the same path win.
func (s *DataStore) Apply(writeSet kestrel.WriteSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range writeSet {
		if op.Delete {
			delete(s.data, op.Path)
		} else {
			s.data[op.Path] = slices.Clone(op.Value)
		}
	}
}

// Size returns the number of stored entries.
func (s *DataStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

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
	"bytes"
	"sync"
	"testing"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

func TestDataStore_StoredValuesCanBeRead(t *testing.T) {
	store := NewDataStore()
	path := kestrel.ModulePath(kestrel.Address{1}, "M")

	if _, found := store.Read(path); found {
		t.Errorf("empty store reports a value")
	}
	store.Set(path, []byte{1, 2, 3})
	value, found := store.Read(path)
	if !found || !bytes.Equal(value, []byte{1, 2, 3}) {
		t.Errorf("Read returned (%x, %t), want the stored value", value, found)
	}
}

func TestDataStore_ReadsAreIsolatedFromCallers(t *testing.T) {
	store := NewDataStore()
	path := kestrel.ModulePath(kestrel.Address{1}, "M")
	store.Set(path, []byte{1, 2, 3})

	value, _ := store.Read(path)
	value[0] = 99

	fresh, _ := store.Read(path)
	if !bytes.Equal(fresh, []byte{1, 2, 3}) {
		t.Errorf("modifying a read result changed the store")
	}
}

func TestDataStore_ApplyHonorsOperationOrder(t *testing.T) {
	store := NewDataStore()
	path := kestrel.ModulePath(kestrel.Address{1}, "M")

	store.Apply(kestrel.WriteSet{
		kestrel.StoreOp(path, []byte{1}),
		kestrel.StoreOp(path, []byte{2}),
	})
	value, _ := store.Read(path)
	if !bytes.Equal(value, []byte{2}) {
		t.Errorf("later write did not win, got %x", value)
	}

	store.Apply(kestrel.WriteSet{kestrel.DeleteOp(path)})
	if _, found := store.Read(path); found {
		t.Errorf("deleted path is still readable")
	}
}

func TestDataStore_SupportsConcurrentAccess(t *testing.T) {
	store := NewDataStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := kestrel.AccountResourcePath(kestrel.Address{byte(i)})
			store.Set(path, []byte{byte(i)})
			store.Read(path)
		}(i)
	}
	wg.Wait()
	if store.Size() != 10 {
		t.Errorf("store holds %d entries, want 10", store.Size())
	}
}

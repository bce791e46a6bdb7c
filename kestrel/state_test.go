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
	"testing"

	"go.uber.org/mock/gomock"
)

func TestReadAccountResource_DecodesStoredResource(t *testing.T) {
	address := Address{1}
	resource := AccountResource{
		AuthKey:        AuthKey{2},
		Balance:        1000,
		SequenceNumber: 5,
	}

	ctrl := gomock.NewController(t)
	state := NewMockStateView(ctrl)
	state.EXPECT().Read(AccountResourcePath(address)).Return(resource.Encode(), true)

	restored, found := ReadAccountResource(state, address)
	if !found {
		t.Fatalf("stored account resource not found")
	}
	if restored != resource {
		t.Errorf("restored resource is %+v, want %+v", restored, resource)
	}
}

func TestReadAccountResource_MissingAccountIsNotAnError(t *testing.T) {
	address := Address{1}

	ctrl := gomock.NewController(t)
	state := NewMockStateView(ctrl)
	state.EXPECT().Read(AccountResourcePath(address)).Return(nil, false)

	if _, found := ReadAccountResource(state, address); found {
		t.Errorf("missing account reported as found")
	}
}

func TestDecodeAccountResource_RejectsGarbage(t *testing.T) {
	if _, err := DecodeAccountResource([]byte("garbage")); err == nil {
		t.Errorf("expected error, got nil")
	}
}

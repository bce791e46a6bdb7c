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
	"github.com/kestrel-foundation/kestrel/compiler"
	"github.com/kestrel-foundation/kestrel/kestrel"
)

// publishModule stores the payload's module under the sender's address. The
// module must declare the sender as its address, and the sender must not
// already hold a module of the same name.
func publishModule(raw *kestrel.RawTransaction, s *transactionState) kestrel.VMStatus {
	module, err := compiler.DecodeModule(raw.Payload.Code)
	if err != nil {
		return kestrel.Status(kestrel.MalformedBytecode)
	}
	if module.Address != raw.Sender {
		return kestrel.Status(kestrel.ModuleAddressDoesNotMatchSender)
	}

	path := kestrel.ModulePath(raw.Sender, module.Name)
	if _, exists := s.Read(path); exists {
		return kestrel.Status(kestrel.DuplicateModuleName)
	}

	s.write(path, raw.Payload.Code)
	return kestrel.Status(kestrel.Executed)
}

// Copyright (c) 2024 Kestrel Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at kestrel.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package compiler turns textual module source into the code blobs consumed
// by transaction payloads, and provides the canonical blobs of the built-in
// scripts. Compilation is deterministic: the same source compiled for the
// same address always yields the same blob.
package compiler

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"

	"github.com/kestrel-foundation/kestrel/kestrel"
)

// Compiler compiles module source texts, caching results by source and
// declared address.
type Compiler struct {
	cache *lru.Cache[kestrel.Hash, []byte]
}

// defaultCacheSize is the number of compiled blobs retained by a compiler.
// Test suites recompile a small set of fixture modules over and over, so a
// modest cache eliminates nearly all repeated work.
const defaultCacheSize = 1024

// New creates a compiler with the default cache size.
func New() *Compiler {
	cache, err := lru.New[kestrel.Hash, []byte](defaultCacheSize)
	if err != nil {
		panic(fmt.Sprintf("failed to create compilation cache: %v", err))
	}
	return &Compiler{cache: cache}
}

// CompileModuleWithAddress compiles the given module source declaring the
// module to live under the given address. The resulting blob's declared
// address always equals the address argument. The file name is used in
// diagnostics only.
func (c *Compiler) CompileModuleWithAddress(
	address kestrel.Address,
	fileName string,
	source string,
) ([]byte, error) {
	key := cacheKey(address, source)
	if code, exists := c.cache.Get(key); exists {
		return code, nil
	}

	name, err := parseModuleName(fileName, source)
	if err != nil {
		return nil, err
	}

	body := sha3.Sum256([]byte(source))
	code := EncodeModule(Module{
		Address: address,
		Name:    name,
		Body:    body[:],
	})
	c.cache.Add(key, code)
	return code, nil
}

func cacheKey(address kestrel.Address, source string) kestrel.Hash {
	hasher := sha3.New256()
	hasher.Write(address[:])
	hasher.Write([]byte(source))
	var key kestrel.Hash
	copy(key[:], hasher.Sum(nil))
	return key
}

// parseModuleName extracts the declared module name from a source text of
// the form `module <name> { ... }`.
func parseModuleName(fileName, source string) (string, error) {
	fields := strings.Fields(source)
	if len(fields) < 2 || fields[0] != "module" {
		return "", fmt.Errorf("%s: expected `module <name> { ... }`", fileName)
	}
	name := strings.TrimSuffix(fields[1], "{")
	if !isIdentifier(name) {
		return "", fmt.Errorf("%s: invalid module name %q", fileName, name)
	}
	rest := strings.Join(fields[1:], " ")
	if !strings.Contains(rest, "{") || !strings.HasSuffix(strings.TrimSpace(rest), "}") {
		return "", fmt.Errorf("%s: module %s is missing its body", fileName, name)
	}
	return name, nil
}

func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return true
}

// defaultCompiler backs the package-level compile function shared by tests
// that do not need a private cache.
var defaultCompiler = New()

// CompileModuleWithAddress compiles the given module source using a shared
// package-level compiler.
func CompileModuleWithAddress(
	address kestrel.Address,
	fileName string,
	source string,
) ([]byte, error) {
	return defaultCompiler.CompileModuleWithAddress(address, fileName, source)
}

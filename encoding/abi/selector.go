/*
 * evmcodec - Canonical ABI encoding and storage packing for EVM-style contracts
 *
 * Copyright evmcodec contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package abi

import (
	"golang.org/x/crypto/sha3"

	"github.com/evmcodec/evmcodec"
)

// Selector returns the 4-byte selector of the given canonical function
// signature, e.g. "f(uint256)": the first four bytes of its Keccak-256
// hash.
func Selector(signature string) [evmcodec.SelectorLength]byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(signature))

	var selector [evmcodec.SelectorLength]byte
	copy(selector[:], hash.Sum(nil))
	return selector
}

// NewFunction returns the external function reference for the given
// contract address and canonical function signature.
func NewFunction(address evmcodec.Address, signature string) evmcodec.Function {
	return evmcodec.NewFunction(address, Selector(signature))
}

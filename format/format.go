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

package format

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
)

func BigInt(v *big.Int) string {
	return v.String()
}

func Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func Bytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func String(s string) string {
	return strconv.Quote(s)
}

func Array(elements []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, element := range elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(element)
	}
	sb.WriteByte(']')
	return sb.String()
}

func Tuple(elements []string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, element := range elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(element)
	}
	sb.WriteByte(')')
	return sb.String()
}

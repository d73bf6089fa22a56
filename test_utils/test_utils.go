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

// Package test_utils provides helpers shared by the codec tests.
package test_utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evmcodec/evmcodec"
)

// RequireValuesEqual asserts that two value sequences are equal.
// Numbers are compared numerically, so that mathematically equal
// big integers compare equal regardless of internal representation.
func RequireValuesEqual(t *testing.T, expected, actual []evmcodec.Value) {
	require.Len(t, actual, len(expected))
	for i, expectedValue := range expected {
		RequireValueEqual(t, expectedValue, actual[i])
	}
}

// RequireValueEqual asserts that two values are equal.
func RequireValueEqual(t *testing.T, expected, actual evmcodec.Value) {
	switch expected := expected.(type) {
	case evmcodec.UInt:
		actualValue, ok := actual.(evmcodec.UInt)
		require.True(t, ok, "expected %s, got %s", expected, actual)
		require.Equal(t, expected.Bits, actualValue.Bits)
		require.Zero(t,
			expected.Value.Cmp(actualValue.Value),
			"expected %s, got %s", expected, actualValue,
		)

	case evmcodec.Int:
		actualValue, ok := actual.(evmcodec.Int)
		require.True(t, ok, "expected %s, got %s", expected, actual)
		require.Equal(t, expected.Bits, actualValue.Bits)
		require.Zero(t,
			expected.Value.Cmp(actualValue.Value),
			"expected %s, got %s", expected, actualValue,
		)

	case evmcodec.Array:
		actualValue, ok := actual.(evmcodec.Array)
		require.True(t, ok, "expected %s, got %s", expected, actual)
		if expected.ArrayType != nil {
			require.NotNil(t, actualValue.ArrayType)
			require.True(t,
				expected.ArrayType.Equal(actualValue.ArrayType),
				"expected type %s, got %s",
				expected.ArrayType.ID(),
				actualValue.ArrayType.ID(),
			)
		}
		RequireValuesEqual(t, expected.Values, actualValue.Values)

	case evmcodec.Tuple:
		actualValue, ok := actual.(evmcodec.Tuple)
		require.True(t, ok, "expected %s, got %s", expected, actual)
		if expected.TupleType != nil {
			require.NotNil(t, actualValue.TupleType)
			require.True(t,
				expected.TupleType.Equal(actualValue.TupleType),
				"expected type %s, got %s",
				expected.TupleType.ID(),
				actualValue.TupleType.ID(),
			)
		}
		RequireValuesEqual(t, expected.Fields, actualValue.Fields)

	default:
		require.Equal(t, expected, actual)
	}
}

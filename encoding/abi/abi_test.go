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

package abi_test

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/evmcodec/evmcodec"
	"github.com/evmcodec/evmcodec/encoding/abi"
	"github.com/evmcodec/evmcodec/test_utils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// uw returns one word holding an unsigned integer.
func uw(v uint64) []byte {
	return new(big.Int).SetUint64(v).FillBytes(make([]byte, evmcodec.WordSize))
}

// sw returns one word holding a signed integer as full-word two's complement.
func sw(v int64) []byte {
	if v >= 0 {
		return uw(uint64(v))
	}
	word := new(big.Int).Lsh(big.NewInt(1), evmcodec.WordSize*8)
	word.Add(word, big.NewInt(v))
	return word.FillBytes(make([]byte, evmcodec.WordSize))
}

// padded returns the given bytes right-padded with zeros up to the next
// word boundary.
func padded(b []byte) []byte {
	length := (len(b) + evmcodec.WordSize - 1) / evmcodec.WordSize * evmcodec.WordSize
	out := make([]byte, length)
	copy(out, b)
	return out
}

func buf(words ...[]byte) []byte {
	return bytes.Join(words, nil)
}

func newUInt(t *testing.T, bits uint, v uint64) evmcodec.UInt {
	value, err := evmcodec.NewUIntFromUint64(bits, v)
	require.NoError(t, err)
	return value
}

func newInt(t *testing.T, bits uint, v int64) evmcodec.Int {
	value, err := evmcodec.NewIntFromInt64(bits, v)
	require.NoError(t, err)
	return value
}

func newFixedBytes(t *testing.T, b []byte) evmcodec.FixedBytes {
	value, err := evmcodec.NewFixedBytes(b)
	require.NoError(t, err)
	return value
}

func newInt16Array(t *testing.T, elements ...int64) evmcodec.Array {
	values := make([]evmcodec.Value, len(elements))
	for i, element := range elements {
		values[i] = newInt(t, 16, element)
	}
	return evmcodec.NewArray(values).
		WithType(evmcodec.NewVariableSizedArrayType(evmcodec.NewIntType(16)))
}

func TestEncodeValueTypes(t *testing.T) {

	t.Parallel()

	actual, err := abi.Encode(
		newUInt(t, 256, 10),
		newUInt(t, 16, 65534),
		newUInt(t, 24, 0x121212),
		newInt(t, 24, -1),
		newFixedBytes(t, []byte{0x1b, 0xab, 0xab}),
	)
	require.NoError(t, err)

	assert.Equal(t,
		"000000000000000000000000000000000000000000000000000000000000000a"+
			"000000000000000000000000000000000000000000000000000000000000fffe"+
			"0000000000000000000000000000000000000000000000000000000000121212"+
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"+
			"1babab0000000000000000000000000000000000000000000000000000000000",
		hex.EncodeToString(actual),
	)

	decoded, err := abi.Decode(
		actual,
		evmcodec.NewUIntType(256),
		evmcodec.NewUIntType(16),
		evmcodec.NewUIntType(24),
		evmcodec.NewIntType(24),
		evmcodec.NewFixedBytesType(3),
	)
	require.NoError(t, err)
	test_utils.RequireValuesEqual(t,
		[]evmcodec.Value{
			newUInt(t, 256, 10),
			newUInt(t, 16, 65534),
			newUInt(t, 24, 0x121212),
			newInt(t, 24, -1),
			newFixedBytes(t, []byte{0x1b, 0xab, 0xab}),
		},
		decoded,
	)
}

func TestEncodeMemoryArrayOneDim(t *testing.T) {

	t.Parallel()

	array := newInt16Array(t, -2, -1, 0)

	actual, err := abi.Encode(
		newUInt(t, 256, 10),
		array,
		newUInt(t, 256, 11),
	)
	require.NoError(t, err)

	expected := buf(
		uw(10), uw(0x60), uw(11),
		uw(3), sw(-2), sw(-1), sw(0),
	)
	assert.Equal(t, expected, actual)

	decoded, err := abi.Decode(
		actual,
		evmcodec.NewUIntType(256),
		evmcodec.NewVariableSizedArrayType(evmcodec.NewIntType(16)),
		evmcodec.NewUIntType(256),
	)
	require.NoError(t, err)
	test_utils.RequireValuesEqual(t,
		[]evmcodec.Value{
			newUInt(t, 256, 10),
			array,
			newUInt(t, 256, 11),
		},
		decoded,
	)
}

func TestEncodeMemoryArrayTwoDim(t *testing.T) {

	t.Parallel()

	// A fixed array of dynamic arrays is itself dynamic:
	// its head slot holds an offset, and element offsets are relative
	// to the start of the fixed array's own encoding.
	arrayType := evmcodec.NewConstantSizedArrayType(
		2,
		evmcodec.NewVariableSizedArrayType(evmcodec.NewIntType(16)),
	)
	array := evmcodec.NewArray([]evmcodec.Value{
		newInt16Array(t, 7, 0x0506, -1),
		newInt16Array(t, 4, 5),
	}).WithType(arrayType)

	actual, err := abi.Encode(
		newUInt(t, 256, 10),
		array,
		newUInt(t, 256, 11),
	)
	require.NoError(t, err)

	expected := buf(
		uw(10), uw(0x60), uw(11),
		uw(0x40), uw(0xc0),
		uw(3), sw(7), sw(0x0506), sw(-1),
		uw(2), sw(4), sw(5),
	)
	assert.Equal(t, expected, actual)

	decoded, err := abi.Decode(
		actual,
		evmcodec.NewUIntType(256),
		arrayType,
		evmcodec.NewUIntType(256),
	)
	require.NoError(t, err)
	test_utils.RequireValuesEqual(t,
		[]evmcodec.Value{
			newUInt(t, 256, 10),
			array,
			newUInt(t, 256, 11),
		},
		decoded,
	)
}

func TestEncodeMemoryByteArray(t *testing.T) {

	t.Parallel()

	s1 := "abcabcdefghjklmnopqrsuvwabcdefgijklmnopqrstuwabcdefgijklmnoprstuvw"
	s2 := "abcdefghijklmnopqrtuvwabcfghijklmnopqstuvwabcdeghijklmopqrstuvw"
	require.Len(t, s1, 66)
	require.Len(t, s2, 63)

	arrayType := evmcodec.NewVariableSizedArrayType(evmcodec.TheBytesType)
	array := evmcodec.NewArray([]evmcodec.Value{
		evmcodec.NewBytes([]byte(s1)),
		evmcodec.NewBytes([]byte(s2)),
	}).WithType(arrayType)

	actual, err := abi.Encode(
		newUInt(t, 256, 10),
		array,
		newUInt(t, 256, 11),
	)
	require.NoError(t, err)

	// Element offsets are relative to the first element head,
	// after the count word.
	expected := buf(
		uw(10), uw(0x60), uw(11),
		uw(2), uw(0x40), uw(0xc0),
		uw(66), padded([]byte(s1)),
		uw(63), padded([]byte(s2)),
	)
	assert.Equal(t, expected, actual)

	decoded, err := abi.Decode(
		actual,
		evmcodec.NewUIntType(256),
		arrayType,
		evmcodec.NewUIntType(256),
	)
	require.NoError(t, err)
	test_utils.RequireValuesEqual(t,
		[]evmcodec.Value{
			newUInt(t, 256, 10),
			array,
			newUInt(t, 256, 11),
		},
		decoded,
	)
}

func TestEncodeByteStringPair(t *testing.T) {

	t.Parallel()

	short := "123456789012345678901234567890a"
	long := "ffff123456789012345678901234567890afffffffff123456789012345678901234567890a"
	require.Len(t, short, 31)
	require.Len(t, long, 75)

	actual, err := abi.Encode(
		evmcodec.NewBytes([]byte(short)),
		evmcodec.NewBytes([]byte(long)),
	)
	require.NoError(t, err)

	expected := buf(
		uw(0x40), uw(0x80),
		uw(31), padded([]byte(short)),
		uw(75), padded([]byte(long)),
	)
	assert.Equal(t, expected, actual)
}

func TestEncodeStaticAddressArray(t *testing.T) {

	t.Parallel()

	arrayType := evmcodec.NewConstantSizedArrayType(3, evmcodec.TheAddressType)

	addresses := make([]evmcodec.Value, 3)
	for i := range addresses {
		b := bytes.Repeat([]byte{0xff}, evmcodec.AddressLength)
		b[evmcodec.AddressLength-1] -= byte(i)
		address, err := evmcodec.BytesToAddress(b)
		require.NoError(t, err)
		addresses[i] = address
	}

	array := evmcodec.NewArray(addresses).WithType(arrayType)

	actual, err := abi.Encode(array)
	require.NoError(t, err)

	// Static aggregates are emitted inline, with no offset word.
	var expected []byte
	for i := 0; i < 3; i++ {
		word := make([]byte, evmcodec.WordSize)
		copy(word[evmcodec.WordSize-evmcodec.AddressLength:], bytes.Repeat([]byte{0xff}, evmcodec.AddressLength))
		word[evmcodec.WordSize-1] -= byte(i)
		expected = append(expected, word...)
	}
	assert.Equal(t, expected, actual)

	decoded, err := abi.Decode(actual, arrayType)
	require.NoError(t, err)
	test_utils.RequireValuesEqual(t, []evmcodec.Value{array}, decoded)
}

func TestEncodeExternalFunction(t *testing.T) {

	t.Parallel()

	address, err := evmcodec.BytesToAddress(bytes.Repeat([]byte{0x11}, evmcodec.AddressLength))
	require.NoError(t, err)

	f := abi.NewFunction(address, "f(uint256)")

	actual, err := abi.Encode(f, f)
	require.NoError(t, err)

	word := make([]byte, evmcodec.WordSize)
	copy(word, f.Bytes())
	expected := buf(word, word)
	assert.Equal(t, expected, actual)

	decoded, err := abi.Decode(actual, evmcodec.TheFunctionType, evmcodec.TheFunctionType)
	require.NoError(t, err)
	test_utils.RequireValuesEqual(t, []evmcodec.Value{f, f}, decoded)
}

func TestEncodeEmptyDynamic(t *testing.T) {

	t.Parallel()

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		arrayType := evmcodec.NewVariableSizedArrayType(evmcodec.NewIntType(16))
		array := evmcodec.NewArray(nil).WithType(arrayType)

		actual, err := abi.Encode(array)
		require.NoError(t, err)
		assert.Equal(t, buf(uw(0x20), uw(0)), actual)

		decoded, err := abi.Decode(actual, arrayType)
		require.NoError(t, err)
		require.Len(t, decoded, 1)
		assert.Empty(t, decoded[0].(evmcodec.Array).Values)
	})

	t.Run("bytes", func(t *testing.T) {
		t.Parallel()

		actual, err := abi.Encode(evmcodec.NewBytes(nil))
		require.NoError(t, err)
		assert.Equal(t, buf(uw(0x20), uw(0)), actual)

		decoded, err := abi.Decode(actual, evmcodec.TheBytesType)
		require.NoError(t, err)
		require.Len(t, decoded, 1)
		assert.Empty(t, decoded[0].(evmcodec.Bytes))
	})
}

func TestEncodeTuple(t *testing.T) {

	t.Parallel()

	t.Run("static tuple is inline", func(t *testing.T) {
		t.Parallel()

		tupleType := evmcodec.NewTupleType(
			evmcodec.NewUIntType(8),
			evmcodec.TheBoolType,
		)
		tuple := evmcodec.NewTuple(
			newUInt(t, 8, 7),
			evmcodec.NewBool(true),
		).WithType(tupleType)

		actual, err := abi.Encode(tuple, newUInt(t, 256, 5))
		require.NoError(t, err)

		assert.Equal(t, buf(uw(7), uw(1), uw(5)), actual)

		decoded, err := abi.Decode(actual, tupleType, evmcodec.NewUIntType(256))
		require.NoError(t, err)
		test_utils.RequireValuesEqual(t,
			[]evmcodec.Value{tuple, newUInt(t, 256, 5)},
			decoded,
		)
	})

	t.Run("dynamic tuple has offset", func(t *testing.T) {
		t.Parallel()

		tupleType := evmcodec.NewTupleType(
			evmcodec.NewUIntType(256),
			evmcodec.TheBytesType,
		)
		tuple := evmcodec.NewTuple(
			newUInt(t, 256, 1),
			evmcodec.NewBytes([]byte("abc")),
		).WithType(tupleType)

		actual, err := abi.Encode(tuple)
		require.NoError(t, err)

		expected := buf(
			uw(0x20),
			uw(1), uw(0x40),
			uw(3), padded([]byte("abc")),
		)
		assert.Equal(t, expected, actual)

		decoded, err := abi.Decode(actual, tupleType)
		require.NoError(t, err)
		test_utils.RequireValuesEqual(t, []evmcodec.Value{tuple}, decoded)
	})
}

func TestEncodeArrayOfEmptyTuples(t *testing.T) {

	t.Parallel()

	arrayType := evmcodec.NewVariableSizedArrayType(evmcodec.NewTupleType())
	array := evmcodec.NewArray([]evmcodec.Value{
		evmcodec.NewTuple(),
		evmcodec.NewTuple(),
	}).WithType(arrayType)

	// Zero-size elements contribute nothing beyond the count word.
	actual, err := abi.Encode(array)
	require.NoError(t, err)
	assert.Equal(t, buf(uw(0x20), uw(2)), actual)

	decoded, err := abi.Decode(actual, arrayType)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	actualArray, ok := decoded[0].(evmcodec.Array)
	require.True(t, ok)
	require.Len(t, actualArray.Values, 2)
	for _, element := range actualArray.Values {
		tuple, ok := element.(evmcodec.Tuple)
		require.True(t, ok)
		assert.Empty(t, tuple.Fields)
	}
}

func TestStaticSizeDeterminism(t *testing.T) {

	t.Parallel()

	arrayType := evmcodec.NewConstantSizedArrayType(3, evmcodec.NewUIntType(32))

	a := evmcodec.NewArray([]evmcodec.Value{
		newUInt(t, 32, 0),
		newUInt(t, 32, 0),
		newUInt(t, 32, 0),
	}).WithType(arrayType)

	b := evmcodec.NewArray([]evmcodec.Value{
		newUInt(t, 32, 1),
		newUInt(t, 32, 1<<31),
		newUInt(t, 32, 42),
	}).WithType(arrayType)

	encodedA, err := abi.Encode(a)
	require.NoError(t, err)
	encodedB, err := abi.Encode(b)
	require.NoError(t, err)

	assert.Equal(t, len(encodedA), len(encodedB))
}

func TestSelector(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		[evmcodec.SelectorLength]byte{0xa9, 0x05, 0x9c, 0xbb},
		abi.Selector("transfer(address,uint256)"),
	)
}

func TestEncodeErrors(t *testing.T) {

	t.Parallel()

	t.Run("unsigned out of range", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Encode(evmcodec.UInt{Bits: 8, Value: big.NewInt(256)})
		require.Error(t, err)
		assert.IsType(t, evmcodec.ValueOutOfRangeError{}, err)
		assert.True(t, evmcodec.IsUserError(err))
	})

	t.Run("signed out of range", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Encode(evmcodec.Int{Bits: 24, Value: big.NewInt(1 << 23)})
		require.Error(t, err)
		assert.IsType(t, evmcodec.ValueOutOfRangeError{}, err)
	})

	t.Run("untyped array", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Encode(evmcodec.NewArray(nil))
		require.Error(t, err)
		assert.True(t, evmcodec.IsInternalError(err))
	})

	t.Run("untyped tuple", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Encode(evmcodec.NewTuple())
		require.Error(t, err)
		assert.True(t, evmcodec.IsInternalError(err))
	})

	t.Run("element type mismatch", func(t *testing.T) {
		t.Parallel()

		array := evmcodec.NewArray([]evmcodec.Value{
			evmcodec.NewBool(true),
		}).WithType(evmcodec.NewVariableSizedArrayType(evmcodec.NewUIntType(8)))

		_, err := abi.Encode(array)
		require.Error(t, err)
		assert.True(t, evmcodec.IsInternalError(err))
	})
}

func TestDecodeErrors(t *testing.T) {

	t.Parallel()

	t.Run("offset out of bounds", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(uw(0x40), evmcodec.TheBytesType)
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
		assert.True(t, evmcodec.IsUserError(err))
	})

	t.Run("truncated tail", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(
			uw(0x20),
			evmcodec.NewVariableSizedArrayType(evmcodec.NewIntType(16)),
		)
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
	})

	t.Run("truncated head", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(
			uw(1),
			evmcodec.NewUIntType(256),
			evmcodec.NewUIntType(256),
		)
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
	})

	t.Run("inconsistent count", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(
			buf(uw(0x20), uw(10)),
			evmcodec.NewVariableSizedArrayType(evmcodec.NewIntType(16)),
		)
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
	})

	t.Run("byte string truncated", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(
			buf(uw(0x20), uw(33)),
			evmcodec.TheBytesType,
		)
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
	})

	t.Run("value exceeds declared width", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(uw(256), evmcodec.NewUIntType(8))
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
	})

	t.Run("non-canonical sign extension", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(uw(255), evmcodec.NewIntType(8))
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
	})

	t.Run("zero-size element count over maximum", func(t *testing.T) {
		t.Parallel()

		_, err := abi.Decode(
			buf(uw(0x20), uw(1<<21)),
			evmcodec.NewVariableSizedArrayType(evmcodec.NewTupleType()),
		)
		require.Error(t, err)
		assert.IsType(t, evmcodec.MalformedEncodingError{}, err)
	})

	t.Run("length overflow", func(t *testing.T) {
		t.Parallel()

		word := make([]byte, evmcodec.WordSize)
		word[0] = 0x01

		_, err := abi.Decode(word, evmcodec.TheBytesType)
		require.Error(t, err)
		assert.IsType(t, evmcodec.LengthOverflowError{}, err)
		assert.True(t, evmcodec.IsUserError(err))
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("unsigned integers round-trip", prop.ForAll(
		func(width uint8, raw uint64) bool {
			bits := (uint(width)%32 + 1) * 8
			if bits < 64 {
				raw &= 1<<bits - 1
			}

			value, err := evmcodec.NewUInt(bits, new(big.Int).SetUint64(raw))
			if err != nil {
				return false
			}

			encoded, err := abi.Encode(value)
			if err != nil || len(encoded) != evmcodec.WordSize {
				return false
			}

			decoded, err := abi.Decode(encoded, value.Type())
			if err != nil || len(decoded) != 1 {
				return false
			}

			actual, ok := decoded[0].(evmcodec.UInt)
			return ok &&
				actual.Bits == bits &&
				actual.Value.Cmp(value.Value) == 0
		},
		gen.UInt8(),
		gen.UInt64(),
	))

	properties.Property("signed integers round-trip", prop.ForAll(
		func(width uint8, raw int64) bool {
			bits := (uint(width)%32 + 1) * 8
			if bits < 64 {
				raw >>= 64 - bits
			}

			value, err := evmcodec.NewIntFromInt64(bits, raw)
			if err != nil {
				return false
			}

			encoded, err := abi.Encode(value)
			if err != nil || len(encoded) != evmcodec.WordSize {
				return false
			}

			decoded, err := abi.Decode(encoded, value.Type())
			if err != nil || len(decoded) != 1 {
				return false
			}

			actual, ok := decoded[0].(evmcodec.Int)
			return ok &&
				actual.Bits == bits &&
				actual.Value.Cmp(value.Value) == 0
		},
		gen.UInt8(),
		gen.Int64(),
	))

	properties.Property("byte strings round-trip word-aligned", prop.ForAll(
		func(b []byte) bool {
			value := evmcodec.NewBytes(b)

			encoded, err := abi.Encode(value)
			if err != nil || len(encoded)%evmcodec.WordSize != 0 {
				return false
			}

			decoded, err := abi.Decode(encoded, evmcodec.TheBytesType)
			if err != nil || len(decoded) != 1 {
				return false
			}

			actual, ok := decoded[0].(evmcodec.Bytes)
			return ok && bytes.Equal(b, actual)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("int16 arrays round-trip", prop.ForAll(
		func(elements []int16) bool {
			arrayType := evmcodec.NewVariableSizedArrayType(evmcodec.NewIntType(16))

			values := make([]evmcodec.Value, len(elements))
			for i, element := range elements {
				value, err := evmcodec.NewIntFromInt64(16, int64(element))
				if err != nil {
					return false
				}
				values[i] = value
			}
			array := evmcodec.NewArray(values).WithType(arrayType)

			encoded, err := abi.Encode(array)
			if err != nil {
				return false
			}
			if len(encoded) != evmcodec.WordSize*(2+len(elements)) {
				return false
			}

			decoded, err := abi.Decode(encoded, arrayType)
			if err != nil || len(decoded) != 1 {
				return false
			}

			actual, ok := decoded[0].(evmcodec.Array)
			if !ok || len(actual.Values) != len(elements) {
				return false
			}
			for i, element := range elements {
				actualElement, ok := actual.Values[i].(evmcodec.Int)
				if !ok || actualElement.Value.Int64() != int64(element) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int16()),
	))

	properties.Property("nested byte arrays round-trip", prop.ForAll(
		func(elements [][]byte) bool {
			arrayType := evmcodec.NewVariableSizedArrayType(evmcodec.TheBytesType)

			values := make([]evmcodec.Value, len(elements))
			for i, element := range elements {
				values[i] = evmcodec.NewBytes(element)
			}
			array := evmcodec.NewArray(values).WithType(arrayType)

			encoded, err := abi.Encode(array)
			if err != nil || len(encoded)%evmcodec.WordSize != 0 {
				return false
			}

			decoded, err := abi.Decode(encoded, arrayType)
			if err != nil || len(decoded) != 1 {
				return false
			}

			actual, ok := decoded[0].(evmcodec.Array)
			if !ok || len(actual.Values) != len(elements) {
				return false
			}
			for i, element := range elements {
				actualElement, ok := actual.Values[i].(evmcodec.Bytes)
				if !ok || !bytes.Equal(element, actualElement) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.SliceOf(gen.UInt8())),
	))

	properties.TestingRun(t)
}

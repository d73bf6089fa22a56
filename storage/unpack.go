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

package storage

import (
	"math"
	"math/big"

	"github.com/evmcodec/evmcodec"
)

// maxElementCount bounds the element count read from a single array
// slot, so a corrupted count word fails instead of exhausting memory.
const maxElementCount = 1 << 20

// Unpack reads values of the given declared types from the store in
// order, starting at the given cursor, and returns the decoded values
// together with the cursor advanced past them.
//
// Unpack is the exact inverse of Pack: for any values that fit their
// declared types, unpacking the slots written by Pack yields the same
// values.
func Unpack(store Store, cursor Cursor, types ...evmcodec.Type) ([]evmcodec.Value, Cursor, error) {
	values := make([]evmcodec.Value, len(types))

	for i, typ := range types {
		var err error
		values[i], cursor, err = unpackValue(store, cursor, typ)
		if err != nil {
			return nil, cursor, err
		}
	}

	return values, cursor, nil
}

func unpackValue(
	store Store,
	cursor Cursor,
	typ evmcodec.Type,
) (evmcodec.Value, Cursor, error) {
	switch typ := typ.(type) {
	case evmcodec.BytesType:
		b, cursor, err := unpackByteString(store, cursor)
		if err != nil {
			return nil, cursor, err
		}
		return evmcodec.NewBytes(b), cursor, nil

	case evmcodec.StringType:
		b, cursor, err := unpackByteString(store, cursor)
		if err != nil {
			return nil, cursor, err
		}
		return evmcodec.NewString(string(b)), cursor, nil

	case *evmcodec.VariableSizedArrayType:
		return unpackDynamicArray(store, cursor, typ)

	case *evmcodec.ConstantSizedArrayType:
		cursor = cursor.alignSlot()

		values := make([]evmcodec.Value, typ.Size)
		for i := range values {
			var err error
			values[i], cursor, err = unpackValue(store, cursor, typ.ElementType)
			if err != nil {
				return nil, cursor, err
			}
		}
		return evmcodec.NewArray(values).WithType(typ), cursor.alignSlot(), nil

	case *evmcodec.TupleType:
		cursor = cursor.alignSlot()

		fields := make([]evmcodec.Value, len(typ.ElementTypes))
		for i, elementType := range typ.ElementTypes {
			var err error
			fields[i], cursor, err = unpackValue(store, cursor, elementType)
			if err != nil {
				return nil, cursor, err
			}
		}
		return evmcodec.NewTuple(fields...).WithType(typ), cursor.alignSlot(), nil

	default:
		return unpackScalar(store, cursor, typ)
	}
}

func unpackScalar(
	store Store,
	cursor Cursor,
	typ evmcodec.Type,
) (evmcodec.Value, Cursor, error) {
	size, ok := evmcodec.ByteSize(typ)
	if !ok {
		return nil, cursor, evmcodec.NewUnexpectedError(
			"unsupported type for slot unpacking: %s",
			typ.ID(),
		)
	}
	if size > evmcodec.WordSize {
		return nil, cursor, evmcodec.NewInvalidSlotPackingError(typ, size)
	}

	if cursor.Offset+size > evmcodec.WordSize {
		cursor = cursor.alignSlot()
	}

	word := store.Word(cursor.Slot)
	b := word[evmcodec.WordSize-cursor.Offset-size : evmcodec.WordSize-cursor.Offset]

	value, err := scalarFromBytes(typ, b)
	if err != nil {
		return nil, cursor, err
	}

	cursor.Offset += size
	if cursor.Offset == evmcodec.WordSize {
		cursor = Cursor{Slot: cursor.Slot.Next()}
	}
	return value, cursor, nil
}

// unpackByteString reads a dynamic byte string from its designated slot,
// distinguishing the short and long forms by the low bit of the length
// byte.
func unpackByteString(store Store, cursor Cursor) ([]byte, Cursor, error) {
	cursor = cursor.alignSlot()
	slot := cursor.Slot
	next := Cursor{Slot: slot.Next()}

	word := store.Word(slot)

	if word[evmcodec.WordSize-1]&1 == 0 {
		// Short form: raw bytes inline, length*2 in the low-order byte.
		length := uint(word[evmcodec.WordSize-1] / 2)
		if length > ShortStringMaxLength {
			return nil, cursor, evmcodec.NewMalformedEncodingError(
				"short-form byte string length %d exceeds %d",
				length,
				ShortStringMaxLength,
			)
		}

		b := make([]byte, length)
		copy(b, word[:length])
		return b, next, nil
	}

	// Long form: length*2+1 in the designated slot, payload at the
	// hashed data location.
	length, err := wordToLength(word)
	if err != nil {
		return nil, cursor, err
	}
	length = (length - 1) / 2

	if length <= ShortStringMaxLength {
		return nil, cursor, evmcodec.NewMalformedEncodingError(
			"long-form byte string length %d below threshold %d",
			length,
			ShortStringMaxLength+1,
		)
	}

	b := make([]byte, length)
	data := DataLocation(slot)
	for pos := 0; pos < length; pos += evmcodec.WordSize {
		word := store.Word(data)
		copy(b[pos:], word[:])
		data = data.Next()
	}
	return b, next, nil
}

// unpackDynamicArray reads the element count from the designated slot
// and the densely packed elements from the hashed data location.
func unpackDynamicArray(
	store Store,
	cursor Cursor,
	typ *evmcodec.VariableSizedArrayType,
) (evmcodec.Value, Cursor, error) {
	cursor = cursor.alignSlot()
	slot := cursor.Slot

	count, err := wordToLength(store.Word(slot))
	if err != nil {
		return nil, cursor, err
	}
	if count > maxElementCount {
		return nil, cursor, evmcodec.NewMalformedEncodingError(
			"array count %d exceeds maximum %d",
			count,
			maxElementCount,
		)
	}

	values := make([]evmcodec.Value, count)
	inner := NewCursor(DataLocation(slot))
	for i := range values {
		values[i], inner, err = unpackValue(store, inner, typ.ElementType)
		if err != nil {
			return nil, cursor, err
		}
	}

	return evmcodec.NewArray(values).WithType(typ),
		Cursor{Slot: slot.Next()},
		nil
}

// scalarFromBytes decodes a scalar value from its compact big-endian
// representation.
func scalarFromBytes(typ evmcodec.Type, b []byte) (evmcodec.Value, error) {
	switch typ := typ.(type) {
	case evmcodec.UIntType:
		return evmcodec.UInt{
			Bits:  typ.Bits,
			Value: new(big.Int).SetBytes(b),
		}, nil

	case evmcodec.IntType:
		value := new(big.Int).SetBytes(b)
		if b[0]&0x80 != 0 {
			value.Sub(value, new(big.Int).Lsh(big.NewInt(1), uint(len(b))*8))
		}
		return evmcodec.Int{Bits: typ.Bits, Value: value}, nil

	case evmcodec.AddressType:
		var a [evmcodec.AddressLength]byte
		copy(a[:], b)
		return evmcodec.NewAddress(a), nil

	case evmcodec.BoolType:
		return evmcodec.NewBool(b[0] != 0), nil

	case evmcodec.FixedBytesType:
		out := make([]byte, typ.Size)
		copy(out, b)
		return evmcodec.FixedBytes(out), nil

	case evmcodec.FunctionType:
		var f [evmcodec.FunctionLength]byte
		copy(f[:], b)
		return evmcodec.Function(f), nil

	default:
		return nil, evmcodec.NewUnexpectedError(
			"unsupported scalar type: %s",
			typ.ID(),
		)
	}
}

// wordToLength reads a count or length word. Values that do not fit the
// host int indicate a corrupted slot.
func wordToLength(word Word) (int, error) {
	value := new(big.Int).SetBytes(word[:])
	if value.BitLen() > 62 {
		length := uint64(math.MaxUint64)
		if value.IsUint64() {
			length = value.Uint64()
		}
		return 0, evmcodec.NewLengthOverflowError(length)
	}
	return int(value.Int64()), nil
}

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
	"math/big"

	"github.com/evmcodec/evmcodec"
)

// ShortStringMaxLength is the largest byte string stored inline in its
// designated slot. Longer strings store their payload at the hashed
// data location instead.
const ShortStringMaxLength = evmcodec.WordSize - 1

// Pack packs the given values into the store in order, starting at the
// given cursor, and returns the cursor advanced past the packed values.
//
// The cursor is owned exclusively by this call: concurrent Pack calls
// must use separate stores or disjoint regions.
func Pack(store Store, cursor Cursor, values ...evmcodec.Value) (Cursor, error) {
	for i, value := range values {
		typ := value.Type()
		if typ == nil {
			return cursor, evmcodec.NewUnexpectedError(
				"cannot pack untyped value at index %d: %s",
				i,
				value,
			)
		}

		var err error
		cursor, err = packValue(store, cursor, typ, value)
		if err != nil {
			return cursor, err
		}
	}
	return cursor, nil
}

func packValue(
	store Store,
	cursor Cursor,
	typ evmcodec.Type,
	value evmcodec.Value,
) (Cursor, error) {
	switch typ := typ.(type) {
	case evmcodec.BytesType:
		v, ok := value.(evmcodec.Bytes)
		if !ok {
			return cursor, typeMismatchError(typ, value)
		}
		return packByteString(store, cursor, v)

	case evmcodec.StringType:
		v, ok := value.(evmcodec.String)
		if !ok {
			return cursor, typeMismatchError(typ, value)
		}
		return packByteString(store, cursor, []byte(v))

	case *evmcodec.VariableSizedArrayType:
		v, ok := value.(evmcodec.Array)
		if !ok {
			return cursor, typeMismatchError(typ, value)
		}
		return packDynamicArray(store, cursor, typ, v)

	case *evmcodec.ConstantSizedArrayType:
		v, ok := value.(evmcodec.Array)
		if !ok {
			return cursor, typeMismatchError(typ, value)
		}
		if uint(len(v.Values)) != typ.Size {
			return cursor, evmcodec.NewUnexpectedError(
				"cannot pack %s: array has %d elements",
				typ.ID(),
				len(v.Values),
			)
		}
		return packRun(store, cursor, typ.ElementType, v.Values)

	case *evmcodec.TupleType:
		v, ok := value.(evmcodec.Tuple)
		if !ok || len(v.Fields) != len(typ.ElementTypes) {
			return cursor, typeMismatchError(typ, value)
		}

		cursor = cursor.alignSlot()
		for i, elementType := range typ.ElementTypes {
			var err error
			cursor, err = packValue(store, cursor, elementType, v.Fields[i])
			if err != nil {
				return cursor, err
			}
		}
		return cursor.alignSlot(), nil

	default:
		return packScalar(store, cursor, typ, value)
	}
}

// packRun packs a statically-sized run of elements into consecutive
// whole slots starting at a fresh slot boundary. Elements small enough
// to share a slot are packed densely within the run.
func packRun(
	store Store,
	cursor Cursor,
	elementType evmcodec.Type,
	values []evmcodec.Value,
) (Cursor, error) {
	cursor = cursor.alignSlot()
	for _, element := range values {
		var err error
		cursor, err = packValue(store, cursor, elementType, element)
		if err != nil {
			return cursor, err
		}
	}
	return cursor.alignSlot(), nil
}

// packScalar packs a value whose static size is at most one slot.
// If the value does not fit in the remaining bytes of the current slot,
// it starts a new slot instead of splitting across slots.
func packScalar(
	store Store,
	cursor Cursor,
	typ evmcodec.Type,
	value evmcodec.Value,
) (Cursor, error) {
	size, ok := evmcodec.ByteSize(typ)
	if !ok {
		return cursor, evmcodec.NewUnexpectedError(
			"unsupported type for slot packing: %s",
			typ.ID(),
		)
	}
	if size > evmcodec.WordSize {
		return cursor, evmcodec.NewInvalidSlotPackingError(typ, size)
	}

	b, err := scalarBytes(typ, value)
	if err != nil {
		return cursor, err
	}

	if cursor.Offset+size > evmcodec.WordSize {
		cursor = cursor.alignSlot()
	}

	word := store.Word(cursor.Slot)
	copy(word[evmcodec.WordSize-cursor.Offset-size:evmcodec.WordSize-cursor.Offset], b)
	store.SetWord(cursor.Slot, word)

	cursor.Offset += size
	if cursor.Offset == evmcodec.WordSize {
		cursor = Cursor{Slot: cursor.Slot.Next()}
	}
	return cursor, nil
}

// packByteString stores a dynamic byte string at a fresh designated slot:
// short strings inline with length*2 in the low-order byte, long strings
// as length*2+1 with the payload at the hashed data location.
func packByteString(store Store, cursor Cursor, b []byte) (Cursor, error) {
	cursor = cursor.alignSlot()
	slot := cursor.Slot

	length := len(b)
	if length <= ShortStringMaxLength {
		var word Word
		copy(word[:], b)
		word[evmcodec.WordSize-1] = byte(length * 2)
		store.SetWord(slot, word)
	} else {
		store.SetWord(slot, wordOfUint(uint64(length)*2+1))

		data := DataLocation(slot)
		for pos := 0; pos < length; pos += evmcodec.WordSize {
			var word Word
			copy(word[:], b[pos:])
			store.SetWord(data, word)
			data = data.Next()
		}
	}

	return Cursor{Slot: slot.Next()}, nil
}

// packDynamicArray stores the element count at a fresh designated slot
// and packs the elements densely at the hashed data location.
func packDynamicArray(
	store Store,
	cursor Cursor,
	typ *evmcodec.VariableSizedArrayType,
	value evmcodec.Array,
) (Cursor, error) {
	cursor = cursor.alignSlot()
	slot := cursor.Slot

	store.SetWord(slot, wordOfUint(uint64(len(value.Values))))

	inner := NewCursor(DataLocation(slot))
	for _, element := range value.Values {
		var err error
		inner, err = packValue(store, inner, typ.ElementType, element)
		if err != nil {
			return cursor, err
		}
	}

	return Cursor{Slot: slot.Next()}, nil
}

// scalarBytes returns the compact big-endian representation of a scalar
// value: exactly ByteSize(typ) bytes.
func scalarBytes(typ evmcodec.Type, value evmcodec.Value) ([]byte, error) {
	switch typ := typ.(type) {
	case evmcodec.UIntType:
		v, ok := value.(evmcodec.UInt)
		if !ok || v.Bits != typ.Bits {
			return nil, typeMismatchError(typ, value)
		}
		if v.Value.Sign() < 0 || v.Value.BitLen() > int(typ.Bits) {
			return nil, evmcodec.NewValueOutOfRangeError(typ, v.Value.String())
		}
		return v.ToBigEndianBytes(), nil

	case evmcodec.IntType:
		v, ok := value.(evmcodec.Int)
		if !ok || v.Bits != typ.Bits {
			return nil, typeMismatchError(typ, value)
		}

		bound := new(big.Int).Lsh(big.NewInt(1), typ.Bits-1)
		max := new(big.Int).Sub(bound, big.NewInt(1))
		min := new(big.Int).Neg(bound)
		if v.Value.Cmp(min) < 0 || v.Value.Cmp(max) > 0 {
			return nil, evmcodec.NewValueOutOfRangeError(typ, v.Value.String())
		}
		return v.ToBigEndianBytes(), nil

	case evmcodec.AddressType:
		v, ok := value.(evmcodec.Address)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		return v.Bytes(), nil

	case evmcodec.BoolType:
		v, ok := value.(evmcodec.Bool)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		if v {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case evmcodec.FixedBytesType:
		v, ok := value.(evmcodec.FixedBytes)
		if !ok || uint(len(v)) != typ.Size {
			return nil, typeMismatchError(typ, value)
		}
		return v.Bytes(), nil

	case evmcodec.FunctionType:
		v, ok := value.(evmcodec.Function)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		return v.Bytes(), nil

	default:
		return nil, evmcodec.NewUnexpectedError(
			"unsupported scalar type: %s",
			typ.ID(),
		)
	}
}

func typeMismatchError(typ evmcodec.Type, value evmcodec.Value) error {
	return evmcodec.NewUnexpectedError(
		"cannot pack value %s as %s",
		value,
		typ.ID(),
	)
}

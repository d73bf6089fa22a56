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

// Package abi implements the canonical head/tail encoding of argument
// sequences used for event data payloads and function calls.
package abi

import (
	"bytes"
	"io"
	"math/big"

	"github.com/evmcodec/evmcodec"
)

// Encode returns the canonical head/tail encoding of the given
// argument sequence.
//
// This function returns an error if a value does not fit its declared
// type, or if a value's type is not supported by the encoder.
func Encode(values ...evmcodec.Value) ([]byte, error) {
	var w bytes.Buffer

	enc := NewEncoder(&w)

	err := enc.Encode(values...)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// MustEncode returns the canonical encoding of the given argument
// sequence, or panics if a value cannot be encoded.
func MustEncode(values ...evmcodec.Value) []byte {
	b, err := Encode(values...)
	if err != nil {
		panic(err)
	}
	return b
}

// An Encoder writes head/tail-encoded argument sequences to an io.Writer.
type Encoder struct {
	w io.Writer
}

// NewEncoder initializes an Encoder that will write encoded bytes to the
// given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the canonical encoding of the given argument sequence to
// this encoder's io.Writer.
func (e *Encoder) Encode(values ...evmcodec.Value) error {
	types := make([]evmcodec.Type, len(values))
	for i, value := range values {
		typ := value.Type()
		if typ == nil {
			return evmcodec.NewUnexpectedError(
				"cannot encode untyped value at index %d: %s",
				i,
				value,
			)
		}
		types[i] = typ
	}

	b, err := encodeSequence(types, values)
	if err != nil {
		return err
	}

	_, err = e.w.Write(b)
	return err
}

// encodeSequence encodes an argument sequence as a head region followed
// by a tail region. Offsets in head words are relative to the start of
// the sequence's own encoding.
func encodeSequence(types []evmcodec.Type, values []evmcodec.Value) ([]byte, error) {
	if len(types) != len(values) {
		return nil, evmcodec.NewUnexpectedError(
			"type/value count mismatch: %d types, %d values",
			len(types),
			len(values),
		)
	}

	headLen := 0
	for _, typ := range types {
		size, err := headSize(typ)
		if err != nil {
			return nil, err
		}
		headLen += size
	}

	var head, tail []byte

	for i, typ := range types {
		value := values[i]

		if evmcodec.IsDynamic(typ) {
			offset := headLen + len(tail)
			head = append(head, uintWord(uint64(offset))...)

			enc, err := encodeDynamic(typ, value)
			if err != nil {
				return nil, err
			}
			tail = append(tail, enc...)
		} else {
			enc, err := encodeStatic(typ, value)
			if err != nil {
				return nil, err
			}
			head = append(head, enc...)
		}
	}

	return append(head, tail...), nil
}

// headSize returns the number of bytes the given type occupies in the
// head region: one word for scalars and dynamic values, the full static
// size for static aggregates.
func headSize(typ evmcodec.Type) (int, error) {
	if evmcodec.IsDynamic(typ) {
		return evmcodec.WordSize, nil
	}

	switch typ := typ.(type) {
	case *evmcodec.ConstantSizedArrayType:
		elementSize, err := headSize(typ.ElementType)
		if err != nil {
			return 0, err
		}
		return int(typ.Size) * elementSize, nil

	case *evmcodec.TupleType:
		size := 0
		for _, elementType := range typ.ElementTypes {
			elementSize, err := headSize(elementType)
			if err != nil {
				return 0, err
			}
			size += elementSize
		}
		return size, nil

	default:
		return evmcodec.WordSize, nil
	}
}

// encodeStatic encodes a value of a static type. Scalars occupy exactly
// one word, static aggregates the concatenation of their elements.
func encodeStatic(typ evmcodec.Type, value evmcodec.Value) ([]byte, error) {
	switch typ := typ.(type) {
	case evmcodec.UIntType:
		v, ok := value.(evmcodec.UInt)
		if !ok || v.Bits != typ.Bits {
			return nil, typeMismatchError(typ, value)
		}
		if v.Value.Sign() < 0 || v.Value.BitLen() > int(typ.Bits) {
			return nil, evmcodec.NewValueOutOfRangeError(typ, v.Value.String())
		}
		return v.Value.FillBytes(make([]byte, evmcodec.WordSize)), nil

	case evmcodec.IntType:
		v, ok := value.(evmcodec.Int)
		if !ok || v.Bits != typ.Bits {
			return nil, typeMismatchError(typ, value)
		}
		return signedWord(typ, v.Value)

	case evmcodec.AddressType:
		v, ok := value.(evmcodec.Address)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		word := make([]byte, evmcodec.WordSize)
		copy(word[evmcodec.WordSize-evmcodec.AddressLength:], v.Bytes())
		return word, nil

	case evmcodec.BoolType:
		v, ok := value.(evmcodec.Bool)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		word := make([]byte, evmcodec.WordSize)
		if v {
			word[evmcodec.WordSize-1] = 1
		}
		return word, nil

	case evmcodec.FixedBytesType:
		v, ok := value.(evmcodec.FixedBytes)
		if !ok || uint(len(v)) != typ.Size {
			return nil, typeMismatchError(typ, value)
		}
		word := make([]byte, evmcodec.WordSize)
		copy(word, v)
		return word, nil

	case evmcodec.FunctionType:
		v, ok := value.(evmcodec.Function)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		word := make([]byte, evmcodec.WordSize)
		copy(word, v.Bytes())
		return word, nil

	case *evmcodec.ConstantSizedArrayType:
		v, ok := value.(evmcodec.Array)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		if uint(len(v.Values)) != typ.Size {
			return nil, evmcodec.NewUnexpectedError(
				"cannot encode %s: array has %d elements",
				typ.ID(),
				len(v.Values),
			)
		}

		var b []byte
		for _, element := range v.Values {
			enc, err := encodeStatic(typ.ElementType, element)
			if err != nil {
				return nil, err
			}
			b = append(b, enc...)
		}
		return b, nil

	case *evmcodec.TupleType:
		v, ok := value.(evmcodec.Tuple)
		if !ok || len(v.Fields) != len(typ.ElementTypes) {
			return nil, typeMismatchError(typ, value)
		}

		var b []byte
		for i, elementType := range typ.ElementTypes {
			enc, err := encodeStatic(elementType, v.Fields[i])
			if err != nil {
				return nil, err
			}
			b = append(b, enc...)
		}
		return b, nil

	default:
		return nil, evmcodec.NewUnexpectedError(
			"unsupported static type: %s",
			typ.ID(),
		)
	}
}

// encodeDynamic encodes the tail-region contents of a dynamic value.
// Offsets inside the returned encoding are relative to its start.
func encodeDynamic(typ evmcodec.Type, value evmcodec.Value) ([]byte, error) {
	switch typ := typ.(type) {
	case evmcodec.BytesType:
		v, ok := value.(evmcodec.Bytes)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		return encodeByteString(v), nil

	case evmcodec.StringType:
		v, ok := value.(evmcodec.String)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		return encodeByteString([]byte(v)), nil

	case *evmcodec.VariableSizedArrayType:
		v, ok := value.(evmcodec.Array)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}

		elements, err := encodeElementSequence(typ.ElementType, v.Values)
		if err != nil {
			return nil, err
		}

		return append(uintWord(uint64(len(v.Values))), elements...), nil

	case *evmcodec.ConstantSizedArrayType:
		v, ok := value.(evmcodec.Array)
		if !ok {
			return nil, typeMismatchError(typ, value)
		}
		if uint(len(v.Values)) != typ.Size {
			return nil, evmcodec.NewUnexpectedError(
				"cannot encode %s: array has %d elements",
				typ.ID(),
				len(v.Values),
			)
		}

		// No count word: the length is static.
		return encodeElementSequence(typ.ElementType, v.Values)

	case *evmcodec.TupleType:
		v, ok := value.(evmcodec.Tuple)
		if !ok || len(v.Fields) != len(typ.ElementTypes) {
			return nil, typeMismatchError(typ, value)
		}
		return encodeSequence(typ.ElementTypes, v.Fields)

	default:
		return nil, evmcodec.NewUnexpectedError(
			"unsupported dynamic type: %s",
			typ.ID(),
		)
	}
}

// encodeElementSequence encodes array elements as a head/tail sequence
// with the offset base reset to the start of the element region.
func encodeElementSequence(elementType evmcodec.Type, values []evmcodec.Value) ([]byte, error) {
	types := make([]evmcodec.Type, len(values))
	for i := range values {
		types[i] = elementType
	}
	return encodeSequence(types, values)
}

// encodeByteString encodes a dynamic byte string as a length word
// followed by the raw bytes, zero-padded up to the next word boundary.
func encodeByteString(b []byte) []byte {
	length := len(b)
	enc := append(uintWord(uint64(length)), b...)
	if padding := paddedLength(length) - length; padding > 0 {
		enc = append(enc, make([]byte, padding)...)
	}
	return enc
}

// signedWord encodes a signed integer as a full-word two's complement,
// sign-extended over the whole word regardless of the declared bit width.
func signedWord(typ evmcodec.IntType, value *big.Int) ([]byte, error) {
	bound := new(big.Int).Lsh(big.NewInt(1), typ.Bits-1)
	max := new(big.Int).Sub(bound, big.NewInt(1))
	min := new(big.Int).Neg(bound)

	if value.Cmp(min) < 0 || value.Cmp(max) > 0 {
		return nil, evmcodec.NewValueOutOfRangeError(typ, value.String())
	}

	if value.Sign() >= 0 {
		return value.FillBytes(make([]byte, evmcodec.WordSize)), nil
	}

	complement := new(big.Int).Lsh(big.NewInt(1), evmcodec.WordSize*8)
	complement.Add(complement, value)
	return complement.FillBytes(make([]byte, evmcodec.WordSize)), nil
}

func uintWord(v uint64) []byte {
	return new(big.Int).SetUint64(v).FillBytes(make([]byte, evmcodec.WordSize))
}

func paddedLength(length int) int {
	return (length + evmcodec.WordSize - 1) / evmcodec.WordSize * evmcodec.WordSize
}

func typeMismatchError(typ evmcodec.Type, value evmcodec.Value) error {
	return evmcodec.NewUnexpectedError(
		"cannot encode value %s as %s",
		value,
		typ.ID(),
	)
}

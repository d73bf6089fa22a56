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

package evmcodec

import (
	"fmt"
	"math/big"

	"github.com/evmcodec/evmcodec/format"
)

// Value

type Value interface {
	isValue()
	Type() Type
	fmt.Stringer
}

// NumberValue

type NumberValue interface {
	Value
	// ToBigEndianBytes returns the value as a big-endian two's complement
	// byte string of exactly Bits/8 bytes.
	ToBigEndianBytes() []byte
}

// UInt

// UInt is an unsigned integer value of a fixed bit width.
type UInt struct {
	Value *big.Int
	Bits  uint
}

var _ NumberValue = UInt{}

func NewUInt(bits uint, value *big.Int) (UInt, error) {
	if !validBitSize(bits) {
		return UInt{}, NewUnexpectedError("invalid unsigned integer bit width: %d", bits)
	}
	if value.Sign() < 0 || value.BitLen() > int(bits) {
		return UInt{}, NewValueOutOfRangeError(NewUIntType(bits), value.String())
	}
	return UInt{Bits: bits, Value: value}, nil
}

func NewUIntFromUint64(bits uint, value uint64) (UInt, error) {
	return NewUInt(bits, new(big.Int).SetUint64(value))
}

func (UInt) isValue() {}

func (v UInt) Type() Type {
	return NewUIntType(v.Bits)
}

func (v UInt) Big() *big.Int {
	return v.Value
}

func (v UInt) ToBigEndianBytes() []byte {
	return v.Value.FillBytes(make([]byte, v.Bits/8))
}

func (v UInt) String() string {
	return format.BigInt(v.Value)
}

// Int

// Int is a signed integer value of a fixed bit width,
// stored in two's complement when serialized.
type Int struct {
	Value *big.Int
	Bits  uint
}

var _ NumberValue = Int{}

func NewInt(bits uint, value *big.Int) (Int, error) {
	if !validBitSize(bits) {
		return Int{}, NewUnexpectedError("invalid signed integer bit width: %d", bits)
	}

	bound := new(big.Int).Lsh(big.NewInt(1), bits-1)
	max := new(big.Int).Sub(bound, big.NewInt(1))
	min := new(big.Int).Neg(bound)

	if value.Cmp(min) < 0 || value.Cmp(max) > 0 {
		return Int{}, NewValueOutOfRangeError(NewIntType(bits), value.String())
	}
	return Int{Bits: bits, Value: value}, nil
}

func NewIntFromInt64(bits uint, value int64) (Int, error) {
	return NewInt(bits, big.NewInt(value))
}

func (Int) isValue() {}

func (v Int) Type() Type {
	return NewIntType(v.Bits)
}

func (v Int) Big() *big.Int {
	return v.Value
}

func (v Int) ToBigEndianBytes() []byte {
	b := make([]byte, v.Bits/8)
	if v.Value.Sign() >= 0 {
		return v.Value.FillBytes(b)
	}

	// Two's complement: 2^bits + value
	complement := new(big.Int).Lsh(big.NewInt(1), v.Bits)
	complement.Add(complement, v.Value)
	return complement.FillBytes(b)
}

func (v Int) String() string {
	return format.BigInt(v.Value)
}

// FixedBytes

// FixedBytes is a byte string of a fixed length in [1, 32].
type FixedBytes []byte

var _ Value = FixedBytes{}

func NewFixedBytes(b []byte) (FixedBytes, error) {
	if len(b) < 1 || len(b) > WordSize {
		return nil, NewValueOutOfRangeError(
			NewFixedBytesType(uint(len(b))),
			format.Bytes(b),
		)
	}
	return FixedBytes(b), nil
}

func (FixedBytes) isValue() {}

func (v FixedBytes) Type() Type {
	return NewFixedBytesType(uint(len(v)))
}

func (v FixedBytes) Bytes() []byte {
	return v
}

func (v FixedBytes) String() string {
	return format.Bytes(v)
}

// Address

const AddressLength = 20

type Address [AddressLength]byte

var _ Value = Address{}

func NewAddress(b [AddressLength]byte) Address {
	return Address(b)
}

// BytesToAddress returns the address of the given big-endian bytes,
// left-padded with zeros to the address length.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) > AddressLength {
		return a, NewValueOutOfRangeError(TheAddressType, format.Bytes(b))
	}
	copy(a[AddressLength-len(b):], b)
	return a, nil
}

func (Address) isValue() {}

func (Address) Type() Type {
	return TheAddressType
}

func (v Address) Bytes() []byte {
	return v[:]
}

func (v Address) String() string {
	return format.Bytes(v[:])
}

// Bool

type Bool bool

var _ Value = Bool(false)

func NewBool(b bool) Bool {
	return Bool(b)
}

func (Bool) isValue() {}

func (Bool) Type() Type {
	return TheBoolType
}

func (v Bool) String() string {
	return format.Bool(bool(v))
}

// Function

const SelectorLength = 4

// FunctionLength is the number of meaningful bytes of an external
// function reference: a 20-byte address and a 4-byte selector.
const FunctionLength = AddressLength + SelectorLength

// Function is an opaque external function reference.
type Function [FunctionLength]byte

var _ Value = Function{}

func NewFunction(address Address, selector [SelectorLength]byte) Function {
	var f Function
	copy(f[:AddressLength], address[:])
	copy(f[AddressLength:], selector[:])
	return f
}

func (Function) isValue() {}

func (Function) Type() Type {
	return TheFunctionType
}

func (v Function) Address() Address {
	var a Address
	copy(a[:], v[:AddressLength])
	return a
}

func (v Function) Selector() [SelectorLength]byte {
	var s [SelectorLength]byte
	copy(s[:], v[AddressLength:])
	return s
}

func (v Function) Bytes() []byte {
	return v[:]
}

func (v Function) String() string {
	return format.Bytes(v[:])
}

// Bytes

// Bytes is a dynamically-sized byte string.
type Bytes []byte

var _ Value = Bytes{}

func NewBytes(b []byte) Bytes {
	return Bytes(b)
}

func (Bytes) isValue() {}

func (Bytes) Type() Type {
	return TheBytesType
}

func (v Bytes) String() string {
	return format.Bytes(v)
}

// String

type String string

var _ Value = String("")

func NewString(s string) String {
	return String(s)
}

func (String) isValue() {}

func (String) Type() Type {
	return TheStringType
}

func (v String) String() string {
	return format.String(string(v))
}

// Array

type Array struct {
	ArrayType ArrayType
	Values    []Value
}

var _ Value = Array{}

func NewArray(values []Value) Array {
	return Array{Values: values}
}

func (v Array) WithType(arrayType ArrayType) Array {
	v.ArrayType = arrayType
	return v
}

func (Array) isValue() {}

func (v Array) Type() Type {
	return v.ArrayType
}

func (v Array) String() string {
	elements := make([]string, len(v.Values))
	for i, value := range v.Values {
		elements[i] = value.String()
	}
	return format.Array(elements)
}

// Tuple

// Tuple is an ordered heterogeneous sequence of values,
// e.g. an event's argument list.
type Tuple struct {
	TupleType *TupleType
	Fields    []Value
}

var _ Value = Tuple{}

func NewTuple(fields ...Value) Tuple {
	return Tuple{Fields: fields}
}

func (v Tuple) WithType(typ *TupleType) Tuple {
	v.TupleType = typ
	return v
}

func (Tuple) isValue() {}

func (v Tuple) Type() Type {
	// An untyped tuple has no type: avoid wrapping a nil pointer in
	// the interface.
	if v.TupleType == nil {
		return nil
	}
	return v.TupleType
}

func (v Tuple) String() string {
	elements := make([]string, len(v.Fields))
	for i, field := range v.Fields {
		elements[i] = field.String()
	}
	return format.Tuple(elements)
}

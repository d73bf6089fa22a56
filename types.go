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
	"strings"
)

// WordSize is the size in bytes of the atomic encoding unit.
const WordSize = 32

// Type

type Type interface {
	isType()
	// ID returns the canonical signature notation for the type,
	// e.g. "uint256", "int16[]", "bytes3", "(uint256,bytes)"
	ID() string
	Equal(other Type) bool
}

// UIntType

// UIntType is an unsigned integer type of a fixed bit width.
// Bits must be a multiple of 8 in [8, 256].
type UIntType struct {
	Bits uint
}

var _ Type = UIntType{}

func NewUIntType(bits uint) UIntType {
	return UIntType{Bits: bits}
}

func (UIntType) isType() {}

func (t UIntType) ID() string {
	return fmt.Sprintf("uint%d", t.Bits)
}

func (t UIntType) Equal(other Type) bool {
	return t == other
}

// IntType

// IntType is a signed (two's complement) integer type of a fixed bit width.
// Bits must be a multiple of 8 in [8, 256].
type IntType struct {
	Bits uint
}

var _ Type = IntType{}

func NewIntType(bits uint) IntType {
	return IntType{Bits: bits}
}

func (IntType) isType() {}

func (t IntType) ID() string {
	return fmt.Sprintf("int%d", t.Bits)
}

func (t IntType) Equal(other Type) bool {
	return t == other
}

// FixedBytesType

// FixedBytesType is a byte string of exactly Size bytes, Size in [1, 32].
type FixedBytesType struct {
	Size uint
}

var _ Type = FixedBytesType{}

func NewFixedBytesType(size uint) FixedBytesType {
	return FixedBytesType{Size: size}
}

func (FixedBytesType) isType() {}

func (t FixedBytesType) ID() string {
	return fmt.Sprintf("bytes%d", t.Size)
}

func (t FixedBytesType) Equal(other Type) bool {
	return t == other
}

// AddressType

type AddressType struct{}

var TheAddressType = AddressType{}

var _ Type = AddressType{}

func NewAddressType() AddressType {
	return TheAddressType
}

func (AddressType) isType() {}

func (AddressType) ID() string {
	return "address"
}

func (t AddressType) Equal(other Type) bool {
	return t == other
}

// BoolType

type BoolType struct{}

var TheBoolType = BoolType{}

var _ Type = BoolType{}

func NewBoolType() BoolType {
	return TheBoolType
}

func (BoolType) isType() {}

func (BoolType) ID() string {
	return "bool"
}

func (t BoolType) Equal(other Type) bool {
	return t == other
}

// FunctionType

// FunctionType is an external function reference:
// a 20-byte address followed by a 4-byte selector.
type FunctionType struct{}

var TheFunctionType = FunctionType{}

var _ Type = FunctionType{}

func NewFunctionType() FunctionType {
	return TheFunctionType
}

func (FunctionType) isType() {}

func (FunctionType) ID() string {
	return "function"
}

func (t FunctionType) Equal(other Type) bool {
	return t == other
}

// BytesType

// BytesType is a dynamically-sized byte string.
type BytesType struct{}

var TheBytesType = BytesType{}

var _ Type = BytesType{}

func NewBytesType() BytesType {
	return TheBytesType
}

func (BytesType) isType() {}

func (BytesType) ID() string {
	return "bytes"
}

func (t BytesType) Equal(other Type) bool {
	return t == other
}

// StringType

type StringType struct{}

var TheStringType = StringType{}

var _ Type = StringType{}

func NewStringType() StringType {
	return TheStringType
}

func (StringType) isType() {}

func (StringType) ID() string {
	return "string"
}

func (t StringType) Equal(other Type) bool {
	return t == other
}

// ArrayType

type ArrayType interface {
	Type
	Element() Type
}

// VariableSizedArrayType

type VariableSizedArrayType struct {
	ElementType Type
}

var _ ArrayType = &VariableSizedArrayType{}

func NewVariableSizedArrayType(
	elementType Type,
) *VariableSizedArrayType {
	return &VariableSizedArrayType{ElementType: elementType}
}

func (*VariableSizedArrayType) isType() {}

func (t *VariableSizedArrayType) ID() string {
	return t.ElementType.ID() + "[]"
}

func (t *VariableSizedArrayType) Element() Type {
	return t.ElementType
}

func (t *VariableSizedArrayType) Equal(other Type) bool {
	otherType, ok := other.(*VariableSizedArrayType)
	if !ok {
		return false
	}

	return t.ElementType.Equal(otherType.ElementType)
}

// ConstantSizedArrayType

type ConstantSizedArrayType struct {
	ElementType Type
	Size        uint
}

var _ ArrayType = &ConstantSizedArrayType{}

func NewConstantSizedArrayType(
	size uint,
	elementType Type,
) *ConstantSizedArrayType {
	return &ConstantSizedArrayType{
		Size:        size,
		ElementType: elementType,
	}
}

func (*ConstantSizedArrayType) isType() {}

func (t *ConstantSizedArrayType) ID() string {
	return fmt.Sprintf("%s[%d]", t.ElementType.ID(), t.Size)
}

func (t *ConstantSizedArrayType) Element() Type {
	return t.ElementType
}

func (t *ConstantSizedArrayType) Equal(other Type) bool {
	otherType, ok := other.(*ConstantSizedArrayType)
	if !ok {
		return false
	}

	return t.Size == otherType.Size &&
		t.ElementType.Equal(otherType.ElementType)
}

// TupleType

// TupleType is an ordered heterogeneous sequence of types,
// e.g. an event's argument list or a struct row.
type TupleType struct {
	ElementTypes []Type
}

var _ Type = &TupleType{}

func NewTupleType(elementTypes ...Type) *TupleType {
	return &TupleType{ElementTypes: elementTypes}
}

func (*TupleType) isType() {}

func (t *TupleType) ID() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, elementType := range t.ElementTypes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(elementType.ID())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (t *TupleType) Equal(other Type) bool {
	otherType, ok := other.(*TupleType)
	if !ok {
		return false
	}

	if len(t.ElementTypes) != len(otherType.ElementTypes) {
		return false
	}

	for i, elementType := range t.ElementTypes {
		if !elementType.Equal(otherType.ElementTypes[i]) {
			return false
		}
	}

	return true
}

// IsDynamic returns true if the encoded size of the given type
// cannot be determined without inspecting a value:
// dynamic arrays and byte strings are always dynamic,
// and a fixed-size aggregate is dynamic if any member is.
func IsDynamic(t Type) bool {
	switch t := t.(type) {
	case BytesType, StringType, *VariableSizedArrayType:
		return true

	case *ConstantSizedArrayType:
		return IsDynamic(t.ElementType)

	case *TupleType:
		for _, elementType := range t.ElementTypes {
			if IsDynamic(elementType) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// ByteSize returns the compact storage footprint in bytes of a scalar
// type. It returns false for aggregate and dynamic types, which occupy
// whole slots, and for integer types with an unsupported bit width.
func ByteSize(t Type) (uint, bool) {
	switch t := t.(type) {
	case UIntType:
		if !validBitSize(t.Bits) {
			return 0, false
		}
		return t.Bits / 8, true

	case IntType:
		if !validBitSize(t.Bits) {
			return 0, false
		}
		return t.Bits / 8, true

	case FixedBytesType:
		if t.Size < 1 || t.Size > WordSize {
			return 0, false
		}
		return t.Size, true

	case AddressType:
		return AddressLength, true

	case BoolType:
		return 1, true

	case FunctionType:
		return FunctionLength, true

	default:
		return 0, false
	}
}

func validBitSize(bits uint) bool {
	return bits >= 8 && bits <= 256 && bits%8 == 0
}

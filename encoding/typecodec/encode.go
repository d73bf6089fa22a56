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

// Package typecodec implements a compact CBOR serialization of type
// descriptors, so that a contract's declared layout can be persisted
// alongside its storage words and event payloads.
package typecodec

import (
	"bytes"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/evmcodec/evmcodec"
)

// CBOR tag numbers for the type variants.
const (
	CBORTagSimpleType uint64 = 160 + iota
	CBORTagUIntType
	CBORTagIntType
	CBORTagFixedBytesType
	CBORTagVarsizedArrayType
	CBORTagConstsizedArrayType
	CBORTagTupleType
)

// Simple type identifiers for types without parameters.
const (
	simpleTypeAddress uint64 = iota
	simpleTypeBool
	simpleTypeFunction
	simpleTypeBytes
	simpleTypeString
)

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// An Encoder converts type descriptors into CBOR-encoded bytes.
type Encoder struct {
	enc *cbor.StreamEncoder
}

// Encode returns the CBOR-encoded representation of the given type.
func Encode(typ evmcodec.Type) ([]byte, error) {
	var w bytes.Buffer

	enc := NewEncoder(&w)

	err := enc.Encode(typ)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// MustEncode returns the CBOR-encoded representation of the given type,
// or panics if the type cannot be represented.
func MustEncode(typ evmcodec.Type) []byte {
	b, err := Encode(typ)
	if err != nil {
		panic(err)
	}
	return b
}

// NewEncoder initializes an Encoder that will write CBOR-encoded bytes
// to the given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		enc: CBOREncMode.NewStreamEncoder(w),
	}
}

// Encode writes the CBOR-encoded representation of the given type to
// this encoder's io.Writer.
func (e *Encoder) Encode(typ evmcodec.Type) error {
	err := e.encodeInlineType(typ)
	if err != nil {
		return err
	}
	return e.enc.Flush()
}

// encodeInlineType encodes a type descriptor as
//
//	simple-type
//	/ uint-type
//	/ int-type
//	/ fixed-bytes-type
//	/ varsized-array-type
//	/ constsized-array-type
//	/ tuple-type
func (e *Encoder) encodeInlineType(typ evmcodec.Type) error {
	switch typ := typ.(type) {
	case evmcodec.AddressType:
		return e.encodeSimpleType(simpleTypeAddress)

	case evmcodec.BoolType:
		return e.encodeSimpleType(simpleTypeBool)

	case evmcodec.FunctionType:
		return e.encodeSimpleType(simpleTypeFunction)

	case evmcodec.BytesType:
		return e.encodeSimpleType(simpleTypeBytes)

	case evmcodec.StringType:
		return e.encodeSimpleType(simpleTypeString)

	case evmcodec.UIntType:
		return e.encodeSizedType(CBORTagUIntType, uint64(typ.Bits))

	case evmcodec.IntType:
		return e.encodeSizedType(CBORTagIntType, uint64(typ.Bits))

	case evmcodec.FixedBytesType:
		return e.encodeSizedType(CBORTagFixedBytesType, uint64(typ.Size))

	case *evmcodec.VariableSizedArrayType:
		return e.encodeVarsizedArrayType(typ)

	case *evmcodec.ConstantSizedArrayType:
		return e.encodeConstsizedArrayType(typ)

	case *evmcodec.TupleType:
		return e.encodeTupleType(typ)

	default:
		return evmcodec.NewUnexpectedError(
			"unsupported type: %s (%T)",
			typ.ID(),
			typ,
		)
	}
}

// encodeRawTag encodes a CBOR tag number. All tag numbers used by this
// codec fit the one-byte tag form.
func (e *Encoder) encodeRawTag(tag uint64) error {
	return e.enc.EncodeRawBytes([]byte{0xd8, byte(tag)})
}

// encodeSimpleType encodes a parameterless type as
//
//	#6.160(simple-type-id)
func (e *Encoder) encodeSimpleType(id uint64) error {
	err := e.encodeRawTag(CBORTagSimpleType)
	if err != nil {
		return err
	}
	return e.enc.EncodeUint64(id)
}

// encodeSizedType encodes an integer or fixed-bytes type as
//
//	#6.tag(bit-or-byte-size)
func (e *Encoder) encodeSizedType(tag uint64, size uint64) error {
	err := e.encodeRawTag(tag)
	if err != nil {
		return err
	}
	return e.enc.EncodeUint64(size)
}

// encodeVarsizedArrayType encodes a dynamic array type as
//
//	#6.164(inline-type)
func (e *Encoder) encodeVarsizedArrayType(typ *evmcodec.VariableSizedArrayType) error {
	err := e.encodeRawTag(CBORTagVarsizedArrayType)
	if err != nil {
		return err
	}
	return e.encodeInlineType(typ.ElementType)
}

// encodeConstsizedArrayType encodes a fixed array type as
//
//	#6.165([size, inline-type])
func (e *Encoder) encodeConstsizedArrayType(typ *evmcodec.ConstantSizedArrayType) error {
	err := e.encodeRawTag(CBORTagConstsizedArrayType)
	if err != nil {
		return err
	}

	err = e.enc.EncodeArrayHead(2)
	if err != nil {
		return err
	}

	err = e.enc.EncodeUint64(uint64(typ.Size))
	if err != nil {
		return err
	}

	return e.encodeInlineType(typ.ElementType)
}

// encodeTupleType encodes a tuple type as
//
//	#6.166([* inline-type])
func (e *Encoder) encodeTupleType(typ *evmcodec.TupleType) error {
	err := e.encodeRawTag(CBORTagTupleType)
	if err != nil {
		return err
	}

	err = e.enc.EncodeArrayHead(uint64(len(typ.ElementTypes)))
	if err != nil {
		return err
	}

	for _, elementType := range typ.ElementTypes {
		err = e.encodeInlineType(elementType)
		if err != nil {
			return err
		}
	}

	return nil
}

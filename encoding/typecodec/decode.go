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

package typecodec

import (
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/evmcodec/evmcodec"
)

// CBORDecMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		MaxArrayElements: math.MaxInt32,
		MaxNestedLevels:  math.MaxInt16,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// A Decoder decodes CBOR-encoded type descriptors.
type Decoder struct {
	dec *cbor.StreamDecoder
}

// Decode returns the type descriptor decoded from the given bytes.
//
// This function returns an error if the bytes are malformed or contain
// trailing data.
func Decode(b []byte) (evmcodec.Type, error) {
	dec := NewDecoder(b)

	typ, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	if dec.dec.NumBytesDecoded() != len(b) {
		return nil, evmcodec.NewMalformedEncodingError(
			"decoded %d bytes, received %d bytes",
			dec.dec.NumBytesDecoded(),
			len(b),
		)
	}

	return typ, nil
}

// MustDecode returns the type descriptor decoded from the given bytes,
// or panics if the bytes cannot be decoded.
func MustDecode(b []byte) evmcodec.Type {
	typ, err := Decode(b)
	if err != nil {
		panic(err)
	}
	return typ
}

// NewDecoder initializes a Decoder that will decode a type descriptor
// from the given bytes.
func NewDecoder(b []byte) *Decoder {
	// NOTE: encoded data is not copied by the decoder.
	return &Decoder{
		dec: CBORDecMode.NewByteStreamDecoder(b),
	}
}

// Decode reads CBOR-encoded bytes and decodes them to a type descriptor.
func (d *Decoder) Decode() (evmcodec.Type, error) {
	return d.decodeInlineType()
}

func (d *Decoder) decodeInlineType() (evmcodec.Type, error) {
	tagNum, err := d.dec.DecodeTagNumber()
	if err != nil {
		return nil, evmcodec.NewMalformedEncodingError("expected type tag: %s", err)
	}

	switch tagNum {
	case CBORTagSimpleType:
		return d.decodeSimpleTypeID()

	case CBORTagUIntType:
		bits, err := d.decodeBitSize()
		if err != nil {
			return nil, err
		}
		return evmcodec.NewUIntType(bits), nil

	case CBORTagIntType:
		bits, err := d.decodeBitSize()
		if err != nil {
			return nil, err
		}
		return evmcodec.NewIntType(bits), nil

	case CBORTagFixedBytesType:
		size, err := d.dec.DecodeUint64()
		if err != nil {
			return nil, evmcodec.NewMalformedEncodingError("expected byte size: %s", err)
		}
		if size < 1 || size > evmcodec.WordSize {
			return nil, evmcodec.NewMalformedEncodingError(
				"invalid fixed bytes size: %d",
				size,
			)
		}
		return evmcodec.NewFixedBytesType(uint(size)), nil

	case CBORTagVarsizedArrayType:
		elementType, err := d.decodeInlineType()
		if err != nil {
			return nil, err
		}
		return evmcodec.NewVariableSizedArrayType(elementType), nil

	case CBORTagConstsizedArrayType:
		return d.decodeConstsizedArrayType()

	case CBORTagTupleType:
		return d.decodeTupleType()

	default:
		return nil, evmcodec.NewMalformedEncodingError(
			"unsupported encoded type with CBOR tag number %d",
			tagNum,
		)
	}
}

func (d *Decoder) decodeSimpleTypeID() (evmcodec.Type, error) {
	simpleTypeID, err := d.dec.DecodeUint64()
	if err != nil {
		return nil, evmcodec.NewMalformedEncodingError("expected simple type id: %s", err)
	}

	switch simpleTypeID {
	case simpleTypeAddress:
		return evmcodec.TheAddressType, nil

	case simpleTypeBool:
		return evmcodec.TheBoolType, nil

	case simpleTypeFunction:
		return evmcodec.TheFunctionType, nil

	case simpleTypeBytes:
		return evmcodec.TheBytesType, nil

	case simpleTypeString:
		return evmcodec.TheStringType, nil

	default:
		return nil, evmcodec.NewMalformedEncodingError(
			"unsupported simple type id %d",
			simpleTypeID,
		)
	}
}

func (d *Decoder) decodeBitSize() (uint, error) {
	bits, err := d.dec.DecodeUint64()
	if err != nil {
		return 0, evmcodec.NewMalformedEncodingError("expected bit width: %s", err)
	}
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return 0, evmcodec.NewMalformedEncodingError("invalid bit width: %d", bits)
	}
	return uint(bits), nil
}

func (d *Decoder) decodeConstsizedArrayType() (evmcodec.Type, error) {
	count, err := d.dec.DecodeArrayHead()
	if err != nil {
		return nil, evmcodec.NewMalformedEncodingError("expected array head: %s", err)
	}
	if count != 2 {
		return nil, evmcodec.NewMalformedEncodingError(
			"expected 2 elements for fixed array type, got %d",
			count,
		)
	}

	size, err := d.dec.DecodeUint64()
	if err != nil {
		return nil, evmcodec.NewMalformedEncodingError("expected array size: %s", err)
	}

	elementType, err := d.decodeInlineType()
	if err != nil {
		return nil, err
	}

	return evmcodec.NewConstantSizedArrayType(uint(size), elementType), nil
}

func (d *Decoder) decodeTupleType() (evmcodec.Type, error) {
	count, err := d.dec.DecodeArrayHead()
	if err != nil {
		return nil, evmcodec.NewMalformedEncodingError("expected array head: %s", err)
	}

	elementTypes := make([]evmcodec.Type, count)
	for i := range elementTypes {
		elementTypes[i], err = d.decodeInlineType()
		if err != nil {
			return nil, err
		}
	}

	return evmcodec.NewTupleType(elementTypes...), nil
}

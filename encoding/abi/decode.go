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

package abi

import (
	"math"
	"math/big"

	"github.com/evmcodec/evmcodec"
)

// maxZeroSizeElementCount bounds the decoded element count of an array
// whose element type has no static size, e.g. an empty tuple.
const maxZeroSizeElementCount = 1 << 20

// Decode returns the argument sequence encoded in the given buffer,
// decoded according to the given declared types.
//
// This function returns an error if the buffer is not a structurally
// valid encoding of the declared types. Decoding does not attempt
// partial recovery.
func Decode(data []byte, types ...evmcodec.Type) ([]evmcodec.Value, error) {
	dec := NewDecoder(data)
	return dec.Decode(types...)
}

// MustDecode returns the argument sequence encoded in the given buffer,
// or panics if the buffer cannot be decoded.
func MustDecode(data []byte, types ...evmcodec.Type) []evmcodec.Value {
	values, err := Decode(data, types...)
	if err != nil {
		panic(err)
	}
	return values
}

// A Decoder decodes head/tail-encoded argument sequences from a byte buffer.
type Decoder struct {
	data []byte
}

// NewDecoder initializes a Decoder that will decode values from the
// given buffer.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Decode reads the argument sequence described by the given declared types.
func (d *Decoder) Decode(types ...evmcodec.Type) ([]evmcodec.Value, error) {
	return decodeSequence(d.data, types)
}

// decodeSequence decodes an argument sequence from a region whose start
// is the offset base for all dynamic members of the sequence.
func decodeSequence(data []byte, types []evmcodec.Type) ([]evmcodec.Value, error) {
	values := make([]evmcodec.Value, len(types))

	pos := 0
	for i, typ := range types {
		size, err := headSize(typ)
		if err != nil {
			return nil, err
		}

		if pos+size > len(data) {
			return nil, evmcodec.NewMalformedEncodingError(
				"truncated head: %s at byte %d, buffer has %d bytes",
				typ.ID(),
				pos,
				len(data),
			)
		}

		if evmcodec.IsDynamic(typ) {
			offset, err := wordToInt(data[pos : pos+evmcodec.WordSize])
			if err != nil {
				return nil, err
			}
			if offset > len(data) {
				return nil, evmcodec.NewMalformedEncodingError(
					"offset %d points outside buffer of %d bytes",
					offset,
					len(data),
				)
			}

			values[i], err = decodeDynamic(typ, data[offset:])
			if err != nil {
				return nil, err
			}
		} else {
			values[i], err = decodeStatic(typ, data[pos:pos+size])
			if err != nil {
				return nil, err
			}
		}

		pos += size
	}

	return values, nil
}

// decodeStatic decodes a value of a static type from its exact head-region
// bytes.
func decodeStatic(typ evmcodec.Type, data []byte) (evmcodec.Value, error) {
	switch typ := typ.(type) {
	case evmcodec.UIntType:
		value := new(big.Int).SetBytes(data)
		if value.BitLen() > int(typ.Bits) {
			return nil, evmcodec.NewMalformedEncodingError(
				"value exceeds declared width of %s: %s",
				typ.ID(),
				value,
			)
		}
		return evmcodec.UInt{Bits: typ.Bits, Value: value}, nil

	case evmcodec.IntType:
		value := twosComplement(data)

		bound := new(big.Int).Lsh(big.NewInt(1), typ.Bits-1)
		max := new(big.Int).Sub(bound, big.NewInt(1))
		min := new(big.Int).Neg(bound)

		if value.Cmp(min) < 0 || value.Cmp(max) > 0 {
			return nil, evmcodec.NewMalformedEncodingError(
				"value exceeds declared width of %s: %s",
				typ.ID(),
				value,
			)
		}
		return evmcodec.Int{Bits: typ.Bits, Value: value}, nil

	case evmcodec.AddressType:
		var a [evmcodec.AddressLength]byte
		copy(a[:], data[evmcodec.WordSize-evmcodec.AddressLength:])
		return evmcodec.NewAddress(a), nil

	case evmcodec.BoolType:
		word := new(big.Int).SetBytes(data)
		return evmcodec.NewBool(word.Sign() != 0), nil

	case evmcodec.FixedBytesType:
		b := make([]byte, typ.Size)
		copy(b, data[:typ.Size])
		return evmcodec.FixedBytes(b), nil

	case evmcodec.FunctionType:
		var f [evmcodec.FunctionLength]byte
		copy(f[:], data[:evmcodec.FunctionLength])
		return evmcodec.Function(f), nil

	case *evmcodec.ConstantSizedArrayType:
		elementSize, err := headSize(typ.ElementType)
		if err != nil {
			return nil, err
		}

		values := make([]evmcodec.Value, typ.Size)
		for i := range values {
			values[i], err = decodeStatic(
				typ.ElementType,
				data[i*elementSize:(i+1)*elementSize],
			)
			if err != nil {
				return nil, err
			}
		}
		return evmcodec.NewArray(values).WithType(typ), nil

	case *evmcodec.TupleType:
		fields := make([]evmcodec.Value, len(typ.ElementTypes))

		pos := 0
		for i, elementType := range typ.ElementTypes {
			elementSize, err := headSize(elementType)
			if err != nil {
				return nil, err
			}

			fields[i], err = decodeStatic(elementType, data[pos:pos+elementSize])
			if err != nil {
				return nil, err
			}
			pos += elementSize
		}
		return evmcodec.NewTuple(fields...).WithType(typ), nil

	default:
		return nil, evmcodec.NewUnexpectedError(
			"unsupported static type: %s",
			typ.ID(),
		)
	}
}

// decodeDynamic decodes a dynamic value from its tail region. The region
// starts at the value's own encoding and extends to the end of the
// enclosing buffer.
func decodeDynamic(typ evmcodec.Type, region []byte) (evmcodec.Value, error) {
	switch typ := typ.(type) {
	case evmcodec.BytesType:
		b, err := decodeByteString(region)
		if err != nil {
			return nil, err
		}
		return evmcodec.NewBytes(b), nil

	case evmcodec.StringType:
		b, err := decodeByteString(region)
		if err != nil {
			return nil, err
		}
		return evmcodec.NewString(string(b)), nil

	case *evmcodec.VariableSizedArrayType:
		if len(region) < evmcodec.WordSize {
			return nil, evmcodec.NewMalformedEncodingError(
				"truncated array count: %d bytes",
				len(region),
			)
		}

		count, err := wordToInt(region[:evmcodec.WordSize])
		if err != nil {
			return nil, err
		}

		elementSize, err := headSize(typ.ElementType)
		if err != nil {
			return nil, err
		}

		elementRegion := region[evmcodec.WordSize:]
		if elementSize > 0 {
			if count > len(elementRegion)/elementSize {
				return nil, evmcodec.NewMalformedEncodingError(
					"array count %d inconsistent with %d remaining bytes",
					count,
					len(elementRegion),
				)
			}
		} else if count > maxZeroSizeElementCount {
			// Zero-size elements carry no payload that could bound
			// the count against the buffer.
			return nil, evmcodec.NewMalformedEncodingError(
				"array count %d of zero-size elements exceeds maximum %d",
				count,
				maxZeroSizeElementCount,
			)
		}

		values, err := decodeElementSequence(typ.ElementType, count, elementRegion)
		if err != nil {
			return nil, err
		}
		return evmcodec.NewArray(values).WithType(typ), nil

	case *evmcodec.ConstantSizedArrayType:
		// No count word: the length is static.
		values, err := decodeElementSequence(typ.ElementType, int(typ.Size), region)
		if err != nil {
			return nil, err
		}
		return evmcodec.NewArray(values).WithType(typ), nil

	case *evmcodec.TupleType:
		fields, err := decodeSequence(region, typ.ElementTypes)
		if err != nil {
			return nil, err
		}
		return evmcodec.NewTuple(fields...).WithType(typ), nil

	default:
		return nil, evmcodec.NewUnexpectedError(
			"unsupported dynamic type: %s",
			typ.ID(),
		)
	}
}

func decodeElementSequence(
	elementType evmcodec.Type,
	count int,
	region []byte,
) ([]evmcodec.Value, error) {
	types := make([]evmcodec.Type, count)
	for i := range types {
		types[i] = elementType
	}
	return decodeSequence(region, types)
}

// decodeByteString decodes a length word followed by the raw bytes.
func decodeByteString(region []byte) ([]byte, error) {
	if len(region) < evmcodec.WordSize {
		return nil, evmcodec.NewMalformedEncodingError(
			"truncated byte string length: %d bytes",
			len(region),
		)
	}

	length, err := wordToInt(region[:evmcodec.WordSize])
	if err != nil {
		return nil, err
	}

	if evmcodec.WordSize+length > len(region) {
		return nil, evmcodec.NewMalformedEncodingError(
			"byte string length %d inconsistent with %d remaining bytes",
			length,
			len(region)-evmcodec.WordSize,
		)
	}

	b := make([]byte, length)
	copy(b, region[evmcodec.WordSize:evmcodec.WordSize+length])
	return b, nil
}

// wordToInt reads an offset, length, or count word. Values that do not
// fit the host int are never valid in a decodable buffer.
func wordToInt(word []byte) (int, error) {
	value := new(big.Int).SetBytes(word)
	if value.BitLen() > 62 {
		length := uint64(math.MaxUint64)
		if value.IsUint64() {
			length = value.Uint64()
		}
		return 0, evmcodec.NewLengthOverflowError(length)
	}
	return int(value.Int64()), nil
}

// twosComplement interprets a full word as a 256-bit two's complement
// signed integer.
func twosComplement(word []byte) *big.Int {
	value := new(big.Int).SetBytes(word)
	if word[0]&0x80 == 0 {
		return value
	}
	return value.Sub(value, new(big.Int).Lsh(big.NewInt(1), uint(len(word))*8))
}

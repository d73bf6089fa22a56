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
)

// InternalError is an implementation error, e.g. an unreachable code path.
// An InternalError indicates a bug in the codec or in the type descriptions
// supplied by the caller, never a problem with the values being encoded.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the values or buffers supplied by the
// caller, e.g. an integer exceeding its declared bit width or a malformed
// encoded buffer.
type UserError interface {
	error
	IsUserError()
}

// UnexpectedError is the default implementation of the InternalError interface.
// It wraps an implementation error.
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e UnexpectedError) IsInternalError() {}

// ValueOutOfRangeError is reported when a value's magnitude exceeds what
// its declared bit width or byte length can represent. Values are never
// silently truncated.
type ValueOutOfRangeError struct {
	Type  Type
	Value string
}

var _ UserError = ValueOutOfRangeError{}

func NewValueOutOfRangeError(typ Type, value string) ValueOutOfRangeError {
	return ValueOutOfRangeError{
		Type:  typ,
		Value: value,
	}
}

func (e ValueOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"value out of range for %s: %s",
		e.Type.ID(),
		e.Value,
	)
}

func (e ValueOutOfRangeError) IsUserError() {}

// LengthOverflowError is reported when a declared dynamic length exceeds
// the representable range of the length field.
type LengthOverflowError struct {
	Length uint64
}

var _ UserError = LengthOverflowError{}

func NewLengthOverflowError(length uint64) LengthOverflowError {
	return LengthOverflowError{Length: length}
}

func (e LengthOverflowError) Error() string {
	return fmt.Sprintf("length overflows length field: %d", e.Length)
}

func (e LengthOverflowError) IsUserError() {}

// MalformedEncodingError is a decode-time structural violation:
// an offset pointing outside the buffer, a truncated tail,
// or a count inconsistent with the available data.
// Decoding does not attempt partial recovery.
type MalformedEncodingError struct {
	Err error
}

var _ UserError = MalformedEncodingError{}

func NewMalformedEncodingError(message string, arg ...any) MalformedEncodingError {
	return MalformedEncodingError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e MalformedEncodingError) Unwrap() error {
	return e.Err
}

func (e MalformedEncodingError) Error() string {
	return fmt.Sprintf("malformed encoding: %s", e.Err.Error())
}

func (e MalformedEncodingError) IsUserError() {}

// InvalidSlotPackingError is reported when a static size is requested to
// pack across a slot boundary contrary to the layout policy. It indicates
// a bug in the caller's type descriptions, not in the values.
type InvalidSlotPackingError struct {
	Type Type
	Size uint
}

var _ InternalError = InvalidSlotPackingError{}

func NewInvalidSlotPackingError(typ Type, size uint) InvalidSlotPackingError {
	return InvalidSlotPackingError{
		Type: typ,
		Size: size,
	}
}

func (e InvalidSlotPackingError) Error() string {
	return fmt.Sprintf(
		"cannot pack %s: static size %d exceeds a single slot",
		e.Type.ID(),
		e.Size,
	)
}

func (e InvalidSlotPackingError) IsInternalError() {}

// IsInternalError checks whether a given error was caused by an InternalError.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case interface{ Unwrap() error }:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError checks whether a given error was caused by a UserError.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case interface{ Unwrap() error }:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}

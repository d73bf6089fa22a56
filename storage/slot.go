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

// Package storage implements the compact slot layout used for a
// contract's persistent state: multiple small values share fixed-size
// slots, and dynamic collections store their payload at a hashed
// location derived from their designated slot.
package storage

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/evmcodec/evmcodec"
)

// Word is one fixed-size unit of persistent storage.
type Word [evmcodec.WordSize]byte

// Slot is a 256-bit storage slot index.
type Slot [evmcodec.WordSize]byte

// SlotOf returns the slot with the given small index.
func SlotOf(index uint64) Slot {
	var s Slot
	new(big.Int).SetUint64(index).FillBytes(s[:])
	return s
}

// Next returns the slot immediately following this one.
func (s Slot) Next() Slot {
	return s.Add(1)
}

// Add returns the slot n positions after this one,
// wrapping around at 2^256 like the address space it indexes.
func (s Slot) Add(n uint64) Slot {
	out := s
	carry := n
	for i := len(out) - 1; i >= 0 && carry > 0; i-- {
		sum := uint64(out[i]) + carry&0xff
		out[i] = byte(sum)
		carry = carry>>8 + sum>>8
	}
	return out
}

// DataLocation returns the slot at which the payload of a dynamic
// collection with the given designated slot is stored: the Keccak-256
// hash of the slot index.
func DataLocation(s Slot) Slot {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(s[:])

	var out Slot
	copy(out[:], hash.Sum(nil))
	return out
}

// Store is a slot buffer: 32-byte words keyed by slot index.
// Reads of unset slots yield the zero word.
type Store map[Slot]Word

func NewStore() Store {
	return make(Store)
}

// Word returns the word at the given slot, or the zero word if unset.
func (s Store) Word(slot Slot) Word {
	return s[slot]
}

// SetWord writes the word at the given slot.
func (s Store) SetWord(slot Slot, word Word) {
	s[slot] = word
}

// Cursor addresses the next free byte of a storage region: a slot index
// and a byte offset in [0, 32) counted from the low-order end of the slot.
type Cursor struct {
	Slot   Slot
	Offset uint
}

// NewCursor returns a cursor at the start of the given slot.
func NewCursor(slot Slot) Cursor {
	return Cursor{Slot: slot}
}

// alignSlot advances to the next slot boundary if any bytes of the
// current slot are in use.
func (c Cursor) alignSlot() Cursor {
	if c.Offset == 0 {
		return c
	}
	return Cursor{Slot: c.Slot.Next()}
}

func wordOfUint(v uint64) Word {
	var w Word
	new(big.Int).SetUint64(v).FillBytes(w[:])
	return w
}

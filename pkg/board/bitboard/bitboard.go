// Copyright © 2024 Ade Attwood
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bitboard implements a 64-bit bitboard and related functions
// for manipulating them.
// https://www.chessprogramming.org/Bitboards
package bitboard

import (
	"math/bits"

	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// Board is a 64-bit bitboard. Bit i set means the square with index i
// is occupied by whatever quantity the bitboard represents.
type Board uint64

// useful bitboard constants
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Bit returns a bitboard with only the given square's bit set.
func Bit(s square.Square) Board {
	return Board(1) << uint(s)
}

// IsSet checks whether the given square's bit is set in the bitboard.
func (b Board) IsSet(s square.Square) bool {
	return b&Bit(s) != Empty
}

// Set sets the given square's bit in the bitboard.
func (b *Board) Set(s square.Square) {
	*b |= Bit(s)
}

// Unset clears the given square's bit in the bitboard.
func (b *Board) Unset(s square.Square) {
	*b &^= Bit(s)
}

// FirstOne returns the square of the least significant set bit.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Pop removes the least significant set bit from the bitboard and
// returns its square. Iterating a bitboard with Pop therefore yields
// squares in ascending index order, which keeps every generated move
// list deterministic.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// Count returns the number of set bits in the bitboard.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// String returns an 8x8 diagram of the bitboard with the a8 corner in
// the top left, for debugging.
func (b Board) String() string {
	var str string

	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			if b.IsSet(square.From(file, rank)) {
				str += " x"
			} else {
				str += " ."
			}
		}

		str += "\n"
	}

	return str
}

// North shifts the bitboard one rank towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts the bitboard one rank towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the bitboard one file towards file h. Bits that would
// wrap around onto file a of the rank below are masked out.
func (b Board) East() Board {
	return b >> 1 &^ Files[square.FileA]
}

// West shifts the bitboard one file towards file a.
func (b Board) West() Board {
	return b << 1 &^ Files[square.FileH]
}

// NorthEast shifts the bitboard diagonally towards h8.
func (b Board) NorthEast() Board {
	return b << 7 &^ Files[square.FileA]
}

// NorthWest shifts the bitboard diagonally towards a8.
func (b Board) NorthWest() Board {
	return b << 9 &^ Files[square.FileH]
}

// SouthEast shifts the bitboard diagonally towards h1.
func (b Board) SouthEast() Board {
	return b >> 9 &^ Files[square.FileA]
}

// SouthWest shifts the bitboard diagonally towards a1.
func (b Board) SouthWest() Board {
	return b >> 7 &^ Files[square.FileH]
}

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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are encoded as bit indexes into a bitboard, with index
// rank*8 + (7 - file), so H1 is bit 0 and A8 is bit 63. The null square
// is represented using the "-" symbol.
package square

import "fmt"

// New creates a new instance of a Square from the given algebraic
// identifier, for example "e4". The identifier "-" parses to None.
func New(id string) (Square, error) {
	switch {
	case id == "-":
		return None, nil
	case len(id) != 2:
		return None, fmt.Errorf("new square: invalid square id %q", id)
	}

	file, err := FileFrom(string(id[0]))
	if err != nil {
		return None, err
	}

	rank, err := RankFrom(string(id[1]))
	if err != nil {
		return None, err
	}

	return From(file, rank), nil
}

// From creates a new instance of a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + 7 - int(file))
}

// Square represents a square on a chessboard.
type Square int

// None is the null square.
const None Square = -1

// constants representing various squares, in bit-index order
const (
	H1 Square = iota
	G1
	F1
	E1
	D1
	C1
	B1
	A1

	H2
	G2
	F2
	E2
	D2
	C2
	B2
	A2

	H3
	G3
	F3
	E3
	D3
	C3
	B3
	A3

	H4
	G4
	F4
	E4
	D4
	C4
	B4
	A4

	H5
	G5
	F5
	E5
	D5
	C5
	B5
	A5

	H6
	G6
	F6
	E6
	D6
	C6
	B6
	A6

	H7
	G7
	F7
	E7
	D7
	C7
	B7
	A7

	H8
	G8
	F8
	E8
	D8
	C8
	B8
	A8

	// N is the number of squares on a chessboard.
	N = 64
)

// String converts a square into its algebraic representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	return s.File().String() + s.Rank().String()
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(7 - s%8)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

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

// Package piece implements representations of the chess piece kinds and
// colors, and related utility functions.
//
// The King is given the lowest kind index so that capture-ordering tables
// indexed by kind never prefer capturing a king.
package piece

import "fmt"

// Type represents the kind of a chess piece, independent of its color.
type Type int

// The six piece kinds. NoType is the sentinel for "no piece", used for
// optional captures and promotions.
const (
	NoType Type = iota - 1

	King
	Queen
	Rook
	Bishop
	Knight
	Pawn

	// N is the number of piece kinds.
	N = 6
)

// TypeFrom creates a Type from a FEN or UCI piece letter. Both cases are
// accepted since FEN uses case for color, which is not this type's
// concern. Unknown letters report NoType.
func TypeFrom(id string) Type {
	switch id {
	case "k", "K":
		return King
	case "q", "Q":
		return Queen
	case "r", "R":
		return Rook
	case "b", "B":
		return Bishop
	case "n", "N":
		return Knight
	case "p", "P":
		return Pawn
	default:
		return NoType
	}
}

// String converts a Type to its lowercase piece letter.
func (t Type) String() string {
	switch t {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	default:
		return "-"
	}
}

// Letter returns the FEN letter of the given kind in the given color,
// uppercase for white and lowercase for black.
func (t Type) Letter(c Color) string {
	if c == White {
		switch t {
		case King:
			return "K"
		case Queen:
			return "Q"
		case Rook:
			return "R"
		case Bishop:
			return "B"
		case Knight:
			return "N"
		case Pawn:
			return "P"
		}
	}

	return t.String()
}

// Color represents the color of a piece or player.
type Color int

// The two piece colors.
const (
	White Color = iota
	Black

	// NColor is the number of colors.
	NColor = 2
)

// ColorFrom creates a Color from its FEN identifier.
func ColorFrom(id string) (Color, error) {
	switch id {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, fmt.Errorf("unable to parse %q into a color", id)
	}
}

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to its FEN identifier.
func (c Color) String() string {
	if c == Black {
		return "b"
	}

	return "w"
}

// Name returns the english name of the color.
func (c Color) Name() string {
	if c == Black {
		return "black"
	}

	return "white"
}

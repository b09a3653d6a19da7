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

// Package zobrist provides the random keys used for hashing chess
// positions.
// https://www.chessprogramming.org/Zobrist_Hashing
//
// The keys are the canonical Polyglot book keys. Board.Hash combines
// them as Polyglot does, except that it adds the en passant key for
// every en passant square, even when no pawn can make the capture.
package zobrist

import (
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// Key is a 64-bit Zobrist hash of a chess position.
type Key uint64

var (
	// PieceSquare is indexed by the Polyglot piece kind and by
	// file + 8*rank.
	PieceSquare [12][square.N]Key

	// Castle is indexed in the order white king side, white queen
	// side, black king side, black queen side.
	Castle [4]Key

	// EnPassant is indexed by the file of the en passant target.
	EnPassant [square.FileN]Key

	// Turn is XORed into the hash when white is to move.
	Turn Key
)

// PieceIndex returns the Polyglot piece kind index of the given piece.
// Black and white kinds alternate starting with the black pawn at 0.
func PieceIndex(c piece.Color, t piece.Type) int {
	var kind int
	switch t {
	case piece.Pawn:
		kind = 0
	case piece.Knight:
		kind = 1
	case piece.Bishop:
		kind = 2
	case piece.Rook:
		kind = 3
	case piece.Queen:
		kind = 4
	case piece.King:
		kind = 5
	default:
		panic("zobrist: no piece index for empty piece")
	}

	if c == piece.White {
		return kind*2 + 1
	}

	return kind * 2
}

// SquareIndex returns the Polyglot square index of the given square,
// counting a1, b1, ..., h8.
func SquareIndex(s square.Square) int {
	return int(s.File()) + 8*int(s.Rank())
}

func init() {
	// carve the flat Polyglot array up into its four key groups
	for kind := 0; kind < 12; kind++ {
		for s := 0; s < square.N; s++ {
			PieceSquare[kind][s] = random64[kind*64+s]
		}
	}

	for right := 0; right < 4; right++ {
		Castle[right] = random64[768+right]
	}

	for file := 0; file < square.FileN; file++ {
		EnPassant[file] = random64[772+file]
	}

	Turn = random64[780]
}

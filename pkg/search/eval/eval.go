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

// Package eval implements the static evaluation of chess positions
// from material and piece placement.
package eval

import (
	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/bitboard"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// material values of the piece kinds in centipawns
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
)

// ValueOf returns the material value of the given piece kind. Kings
// have no material value since they can never be exchanged.
func ValueOf(t piece.Type) int {
	switch t {
	case piece.Pawn:
		return PawnValue
	case piece.Knight:
		return KnightValue
	case piece.Bishop:
		return BishopValue
	case piece.Rook:
		return RookValue
	case piece.Queen:
		return QueenValue
	default:
		return 0
	}
}

// tableOf returns the piece square table of the given kind.
func tableOf(t piece.Type) *[64]int {
	switch t {
	case piece.Pawn:
		return &pawnScore
	case piece.Knight:
		return &knightScore
	case piece.Bishop:
		return &bishopScore
	case piece.Rook:
		return &rookScore
	case piece.Queen:
		return &queenScore
	default:
		return &kingScore
	}
}

// Of returns the static evaluation of the position in centipawns from
// the side to move's perspective.
func Of(b *board.Board) int {
	score := 0

	for t := piece.King; t <= piece.Pawn; t++ {
		table := tableOf(t)
		value := ValueOf(t)

		for pieces := b.Pieces[piece.White][t]; pieces != bitboard.Empty; {
			s := pieces.Pop()
			score += value + table[whiteIndex(s)]
		}

		for pieces := b.Pieces[piece.Black][t]; pieces != bitboard.Empty; {
			s := pieces.Pop()
			score -= value + table[blackIndex(s)]
		}
	}

	if b.Turn == piece.Black {
		score = -score
	}

	return score
}

// whiteIndex maps a square to the piece square table index for a white
// piece; the tables are written with the eighth rank first and each
// row is indexed from the h file.
func whiteIndex(s square.Square) int {
	return (7 - int(s.File())) + 8*(7-int(s.Rank()))
}

// blackIndex maps a square to the piece square table index for a black
// piece, mirroring both the ranks and the files of the white index.
func blackIndex(s square.Square) int {
	return int(s.File()) + 8*int(s.Rank())
}

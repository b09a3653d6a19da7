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

// Package board implements a complete chess board along with legal
// move generation and other related utilities.
package board

import (
	"github.com/AdeAttwood/Ceir/pkg/board/bitboard"
	"github.com/AdeAttwood/Ceir/pkg/board/castling"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
	"github.com/AdeAttwood/Ceir/pkg/board/zobrist"
)

// Board represents the state of a chessboard at a given position. It
// is a plain value so search code can clone a position with a simple
// assignment.
type Board struct {
	// Turn is the color to move.
	Turn piece.Color

	// Pieces contains one bitboard per color and piece kind. The
	// twelve bitboards are pairwise disjoint.
	Pieces [piece.NColor][piece.N]bitboard.Board

	// Rights are the remaining castling rights of both players.
	Rights castling.Rights

	// EnPassant is the square behind the pawn that just advanced two
	// ranks, or square.None. A pawn capturing en passant lands on it.
	EnPassant square.Square

	// move counters, carried for FEN round trips and display
	DrawClock int
	FullMoves int
}

// Colored returns the union of all the given color's piece bitboards.
func (b *Board) Colored(c piece.Color) bitboard.Board {
	boards := &b.Pieces[c]

	return boards[piece.King] | boards[piece.Queen] | boards[piece.Rook] |
		boards[piece.Bishop] | boards[piece.Knight] | boards[piece.Pawn]
}

// Occupied returns the bitboard of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.Colored(piece.White) | b.Colored(piece.Black)
}

// PieceAt returns the color and kind of the piece on the given square.
// The boolean is false if the square is empty.
func (b *Board) PieceAt(s square.Square) (piece.Color, piece.Type, bool) {
	for c := piece.White; c <= piece.Black; c++ {
		for t := piece.King; t <= piece.Pawn; t++ {
			if b.Pieces[c][t].IsSet(s) {
				return c, t, true
			}
		}
	}

	return piece.White, piece.NoType, false
}

// MakeMove plays the given move on the board, mutating it in place and
// flipping the side to move. The move must be well formed: its piece
// must sit on the source square and belong to the side to move.
func (b *Board) MakeMove(m move.Move) {
	us, them := b.Turn, b.Turn.Other()

	// move the piece on its own bitboard
	mover := &b.Pieces[us][m.Piece]
	mover.Unset(m.From)
	mover.Set(m.To)

	// an en passant capture lands behind the captured pawn, so the
	// pawn to remove is one rank back from the target square
	if m.Piece == piece.Pawn && m.To == b.EnPassant && b.EnPassant != square.None {
		behind := bitboard.Bit(b.EnPassant).South()
		if us == piece.Black {
			behind = bitboard.Bit(b.EnPassant).North()
		}

		b.Pieces[them][piece.Pawn] &^= behind
	}

	// regular captures remove the piece on the target square; for en
	// passant that square is empty and this clears nothing
	if m.IsCapture() {
		b.Pieces[them][m.Capture].Unset(m.To)
	}

	// castling moves the rook across the king
	switch {
	case m.IsWhiteKingCastle():
		b.Pieces[piece.White][piece.Rook].Unset(square.H1)
		b.Pieces[piece.White][piece.Rook].Set(square.F1)
	case m.IsWhiteQueenCastle():
		b.Pieces[piece.White][piece.Rook].Unset(square.A1)
		b.Pieces[piece.White][piece.Rook].Set(square.D1)
	case m.IsBlackKingCastle():
		b.Pieces[piece.Black][piece.Rook].Unset(square.H8)
		b.Pieces[piece.Black][piece.Rook].Set(square.F8)
	case m.IsBlackQueenCastle():
		b.Pieces[piece.Black][piece.Rook].Unset(square.A8)
		b.Pieces[piece.Black][piece.Rook].Set(square.D8)
	}

	// any king move forfeits both castling rights
	if m.Piece == piece.King {
		if us == piece.White {
			b.Rights.Unset(castling.WhiteK | castling.WhiteQ)
		} else {
			b.Rights.Unset(castling.BlackK | castling.BlackQ)
		}
	}

	// a rook leaving its home square forfeits the matching right
	if m.Piece == piece.Rook {
		switch m.From {
		case square.A1:
			b.Rights.Unset(castling.WhiteQ)
		case square.H1:
			b.Rights.Unset(castling.WhiteK)
		case square.A8:
			b.Rights.Unset(castling.BlackQ)
		case square.H8:
			b.Rights.Unset(castling.BlackK)
		}
	}

	// swap the promoted pawn for its new piece
	if m.IsPromotion() {
		b.Pieces[us][piece.Pawn].Unset(m.To)
		b.Pieces[us][m.Promotion].Set(m.To)
	}

	// a double pawn push leaves an en passant target behind it; any
	// other move clears the target
	switch {
	case m.Piece == piece.Pawn && us == piece.White &&
		m.From.Rank() == square.Rank2 && m.To.Rank() == square.Rank4:
		b.EnPassant = square.From(m.To.File(), square.Rank3)

	case m.Piece == piece.Pawn && us == piece.Black &&
		m.From.Rank() == square.Rank7 && m.To.Rank() == square.Rank5:
		b.EnPassant = square.From(m.To.File(), square.Rank6)

	default:
		b.EnPassant = square.None
	}

	// move counters
	if m.Piece == piece.Pawn || m.IsCapture() {
		b.DrawClock = 0
	} else {
		b.DrawClock++
	}

	if us == piece.Black {
		b.FullMoves++
	}

	b.Turn = them
}

// Hash returns the Zobrist key of the current position. The key is
// computed from scratch; the XOR composition of the key groups makes
// that a straight scan over the piece bitboards.
func (b *Board) Hash() zobrist.Key {
	var hash zobrist.Key

	for c := piece.White; c <= piece.Black; c++ {
		for t := piece.King; t <= piece.Pawn; t++ {
			kind := zobrist.PieceIndex(c, t)

			for pieces := b.Pieces[c][t]; pieces != bitboard.Empty; {
				s := pieces.Pop()
				hash ^= zobrist.PieceSquare[kind][zobrist.SquareIndex(s)]
			}
		}
	}

	if b.Rights.Has(castling.WhiteK) {
		hash ^= zobrist.Castle[0]
	}
	if b.Rights.Has(castling.WhiteQ) {
		hash ^= zobrist.Castle[1]
	}
	if b.Rights.Has(castling.BlackK) {
		hash ^= zobrist.Castle[2]
	}
	if b.Rights.Has(castling.BlackQ) {
		hash ^= zobrist.Castle[3]
	}

	if b.EnPassant != square.None {
		hash ^= zobrist.EnPassant[b.EnPassant.File()]
	}

	if b.Turn == piece.White {
		hash ^= zobrist.Turn
	}

	return hash
}

// String converts the board into a human readable diagram with the a8
// corner top left.
func (b *Board) String() string {
	str := "     a  b  c  d  e  f  g  h\n"
	str += "    ────────────────────────\n"

	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		str += rank.String() + " │"

		for file := square.FileA; file <= square.FileH; file++ {
			if c, t, ok := b.PieceAt(square.From(file, rank)); ok {
				str += " " + t.Letter(c) + " "
			} else {
				str += " . "
			}
		}

		str += "│ " + rank.String() + "\n"
	}

	str += "    ────────────────────────\n"
	str += "     a  b  c  d  e  f  g  h\n\n"

	str += "Its " + b.Turn.Name() + " to move"

	return str
}

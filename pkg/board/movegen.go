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

package board

import (
	"github.com/AdeAttwood/Ceir/pkg/board/attacks"
	"github.com/AdeAttwood/Ceir/pkg/board/bitboard"
	"github.com/AdeAttwood/Ceir/pkg/board/castling"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// moveOrder fixes the order piece kinds are generated in, which keeps
// move lists deterministic across runs.
var moveOrder = [piece.N]piece.Type{
	piece.Queen, piece.Rook, piece.Bishop, piece.Knight, piece.Pawn, piece.King,
}

// promotionOrder fixes the order the four promotion moves of a pawn
// are generated in.
var promotionOrder = [4]piece.Type{
	piece.Queen, piece.Rook, piece.Bishop, piece.Knight,
}

// AttackedSquares returns the set of squares attacked by the given
// color's pieces. The set depends only on the piece placement, not on
// whose turn it is.
func (b *Board) AttackedSquares(c piece.Color) bitboard.Board {
	occupied := b.Occupied()

	attacked := attacks.PawnCaptures(c, b.Pieces[c][piece.Pawn])
	attacked |= attacks.Knight(b.Pieces[c][piece.Knight])
	attacked |= attacks.King(b.Pieces[c][piece.King])

	// sliders have to be scanned one at a time so that a blocker on
	// one piece's ray does not cut another piece's ray short
	queens := b.Pieces[c][piece.Queen]

	for sliders := b.Pieces[c][piece.Rook] | queens; sliders != bitboard.Empty; {
		attacked |= attacks.Rook(bitboard.Bit(sliders.Pop()), occupied)
	}

	for sliders := b.Pieces[c][piece.Bishop] | queens; sliders != bitboard.Empty; {
		attacked |= attacks.Bishop(bitboard.Bit(sliders.Pop()), occupied)
	}

	return attacked
}

// InCheck reports whether the given color's king is attacked.
func (b *Board) InCheck(c piece.Color) bool {
	return b.Pieces[c][piece.King]&b.AttackedSquares(c.Other()) != bitboard.Empty
}

// PseudoMoves returns every move the side to move could make while
// ignoring checks against its own king. Castling candidates and en
// passant captures are appended after the regular piece moves.
func (b *Board) PseudoMoves() []move.Move {
	us := b.Turn

	occupied := b.Occupied()
	ours := b.Colored(us)
	theirs := b.Colored(us.Other())

	moves := make([]move.Move, 0, 48)

	for _, t := range moveOrder {
		for sources := b.Pieces[us][t]; sources != bitboard.Empty; {
			from := sources.Pop()
			source := bitboard.Bit(from)

			var targets bitboard.Board
			switch t {
			case piece.Knight:
				targets = attacks.Knight(source)
			case piece.King:
				targets = attacks.King(source)
			case piece.Bishop:
				targets = attacks.Bishop(source, occupied)
			case piece.Rook:
				targets = attacks.Rook(source, occupied)
			case piece.Queen:
				targets = attacks.Queen(source, occupied)
			case piece.Pawn:
				targets = attacks.PawnMoves(us, source, occupied, theirs)
			}

			for targets &^= ours; targets != bitboard.Empty; {
				to := targets.Pop()

				m := move.New(t, from, to)
				if _, capture, ok := b.PieceAt(to); ok {
					m.Capture = capture
				}

				if t == piece.Pawn && (to.Rank() == square.Rank8 || to.Rank() == square.Rank1) {
					for _, promotion := range promotionOrder {
						promoted := m
						promoted.Promotion = promotion
						moves = append(moves, promoted)
					}

					continue
				}

				moves = append(moves, m)
			}
		}
	}

	moves = append(moves, b.CastleMoves()...)
	moves = append(moves, b.enPassantMoves()...)

	return moves
}

// CastleMoves returns the castling moves currently available to the
// side to move. A castle is only produced when the matching right is
// held, the squares between king and rook are empty, the king is not
// in check and the squares the king crosses are not attacked.
func (b *Board) CastleMoves() []move.Move {
	us := b.Turn

	kingSide, queenSide := castling.WhiteK, castling.WhiteQ
	if us == piece.Black {
		kingSide, queenSide = castling.BlackK, castling.BlackQ
	}

	if !b.Rights.Has(kingSide) && !b.Rights.Has(queenSide) {
		return nil
	}

	occupied := b.Occupied()
	attacked := b.AttackedSquares(us.Other())

	kingFrom, kingTo, queenTo := square.E1, square.G1, square.C1
	queenPath := bitboard.Bit(square.B1) | bitboard.Bit(square.C1) | bitboard.Bit(square.D1)
	if us == piece.Black {
		kingFrom, kingTo, queenTo = square.E8, square.G8, square.C8
		queenPath = bitboard.Bit(square.B8) | bitboard.Bit(square.C8) | bitboard.Bit(square.D8)
	}

	// the king's crossing squares double as the empty requirement on
	// the king side; on the queen side the b file must be empty too
	kingCross := bitboard.Bit(kingTo) | bitboard.Bit(kingTo).West()
	queenCross := bitboard.Bit(queenTo) | bitboard.Bit(queenTo).East()

	var moves []move.Move

	if b.Rights.Has(kingSide) &&
		occupied&kingCross == bitboard.Empty &&
		attacked&(bitboard.Bit(kingFrom)|kingCross) == bitboard.Empty {
		moves = append(moves, move.New(piece.King, kingFrom, kingTo))
	}

	if b.Rights.Has(queenSide) &&
		occupied&queenPath == bitboard.Empty &&
		attacked&(bitboard.Bit(kingFrom)|queenCross) == bitboard.Empty {
		moves = append(moves, move.New(piece.King, kingFrom, queenTo))
	}

	return moves
}

// enPassantMoves returns the en passant captures available to the side
// to move.
func (b *Board) enPassantMoves() []move.Move {
	if b.EnPassant == square.None {
		return nil
	}

	us := b.Turn

	// the pawns that attack the target square are the ones the other
	// color's pawns would attack from it
	sources := attacks.PawnCaptures(us.Other(), bitboard.Bit(b.EnPassant)) &
		b.Pieces[us][piece.Pawn]

	var moves []move.Move

	for sources != bitboard.Empty {
		m := move.New(piece.Pawn, sources.Pop(), b.EnPassant)
		m.Capture = piece.Pawn
		moves = append(moves, m)
	}

	return moves
}

// LegalMoves returns every legal move of the side to move: the pseudo
// legal moves that do not leave the mover's own king attacked.
func (b *Board) LegalMoves() []move.Move {
	pseudo := b.PseudoMoves()
	legal := make([]move.Move, 0, len(pseudo))

	for _, m := range pseudo {
		child := *b
		child.MakeMove(m)

		if !child.InCheck(b.Turn) {
			legal = append(legal, m)
		}
	}

	return legal
}

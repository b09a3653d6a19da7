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

// Package move implements a fully resolved chess move and related
// utility functions.
package move

import (
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// Move is a fully specified movement of a single piece. Castling is
// encoded as the king moving two squares towards the rook.
type Move struct {
	// Piece is the kind of the piece being moved.
	Piece piece.Type

	// From and To are the source and destination squares.
	From square.Square
	To   square.Square

	// Capture is the kind of the piece being captured, or
	// piece.NoType for a quiet move. For an en passant capture To is
	// the en passant target square and Capture is piece.Pawn.
	Capture piece.Type

	// Promotion is the kind the moving pawn promotes to, or
	// piece.NoType.
	Promotion piece.Type
}

// Null is the null move, used where a move is optional.
var Null = Move{
	Piece:     piece.NoType,
	From:      square.None,
	To:        square.None,
	Capture:   piece.NoType,
	Promotion: piece.NoType,
}

// New creates a quiet Move of the given kind between the given squares.
func New(t piece.Type, from, to square.Square) Move {
	return Move{
		Piece:     t,
		From:      from,
		To:        to,
		Capture:   piece.NoType,
		Promotion: piece.NoType,
	}
}

// IsNull reports whether the move is the null move.
func (m Move) IsNull() bool {
	return m.From == square.None
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Capture != piece.NoType
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != piece.NoType
}

// String converts a move into its UCI representation, for example
// "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}

	str := m.From.String() + m.To.String()
	if m.IsPromotion() {
		str += m.Promotion.String()
	}

	return str
}

// IsWhiteKingCastle reports whether the move is white castling king side.
func (m Move) IsWhiteKingCastle() bool {
	return m.Piece == piece.King && m.From == square.E1 && m.To == square.G1
}

// IsWhiteQueenCastle reports whether the move is white castling queen side.
func (m Move) IsWhiteQueenCastle() bool {
	return m.Piece == piece.King && m.From == square.E1 && m.To == square.C1
}

// IsBlackKingCastle reports whether the move is black castling king side.
func (m Move) IsBlackKingCastle() bool {
	return m.Piece == piece.King && m.From == square.E8 && m.To == square.G8
}

// IsBlackQueenCastle reports whether the move is black castling queen side.
func (m Move) IsBlackQueenCastle() bool {
	return m.Piece == piece.King && m.From == square.E8 && m.To == square.C8
}

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

package attacks

import (
	"github.com/AdeAttwood/Ceir/pkg/board/bitboard"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// PawnCaptures returns the two diagonally forward squares threatened
// by the pawns of the given color. The result is a threat pattern; it
// is not intersected with any occupancy.
func PawnCaptures(c piece.Color, pawns bitboard.Board) bitboard.Board {
	if c == piece.White {
		return pawns.NorthWest() | pawns.NorthEast()
	}

	return pawns.SouthWest() | pawns.SouthEast()
}

// PawnPushes returns the single and double push targets of the pawns
// of the given color. A double push requires both squares in front of
// the pawn to be empty and is only available from the pawn's starting
// rank, which is equivalent to the landing square being on the fourth
// rank relative to the mover.
func PawnPushes(c piece.Color, pawns, occupied bitboard.Board) bitboard.Board {
	if c == piece.White {
		single := pawns.North() &^ occupied
		double := single.North() &^ occupied & bitboard.Ranks[square.Rank4]
		return single | double
	}

	single := pawns.South() &^ occupied
	double := single.South() &^ occupied & bitboard.Ranks[square.Rank5]
	return single | double
}

// PawnMoves returns every square the pawns of the given color can move
// to: pushes onto empty squares and captures of enemy pieces. En
// passant captures are not included; the move generator handles those
// from the board's en passant target.
func PawnMoves(c piece.Color, pawns, occupied, theirs bitboard.Board) bitboard.Board {
	return PawnPushes(c, pawns, occupied) | (PawnCaptures(c, pawns) & theirs)
}

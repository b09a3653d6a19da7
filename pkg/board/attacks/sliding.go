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

// Package attacks computes the attack sets of every chess piece kind.
//
// Sliding attacks are generated with shift-and-mask ray scans: the
// source bit is stepped one square at a time in each ray direction
// until it falls off the board or runs into a blocker. A blocking
// square is included in the ray so captures of the blocker are
// generated.
// https://www.chessprogramming.org/On_an_empty_Board#PositiveRays
package attacks

import "github.com/AdeAttwood/Ceir/pkg/board/bitboard"

// scan walks a single ray from the given source, stepping with the
// given direction shift. The shift functions mask out bits that wrap
// across the board edge, so a ray that leaves the board simply becomes
// empty and terminates the scan.
func scan(source, occupied bitboard.Board, shift func(bitboard.Board) bitboard.Board) bitboard.Board {
	ray := bitboard.Empty

	for step := shift(source); step != bitboard.Empty; step = shift(step) {
		ray |= step

		if step&occupied != bitboard.Empty {
			// blockers are included as capture targets
			break
		}
	}

	return ray
}

// Rook returns the squares attacked along files and ranks by the piece
// on the given source square, given the full board occupancy.
func Rook(source, occupied bitboard.Board) bitboard.Board {
	return scan(source, occupied, bitboard.Board.North) |
		scan(source, occupied, bitboard.Board.South) |
		scan(source, occupied, bitboard.Board.East) |
		scan(source, occupied, bitboard.Board.West)
}

// Bishop returns the squares attacked along diagonals by the piece on
// the given source square, given the full board occupancy.
func Bishop(source, occupied bitboard.Board) bitboard.Board {
	return scan(source, occupied, bitboard.Board.NorthEast) |
		scan(source, occupied, bitboard.Board.NorthWest) |
		scan(source, occupied, bitboard.Board.SouthEast) |
		scan(source, occupied, bitboard.Board.SouthWest)
}

// Queen returns the union of the rook and bishop attacks from the
// given source square.
func Queen(source, occupied bitboard.Board) bitboard.Board {
	return Rook(source, occupied) | Bishop(source, occupied)
}

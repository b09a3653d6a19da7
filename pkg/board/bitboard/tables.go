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

package bitboard

import "github.com/AdeAttwood/Ceir/pkg/board/square"

var (
	// Files contains one bitboard per file, Files[square.FileA] being
	// the a file.
	Files [square.FileN]Board

	// Ranks contains one bitboard per rank, Ranks[square.Rank1] being
	// the rank white's pieces start on.
	Ranks [square.RankN]Board

	// Diagonals contains one bitboard per a1-h8 direction diagonal.
	// Diagonals[0] is the single square h1 and Diagonals[14] is a8;
	// the long diagonal a1-h8 is Diagonals[7].
	Diagonals [15]Board

	// AntiDiagonals contains one bitboard per h1-a8 direction diagonal.
	// AntiDiagonals[0] is the single square a1 and AntiDiagonals[14] is
	// h8; the long diagonal h1-a8 is AntiDiagonals[7].
	AntiDiagonals [15]Board

	// RookMask contains, for every square, the union of the file and
	// the rank the square lies on.
	RookMask [square.N]Board

	// BishopMask contains, for every square, the union of the diagonal
	// and the anti-diagonal the square lies on.
	BishopMask [square.N]Board
)

// DiagonalOf returns the index into Diagonals of the diagonal the given
// square lies on.
func DiagonalOf(s square.Square) int {
	return 7 - int(s.File()) + int(s.Rank())
}

// AntiDiagonalOf returns the index into AntiDiagonals of the
// anti-diagonal the given square lies on.
func AntiDiagonalOf(s square.Square) int {
	return int(s.File()) + int(s.Rank())
}

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Files[s.File()].Set(s)
		Ranks[s.Rank()].Set(s)
		Diagonals[DiagonalOf(s)].Set(s)
		AntiDiagonals[AntiDiagonalOf(s)].Set(s)
	}

	for s := square.Square(0); s < square.N; s++ {
		RookMask[s] = Files[s.File()] | Ranks[s.Rank()]
		BishopMask[s] = Diagonals[DiagonalOf(s)] | AntiDiagonals[AntiDiagonalOf(s)]
	}
}

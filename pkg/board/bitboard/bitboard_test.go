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

package bitboard_test

import (
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board/bitboard"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

func TestPopIteratesLowestSquareFirst(t *testing.T) {
	b := bitboard.Bit(square.A1) | bitboard.Bit(square.B1) | bitboard.Bit(square.C1)

	want := []square.Square{square.C1, square.B1, square.A1}
	for i, expected := range want {
		if got := b.Pop(); got != expected {
			t.Errorf("pop %d: got %s, want %s", i, got, expected)
		}
	}

	if b != bitboard.Empty {
		t.Errorf("bitboard not empty after iteration: %v", b)
	}
}

func TestBitSetUnset(t *testing.T) {
	var b bitboard.Board

	b.Set(square.E4)
	if !b.IsSet(square.E4) {
		t.Error("expected e4 to be set")
	}

	if b.Count() != 1 {
		t.Errorf("got %d set bits, want 1", b.Count())
	}

	b.Unset(square.E4)
	if b != bitboard.Empty {
		t.Error("expected empty bitboard after unset")
	}
}

func TestFilesAndRanks(t *testing.T) {
	if !bitboard.Files[square.FileA].IsSet(square.A1) ||
		!bitboard.Files[square.FileA].IsSet(square.A8) {
		t.Error("file a should contain a1 and a8")
	}

	if bitboard.Files[square.FileA].IsSet(square.B1) {
		t.Error("file a should not contain b1")
	}

	if !bitboard.Ranks[square.Rank1].IsSet(square.H1) ||
		!bitboard.Ranks[square.Rank1].IsSet(square.A1) {
		t.Error("rank 1 should contain a1 and h1")
	}

	for f := square.FileA; f <= square.FileH; f++ {
		if got := bitboard.Files[f].Count(); got != 8 {
			t.Errorf("file %s has %d squares, want 8", f, got)
		}
	}

	for r := square.Rank1; r <= square.Rank8; r++ {
		if got := bitboard.Ranks[r].Count(); got != 8 {
			t.Errorf("rank %s has %d squares, want 8", r, got)
		}
	}
}

func TestDiagonals(t *testing.T) {
	long := bitboard.Diagonals[bitboard.DiagonalOf(square.A1)]
	if long.Count() != 8 || !long.IsSet(square.A1) || !long.IsSet(square.H8) {
		t.Errorf("long diagonal wrong: %v", long)
	}

	antiLong := bitboard.AntiDiagonals[bitboard.AntiDiagonalOf(square.H1)]
	if antiLong.Count() != 8 || !antiLong.IsSet(square.H1) || !antiLong.IsSet(square.A8) {
		t.Errorf("long anti-diagonal wrong: %v", antiLong)
	}

	corner := bitboard.Diagonals[bitboard.DiagonalOf(square.H1)]
	if corner.Count() != 1 {
		t.Errorf("h1 diagonal should be a single square, got %d", corner.Count())
	}
}

func TestSquareMasks(t *testing.T) {
	rook := bitboard.RookMask[square.D4]
	if rook.Count() != 15 {
		t.Errorf("rook mask of d4 has %d squares, want 15", rook.Count())
	}

	if !rook.IsSet(square.D8) || !rook.IsSet(square.A4) {
		t.Error("rook mask of d4 should contain d8 and a4")
	}

	bishop := bitboard.BishopMask[square.A1]
	if !bishop.IsSet(square.H8) || bishop.IsSet(square.B1) {
		t.Error("bishop mask of a1 should contain h8 but not b1")
	}
}

func TestShiftsDoNotWrap(t *testing.T) {
	tests := []struct {
		name  string
		shift func(bitboard.Board) bitboard.Board
		from  square.Square
		want  bitboard.Board
	}{
		{"east from h file", bitboard.Board.East, square.H4, bitboard.Empty},
		{"west from a file", bitboard.Board.West, square.A4, bitboard.Empty},
		{"north east from h file", bitboard.Board.NorthEast, square.H4, bitboard.Empty},
		{"south west from a file", bitboard.Board.SouthWest, square.A4, bitboard.Empty},
		{"north off the board", bitboard.Board.North, square.E8, bitboard.Empty},
		{"east", bitboard.Board.East, square.E4, bitboard.Bit(square.F4)},
		{"west", bitboard.Board.West, square.E4, bitboard.Bit(square.D4)},
		{"north east", bitboard.Board.NorthEast, square.E4, bitboard.Bit(square.F5)},
		{"north west", bitboard.Board.NorthWest, square.E4, bitboard.Bit(square.D5)},
		{"south east", bitboard.Board.SouthEast, square.E4, bitboard.Bit(square.F3)},
		{"south west", bitboard.Board.SouthWest, square.E4, bitboard.Bit(square.D3)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.shift(bitboard.Bit(test.from)); got != test.want {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

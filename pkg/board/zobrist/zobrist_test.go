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

package zobrist_test

import (
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
	"github.com/AdeAttwood/Ceir/pkg/board/zobrist"
)

func TestPieceIndex(t *testing.T) {
	tests := []struct {
		color piece.Color
		kind  piece.Type
		index int
	}{
		{piece.Black, piece.Pawn, 0},
		{piece.White, piece.Pawn, 1},
		{piece.Black, piece.Knight, 2},
		{piece.White, piece.Knight, 3},
		{piece.Black, piece.Bishop, 4},
		{piece.White, piece.Bishop, 5},
		{piece.Black, piece.Rook, 6},
		{piece.White, piece.Rook, 7},
		{piece.Black, piece.Queen, 8},
		{piece.White, piece.Queen, 9},
		{piece.Black, piece.King, 10},
		{piece.White, piece.King, 11},
	}

	for _, test := range tests {
		if got := zobrist.PieceIndex(test.color, test.kind); got != test.index {
			t.Errorf(
				"piece index of %s %s: got %d, want %d",
				test.color.Name(), test.kind, got, test.index,
			)
		}
	}
}

func TestSquareIndex(t *testing.T) {
	if got := zobrist.SquareIndex(square.A1); got != 0 {
		t.Errorf("square index of a1: got %d, want 0", got)
	}

	if got := zobrist.SquareIndex(square.H1); got != 7 {
		t.Errorf("square index of h1: got %d, want 7", got)
	}

	if got := zobrist.SquareIndex(square.H8); got != 63 {
		t.Errorf("square index of h8: got %d, want 63", got)
	}
}

func TestKeysAreDistinct(t *testing.T) {
	seen := make(map[zobrist.Key]bool)

	for kind := 0; kind < 12; kind++ {
		for s := 0; s < square.N; s++ {
			key := zobrist.PieceSquare[kind][s]
			if seen[key] {
				t.Fatalf("duplicate key %x", key)
			}

			seen[key] = true
		}
	}

	if zobrist.Turn == 0 {
		t.Error("the side to move key should not be zero")
	}
}

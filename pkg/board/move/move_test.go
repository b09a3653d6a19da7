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

package move_test

import (
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

func TestUCIEncoding(t *testing.T) {
	quiet := move.New(piece.Pawn, square.E2, square.E4)
	if quiet.String() != "e2e4" {
		t.Errorf("got %q, want e2e4", quiet.String())
	}

	promotion := move.New(piece.Pawn, square.E7, square.E8)
	promotion.Promotion = piece.Queen
	if promotion.String() != "e7e8q" {
		t.Errorf("got %q, want e7e8q", promotion.String())
	}

	if move.Null.String() != "0000" {
		t.Errorf("got %q, want 0000 for the null move", move.Null.String())
	}
}

func TestPredicates(t *testing.T) {
	capture := move.New(piece.Knight, square.F3, square.E5)
	capture.Capture = piece.Pawn

	if !capture.IsCapture() || capture.IsPromotion() || capture.IsNull() {
		t.Error("wrong predicates for a capture")
	}

	if !move.Null.IsNull() {
		t.Error("the null move should report IsNull")
	}
}

func TestCastlePredicates(t *testing.T) {
	if !move.New(piece.King, square.E1, square.G1).IsWhiteKingCastle() {
		t.Error("e1g1 with a king is the white king side castle")
	}

	if move.New(piece.Queen, square.E1, square.G1).IsWhiteKingCastle() {
		t.Error("e1g1 with a queen is not a castle")
	}

	if !move.New(piece.King, square.E8, square.C8).IsBlackQueenCastle() {
		t.Error("e8c8 with a king is the black queen side castle")
	}
}

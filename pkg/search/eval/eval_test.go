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

package eval_test

import (
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/search/eval"
)

func evaluate(t *testing.T, fen string) int {
	t.Helper()

	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}

	return eval.Of(b)
}

func TestMaterialBalance(t *testing.T) {
	if got := evaluate(t, board.StartFEN); got != 0 {
		t.Errorf("the start position evaluates to %d, want 0", got)
	}

	// white is a queen up; placement terms come on top
	got := evaluate(t, "3qk3/8/8/8/8/8/8/2QQK3 w - - 0 1")
	if got < eval.QueenValue-100 || got > eval.QueenValue+100 {
		t.Errorf("a spare queen evaluates to %d, want about %d", got, eval.QueenValue)
	}
}

func TestPlacementTerms(t *testing.T) {
	// a centralized pawn outscores one still at home
	if got := evaluate(t, "8/3p4/8/8/3P4/8/8/8 w - - 0 1"); got != 40 {
		t.Errorf("got %d, want 40", got)
	}

	// mirrored placement cancels out
	if got := evaluate(t, "8/3p4/8/8/8/8/3P4/8 w - - 0 1"); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestPerspectiveFollowsTheTurn(t *testing.T) {
	white := evaluate(t, "8/3p4/8/8/3P4/8/8/8 w - - 0 1")
	black := evaluate(t, "8/3p4/8/8/3P4/8/8/8 b - - 0 1")

	if white != -black {
		t.Errorf("the evaluation should negate with the turn: %d vs %d", white, black)
	}
}

func TestValueOf(t *testing.T) {
	tests := map[string]struct {
		got  int
		want int
	}{
		"pawn":   {eval.PawnValue, 100},
		"knight": {eval.KnightValue, 300},
		"bishop": {eval.BishopValue, 300},
		"rook":   {eval.RookValue, 500},
		"queen":  {eval.QueenValue, 900},
	}

	for name, test := range tests {
		if test.got != test.want {
			t.Errorf("%s value: got %d, want %d", name, test.got, test.want)
		}
	}
}

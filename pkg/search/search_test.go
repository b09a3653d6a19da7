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

package search_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/search"
	"github.com/AdeAttwood/Ceir/pkg/search/tt"
)

// runSearch searches the given position and returns the engine output
// lines.
func runSearch(t *testing.T, fen string, depth int) []string {
	t.Helper()

	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	search.New(&out, tt.NewTable(), *b, depth).Run()

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestTwoRookLadderMate(t *testing.T) {
	lines := runSearch(t, "5k2/8/8/8/7R/R7/8/4K3 w - - 0 1", 6)

	if len(lines) != 2 {
		t.Fatalf("expected an info and a bestmove line, got %q", lines)
	}

	want := "score mate 5 pv a3a7 f8g8 h4h1 g8f8 h1h8"
	if !strings.HasSuffix(lines[0], want) {
		t.Errorf("info line %q does not end with %q", lines[0], want)
	}

	if !strings.HasPrefix(lines[0], "info depth ") {
		t.Errorf("info line %q has the wrong shape", lines[0])
	}

	if lines[1] != "bestmove a3a7" {
		t.Errorf("got %q, want bestmove a3a7", lines[1])
	}
}

func TestMateInOne(t *testing.T) {
	lines := runSearch(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 3)

	if len(lines) != 2 || lines[1] != "bestmove a1a8" {
		t.Errorf("expected bestmove a1a8, got %q", lines)
	}

	if !strings.Contains(lines[0], "score mate 1") {
		t.Errorf("info line %q should report mate 1", lines[0])
	}
}

func TestBestMoveIsLegal(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, err := board.FromFEN(fen)
			if err != nil {
				t.Fatal(err)
			}

			var out bytes.Buffer
			s := search.New(&out, tt.NewTable(), *b, 3)
			s.Run()

			best, _, ok := s.Result()
			if !ok {
				t.Fatal("expected a best move")
			}

			for _, m := range b.LegalMoves() {
				if m.String() == best.String() {
					return
				}
			}

			t.Errorf("best move %s is not legal in %q", best, fen)
		})
	}
}

func TestNoOutputWithoutLegalMoves(t *testing.T) {
	// white is stalemated
	lines := runSearch(t, "7k/8/8/8/8/8/5q2/7K w - - 0 1", 4)

	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("expected no output for a final position, got %q", lines)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"

	first := runSearch(t, fen, 4)
	second := runSearch(t, fen, 4)

	if strings.Join(first, "\n") != strings.Join(second, "\n") {
		t.Errorf("two identical searches disagree:\n%q\n%q", first, second)
	}
}

func TestCapturesAreFoundAtTheHorizon(t *testing.T) {
	// white wins the undefended rook with a depth one search; the
	// capture is the last ply the main search plays before quiescence
	b, err := board.FromFEN("4k3/8/8/3r4/4Q3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	s := search.New(&out, tt.NewTable(), *b, 1)
	s.Run()

	best, _, ok := s.Result()
	if !ok || best.String() != "e4d5" {
		t.Errorf("got best move %v, want e4d5", best)
	}
}

func TestScoreUnits(t *testing.T) {
	tests := []struct {
		value int
		unit  string
		shown int
	}{
		{120, "cp", 120},
		{-45, "cp", -45},
		{search.MateScore - 5, "mate", 5},
		{-(search.MateScore - 4), "mate", -4},
		{search.MateScore - 100, "mate", 100},
		{search.MateScore - 101, "cp", search.MateScore - 101},
	}

	for _, test := range tests {
		unit, shown := search.Score(test.value)
		if unit != test.unit || shown != test.shown {
			t.Errorf(
				"score of %d: got %s %d, want %s %d",
				test.value, unit, shown, test.unit, test.shown,
			)
		}
	}
}

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

package engine

import (
	"bytes"
	"strings"
	"testing"
)

// session drives the engine through a list of UCI commands and
// returns everything it wrote, line by line.
func session(t *testing.T, commands ...string) []string {
	t.Helper()

	var out bytes.Buffer
	client := NewClientFrom(strings.NewReader(""), &out)

	for _, command := range commands {
		if err := client.Run(strings.Fields(command)...); err != nil {
			client.Println(err)
		}
	}

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestUciHandshake(t *testing.T) {
	lines := session(t, "uci")

	if len(lines) != 4 {
		t.Fatalf("expected 4 reply lines, got %q", lines)
	}

	if !strings.HasPrefix(lines[0], "id name Ceir") {
		t.Errorf("got %q, want an id name line", lines[0])
	}

	if lines[1] != "id author Ade Attwood" {
		t.Errorf("got %q, want the id author line", lines[1])
	}

	if lines[3] != "uciok" {
		t.Errorf("got %q, want uciok", lines[3])
	}
}

func TestIsReady(t *testing.T) {
	lines := session(t, "isready")

	if len(lines) != 1 || lines[0] != "readyok" {
		t.Errorf("got %q, want readyok", lines)
	}
}

func TestPositionWithMoves(t *testing.T) {
	lines := session(t, "position startpos moves e2e4 e7e5 g1f3", "d")

	output := strings.Join(lines, "\n")
	if !strings.Contains(output, "Its black to move") {
		t.Errorf("expected black to move after three plies:\n%s", output)
	}

	// the f3 knight shows up on the printed third rank
	if !strings.Contains(output, "3 │ .  .  .  .  .  N  .  . │ 3") {
		t.Errorf("expected the knight on f3:\n%s", output)
	}
}

func TestPositionFromFEN(t *testing.T) {
	lines := session(
		t,
		"position fen 8/P7/8/8/8/8/8/4k2K w - - 0 1 moves a7a8q",
		"d",
	)

	output := strings.Join(lines, "\n")
	if !strings.Contains(output, "8 │ Q  .  .  .  .  .  .  . │ 8") {
		t.Errorf("expected the promoted queen on a8:\n%s", output)
	}
}

func TestIllegalMovesAreReported(t *testing.T) {
	tests := []struct {
		name    string
		command string
		message string
	}{
		{
			"empty source square",
			"position startpos moves e5e4",
			"there is no piece on the source square",
		},
		{
			"wrong side to move",
			"position startpos moves e7e5",
			"turn to move",
		},
		{
			"capturing an own piece",
			"position startpos moves d1e2",
			"your own piece",
		},
		{
			"unknown promotion piece",
			"position fen 8/P7/8/8/8/8/8/4k2K w - - 0 1 moves a7a8x",
			"promotion piece",
		},
		{
			"malformed move",
			"position startpos moves e2",
			"invalid move",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lines := session(t, test.command)

			output := strings.Join(lines, "\n")
			if !strings.Contains(output, test.message) {
				t.Errorf("output %q does not mention %q", output, test.message)
			}
		})
	}
}

func TestMalformedFENDoesNotChangeThePosition(t *testing.T) {
	lines := session(
		t,
		"position startpos moves e2e4",
		"position fen not a real fen at all",
		"d",
	)

	output := strings.Join(lines, "\n")
	if !strings.Contains(output, "4 │ .  .  .  .  P  .  .  . │ 4") {
		t.Errorf("the previous position should survive a bad fen:\n%s", output)
	}
}

func TestGoReportsInfoAndBestMove(t *testing.T) {
	lines := session(t, "position startpos", "go depth 2")

	if len(lines) != 2 {
		t.Fatalf("expected an info and a bestmove line, got %q", lines)
	}

	if !strings.HasPrefix(lines[0], "info depth ") ||
		!strings.Contains(lines[0], " score cp ") {
		t.Errorf("got info line %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "bestmove ") {
		t.Errorf("got %q, want a bestmove line", lines[1])
	}
}

func TestGoFindsTheLadderMate(t *testing.T) {
	lines := session(
		t,
		"position fen 5k2/8/8/8/7R/R7/8/4K3 w - - 0 1",
		"go depth 6",
	)

	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", lines)
	}

	want := "score mate 5 pv a3a7 f8g8 h4h1 g8f8 h1h8"
	if !strings.HasSuffix(lines[0], want) {
		t.Errorf("info line %q does not end with %q", lines[0], want)
	}

	if lines[1] != "bestmove a3a7" {
		t.Errorf("got %q, want bestmove a3a7", lines[1])
	}
}

func TestGoAcceptsClockFlags(t *testing.T) {
	lines := session(
		t,
		"position startpos",
		"go wtime 300000 btime 300000 winc 0 binc 0",
	)

	if len(lines) != 2 || !strings.HasPrefix(lines[1], "bestmove ") {
		t.Errorf("clock flags should fall back to a depth search, got %q", lines)
	}
}

func TestUciNewGameResets(t *testing.T) {
	lines := session(
		t,
		"position startpos moves e2e4",
		"ucinewgame",
		"d",
	)

	output := strings.Join(lines, "\n")
	if !strings.Contains(output, "2 │ P  P  P  P  P  P  P  P │ 2") {
		t.Errorf("expected the start position after ucinewgame:\n%s", output)
	}
}

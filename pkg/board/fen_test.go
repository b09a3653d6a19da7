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

package board_test

import (
	"strings"
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"rnbq1rk1/ppp1bppp/4pn2/3p2B1/2PP4/2N2N2/PP2PPPP/R2QKB1R w KQ - 6 6",
		"rnbqkbnr/ppp2ppp/8/2Ppp3/8/8/PP1PPPPP/RNBQKBNR w KQkq d6 0 3",
		"rnbqkbnr/pp1ppppp/8/8/2pPP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
		"rn3rk1/pbp1qpp1/1p5p/3p4/3P4/3BPN2/PP3PPP/R2Q1RK1 b - - 3 12",
		"5k2/8/8/8/7R/R7/8/4K3 w - - 0 1",
		"8/P7/8/8/8/8/8/4k2K w - - 0 1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			b, err := board.FromFEN(test)
			if err != nil {
				t.Fatal(err)
			}

			if got := b.FEN(); got != test {
				t.Errorf("test %d: wrong fen\n%s\n%s", n, test, got)
			}
		})
	}
}

func TestFromFENLoadsPieces(t *testing.T) {
	b, err := board.FromFEN("8/1p2k3/8/8/1R2K3/8/1p6/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if b.Turn != piece.White {
		t.Errorf("got turn %s, want w", b.Turn)
	}

	assertPiece(t, b, square.B4, piece.White, piece.Rook)
	assertPiece(t, b, square.E4, piece.White, piece.King)
	assertPiece(t, b, square.E7, piece.Black, piece.King)
	assertPiece(t, b, square.B2, piece.Black, piece.Pawn)
	assertPiece(t, b, square.B7, piece.Black, piece.Pawn)
}

func TestFromFENErrors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		message string
	}{
		{
			"not enough parts",
			"a b",
			"the fen must have 6 parts",
		},
		{
			"unknown piece",
			"xnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			"unknown piece char",
		},
		{
			"short rank",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPP2/RNBQKBN w KQkq - 0 1",
			"squares",
		},
		{
			"missing rank",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
			"ranks",
		},
		{
			"invalid color",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
			"unable to parse \"x\" into a color",
		},
		{
			"invalid castling",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1",
			"castling",
		},
		{
			"invalid en passant",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq x9 0 1",
			"file",
		},
		{
			"invalid clock",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
			"half move clock",
		},
		{
			"invalid move number",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x",
			"full move number",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := board.FromFEN(test.fen)
			if err == nil {
				t.Fatal("expected an error")
			}

			if !strings.Contains(err.Error(), test.message) {
				t.Errorf("error %q does not mention %q", err, test.message)
			}
		})
	}
}

func assertPiece(t *testing.T, b *board.Board, s square.Square, c piece.Color, kind piece.Type) {
	t.Helper()

	color, got, ok := b.PieceAt(s)
	if !ok {
		t.Errorf("expected a piece on %s", s)
		return
	}

	if color != c || got != kind {
		t.Errorf("piece at %s: got %s %s, want %s %s", s, color.Name(), got, c.Name(), kind)
	}
}

func assertEmpty(t *testing.T, b *board.Board, s square.Square) {
	t.Helper()

	if _, kind, ok := b.PieceAt(s); ok {
		t.Errorf("expected %s to be empty, found %s", s, kind)
	}
}

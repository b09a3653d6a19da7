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

package tt_test

import (
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
	"github.com/AdeAttwood/Ceir/pkg/search/tt"
)

func TestStoreAndProbe(t *testing.T) {
	table := tt.NewTable()

	if _, ok := table.Probe(42); ok {
		t.Error("an empty table should not report hits")
	}

	entry := tt.Entry{Depth: 3, Value: 120, Move: move.Null, Bound: tt.Exact, Seen: 1}
	table.Store(42, entry)

	got, ok := table.Probe(42)
	if !ok {
		t.Fatal("expected a hit after storing")
	}

	if got.Depth != 3 || got.Value != 120 || got.Bound != tt.Exact {
		t.Errorf("probe returned %+v", got)
	}
}

func TestStoreMergesAndCounts(t *testing.T) {
	table := tt.NewTable()

	table.Store(7, tt.Entry{Depth: 2, Value: 10, Bound: tt.UpperBound, Seen: 1})
	table.Store(7, tt.Entry{Depth: 4, Value: -30, Bound: tt.Exact, Seen: 1})

	got, _ := table.Probe(7)
	if got.Depth != 4 || got.Value != -30 || got.Bound != tt.Exact {
		t.Errorf("the second store should overwrite the fields, got %+v", got)
	}

	if got.Seen != 2 {
		t.Errorf("got seen count %d, want 2", got.Seen)
	}
}

func TestCleanEvictsStaleEntries(t *testing.T) {
	table := tt.NewTable()

	for i := 0; i < 3; i++ {
		table.Store(1, tt.Entry{Depth: 1, Seen: 1})
	}
	table.Store(2, tt.Entry{Depth: 1, Seen: 1})

	table.Clean()

	if _, ok := table.Probe(1); ok {
		t.Error("an entry seen three times should be evicted")
	}

	if _, ok := table.Probe(2); !ok {
		t.Error("an entry seen once should survive")
	}
}

func TestClear(t *testing.T) {
	table := tt.NewTable()
	table.Store(1, tt.Entry{Seen: 1})

	table.Clear()

	if table.Len() != 0 {
		t.Errorf("got %d entries after clear, want 0", table.Len())
	}
}

func TestPVWalk(t *testing.T) {
	b := board.FromStartPosition()
	table := tt.NewTable()

	// store a two move line by hand
	first := *b
	e2e4 := move.New(piece.Pawn, square.E2, square.E4)
	table.Store(first.Hash(), tt.Entry{Depth: 2, Move: e2e4, Seen: 1})

	second := first
	second.MakeMove(e2e4)
	e7e5 := move.New(piece.Pawn, square.E7, square.E5)
	table.Store(second.Hash(), tt.Entry{Depth: 1, Move: e7e5, Seen: 1})

	pv := table.PV(*b)
	if len(pv) != 2 || pv[0].String() != "e2e4" || pv[1].String() != "e7e5" {
		t.Errorf("got pv %v, want [e2e4 e7e5]", pv)
	}
}

func TestPVWalkStopsOnCycles(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	// a rook shuffle which repeats positions forever
	shuffle := map[string]move.Move{
		"a1": move.New(piece.Rook, square.A1, square.B1),
		"b1": move.New(piece.Rook, square.B1, square.A1),
		"e8": move.New(piece.King, square.E8, square.D8),
		"d8": move.New(piece.King, square.D8, square.E8),
	}

	table := tt.NewTable()
	position := *b
	for i := 0; i < 8; i++ {
		var m move.Move
		if position.Turn == piece.White {
			if _, _, ok := position.PieceAt(square.A1); ok {
				m = shuffle["a1"]
			} else {
				m = shuffle["b1"]
			}
		} else {
			if _, _, ok := position.PieceAt(square.E8); ok {
				m = shuffle["e8"]
			} else {
				m = shuffle["d8"]
			}
		}

		table.Store(position.Hash(), tt.Entry{Depth: 1, Move: m, Seen: 1})
		position.MakeMove(m)
	}

	pv := table.PV(*b)
	if len(pv) != 1000 {
		t.Errorf("got a pv of %d moves, want the 1000 move cycle guard", len(pv))
	}
}

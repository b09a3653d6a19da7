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

// Package search implements a fixed depth negamax search with alpha
// beta pruning, a quiescence extension and a transposition table.
package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/search/tt"
)

// score window and mate constants, in centipawns
const (
	MaxPositive = 500000
	MaxNegative = -500000

	// MateScore is the base score of a checkmate; the distance to the
	// mate in plies is subtracted so nearer mates score higher.
	MateScore = 400000
)

// Search is a single fixed depth search of one root position. The
// transposition table is owned by the engine session and borrowed by
// the search for its duration; it must never be shared by two
// searches running at once.
type Search struct {
	writer io.Writer
	table  *tt.Table

	root     board.Board
	maxDepth int

	nodes int
}

// New creates a search of the given position to the given depth. All
// engine output is written to the given writer.
func New(writer io.Writer, table *tt.Table, root board.Board, depth int) *Search {
	return &Search{
		writer:   writer,
		table:    table,
		root:     root,
		maxDepth: depth,
	}
}

// Run searches the root position and reports an info line followed by
// a bestmove line through the search's writer. A position with no
// legal moves produces no output.
func (s *Search) Run() {
	rootBoard := s.root
	s.negamax(&rootBoard, s.maxDepth, MaxNegative, MaxPositive)

	pv := s.table.PV(s.root)
	if len(pv) == 0 {
		return
	}

	entry, ok := s.table.Probe(s.root.Hash())
	if !ok {
		return
	}

	uci := make([]string, len(pv))
	for i, m := range pv {
		uci[i] = m.String()
	}

	unit, value := Score(entry.Value)

	fmt.Fprintf(
		s.writer, "info depth %d nodes %d score %s %d pv %s\n",
		len(pv), s.nodes, unit, value, strings.Join(uci, " "),
	)
	fmt.Fprintf(s.writer, "bestmove %s\n", pv[0])
}

// Result returns the best move and value found by a completed search.
// The boolean is false when the root position had no legal moves.
func (s *Search) Result() (move.Move, int, bool) {
	entry, ok := s.table.Probe(s.root.Hash())
	if !ok || entry.Move.IsNull() {
		return move.Null, 0, false
	}

	return entry.Move, entry.Value, true
}

// Nodes returns the number of nodes visited by the search.
func (s *Search) Nodes() int {
	return s.nodes
}

// Score splits a search value into its UCI score unit and magnitude.
// Values within 100 of the mate score are reported in plies to mate,
// everything else in centipawns.
func Score(value int) (string, int) {
	switch {
	case value >= MateScore-100:
		return "mate", MateScore - value
	case value <= -(MateScore - 100):
		return "mate", -(MateScore + value)
	default:
		return "cp", value
	}
}

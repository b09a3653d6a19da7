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

// Package tt implements a transposition table which caches results
// from previous searches of a position, keyed by the position's
// Zobrist hash.
// https://www.chessprogramming.org/Transposition_Table
package tt

import (
	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/zobrist"
)

// Bound describes how an entry's value relates to the exact score of
// its position.
type Bound uint8

// constants representing the entry bound types
const (
	// Exact means the value is the position's exact score.
	Exact Bound = iota

	// LowerBound means the search failed high, so the exact score is
	// at least the value.
	LowerBound

	// UpperBound means the search failed low, so the exact score is
	// at most the value.
	UpperBound
)

// Entry is a single transposition table record.
type Entry struct {
	// Depth the position was searched to when the value was recorded.
	Depth int

	// Value of the position within the search window.
	Value int

	// Move is the best move found, or move.Null when the search
	// completed without one.
	Move move.Move

	// Bound describes the quality of Value.
	Bound Bound

	// Seen counts how many times this key has been stored. Entries
	// that have been re-verified many times are stale survivors of
	// previous root positions and are shed between searches.
	Seen int
}

// Table is a transposition table. It is owned by the engine session
// and borrowed by one search at a time.
type Table struct {
	entries map[zobrist.Key]*Entry
}

// NewTable creates an empty transposition table.
func NewTable() *Table {
	return &Table{entries: make(map[zobrist.Key]*Entry)}
}

// Store records the given entry under the given key. If the key is
// already present its fields are overwritten and its seen counter is
// bumped, so repeatedly reached entries age towards eviction.
func (t *Table) Store(key zobrist.Key, entry Entry) {
	if found, ok := t.entries[key]; ok {
		found.Depth = entry.Depth
		found.Value = entry.Value
		found.Move = entry.Move
		found.Bound = entry.Bound
		found.Seen += entry.Seen
		return
	}

	stored := entry
	t.entries[key] = &stored
}

// Probe fetches the entry stored under the given key.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	if found, ok := t.entries[key]; ok {
		return *found, true
	}

	return Entry{}, false
}

// Clean evicts entries which have been stored three or more times.
// It is run between top level searches as an aging policy.
func (t *Table) Clean() {
	for key, entry := range t.entries {
		if entry.Seen >= 3 {
			delete(t.entries, key)
		}
	}
}

// Clear drops every entry in the table.
func (t *Table) Clear() {
	t.entries = make(map[zobrist.Key]*Entry)
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// PV reconstructs the principal variation from the given position by
// walking the table's best moves. The walk stops when a position has
// no entry or no best move, or after 1000 moves in case the table
// contains a cycle.
func (t *Table) PV(b board.Board) []move.Move {
	var pv []move.Move

	for {
		entry, ok := t.Probe(b.Hash())
		if !ok || entry.Move.IsNull() {
			break
		}

		pv = append(pv, entry.Move)
		b.MakeMove(entry.Move)

		if len(pv) >= 1000 {
			break
		}
	}

	return pv
}

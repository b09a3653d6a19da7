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

// Package book reads and writes Polyglot opening books. A book is a
// sequence of 16 byte big endian records sorted by position key; the
// keys are the same Zobrist keys the board computes, so a position
// can be probed directly with its hash. The board hashes the en
// passant file whenever there is an en passant square, while standard
// Polyglot keys include it only when a pawn can make the capture, so
// books written by other tools miss such positions.
package book

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
	"github.com/AdeAttwood/Ceir/pkg/board/zobrist"
)

// EntrySize is the size in bytes of a book record on disk.
const EntrySize = 16

// Entry is a single book record.
type Entry struct {
	// Key is the Zobrist hash of the position the entry belongs to.
	Key uint64

	// Move packs the book move as (promotion<<12) | (from<<6) | to,
	// with squares counted a1, b1, ..., h8 and promotion kinds
	// numbered none, knight, bishop, rook, queen.
	Move uint16

	// Weight is the entry's relative playing frequency.
	Weight uint16

	// Learn carries unused learning data.
	Learn uint32
}

// promotion kind codes used inside the packed move
var promotionCodes = [5]piece.Type{
	piece.NoType, piece.Knight, piece.Bishop, piece.Rook, piece.Queen,
}

// polySquare converts a board square into the book's square number.
func polySquare(s square.Square) uint16 {
	return uint16(int(s.File()) + 8*int(s.Rank()))
}

// fromPolySquare converts a book square number into a board square.
func fromPolySquare(sq uint16) square.Square {
	return square.From(square.File(sq&7), square.Rank(sq>>3))
}

// EncodeMove packs the given move into the book's move format.
func EncodeMove(m move.Move) uint16 {
	encoded := polySquare(m.From)<<6 | polySquare(m.To)

	for code, kind := range promotionCodes {
		if kind != piece.NoType && kind == m.Promotion {
			encoded |= uint16(code) << 12
		}
	}

	return encoded
}

// From returns the source square of the entry's move.
func (e Entry) From() square.Square {
	return fromPolySquare(e.Move >> 6 & 63)
}

// To returns the destination square of the entry's move.
func (e Entry) To() square.Square {
	return fromPolySquare(e.Move & 63)
}

// Promotion returns the promotion kind of the entry's move, or
// piece.NoType.
func (e Entry) Promotion() piece.Type {
	code := e.Move >> 12 & 7
	if int(code) >= len(promotionCodes) {
		return piece.NoType
	}

	return promotionCodes[code]
}

// UCI returns the entry's move in UCI notation. Books encode castling
// as the king capturing its own rook, which is rewritten to the
// standard king move here.
func (e Entry) UCI() string {
	from, to := e.From(), e.To()

	switch {
	case from == square.E1 && to == square.H1:
		to = square.G1
	case from == square.E1 && to == square.A1:
		to = square.C1
	case from == square.E8 && to == square.H8:
		to = square.G8
	case from == square.E8 && to == square.A8:
		to = square.C8
	}

	uci := from.String() + to.String()
	if promotion := e.Promotion(); promotion != piece.NoType {
		uci += promotion.String()
	}

	return uci
}

// Book is an opening book held in memory, sorted by key.
type Book struct {
	entries []Entry
}

// Load reads a book from the file at the given path.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return New(f)
}

// New reads a book from the given reader.
func New(r io.Reader) (*Book, error) {
	var entries []Entry
	record := make([]byte, EntrySize)

	for {
		if _, err := io.ReadFull(r, record); err != nil {
			if err == io.EOF {
				break
			}

			return nil, fmt.Errorf("book: short record: %w", err)
		}

		entries = append(entries, Entry{
			Key:    binary.BigEndian.Uint64(record[0:8]),
			Move:   binary.BigEndian.Uint16(record[8:10]),
			Weight: binary.BigEndian.Uint16(record[10:12]),
			Learn:  binary.BigEndian.Uint32(record[12:16]),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return &Book{entries: entries}, nil
}

// Find returns every entry recorded for the given position key.
func (b *Book) Find(key zobrist.Key) []Entry {
	first := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Key >= uint64(key)
	})

	last := first
	for last < len(b.entries) && b.entries[last].Key == uint64(key) {
		last++
	}

	return b.entries[first:last]
}

// Best returns the heaviest entry recorded for the given position
// key. The boolean is false when the position is not in the book.
func (b *Book) Best(key zobrist.Key) (Entry, bool) {
	entries := b.Find(key)
	if len(entries) == 0 {
		return Entry{}, false
	}

	best := entries[0]
	for _, entry := range entries[1:] {
		if entry.Weight > best.Weight {
			best = entry
		}
	}

	return best, true
}

// Len returns the number of entries in the book.
func (b *Book) Len() int {
	return len(b.entries)
}

// Write serializes the given entries, sorted by key, in the book's
// on disk format.
func Write(w io.Writer, entries []Entry) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	record := make([]byte, EntrySize)
	for _, entry := range sorted {
		binary.BigEndian.PutUint64(record[0:8], entry.Key)
		binary.BigEndian.PutUint16(record[8:10], entry.Move)
		binary.BigEndian.PutUint16(record[10:12], entry.Weight)
		binary.BigEndian.PutUint32(record[12:16], entry.Learn)

		if _, err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

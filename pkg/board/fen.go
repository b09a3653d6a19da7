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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AdeAttwood/Ceir/pkg/board/castling"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// StartFEN is the fen string of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a Forsyth-Edwards Notation string into a Board. A
// parse failure is reported without a partially populated board.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("the fen must have 6 parts")
	}

	board := Board{EnPassant: square.None}

	// piece placement, rank 8 first
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != square.RankN {
		return nil, fmt.Errorf("the fen must have 8 ranks, found %d", len(ranks))
	}

	for i, rankData := range ranks {
		rank := square.Rank8 - square.Rank(i)
		file := square.FileA

		for _, id := range rankData {
			if file > square.FileH {
				return nil, fmt.Errorf("rank %s in the fen has more than 8 squares", rank)
			}

			if id >= '1' && id <= '8' {
				file += square.File(id - '0')
				continue
			}

			t := piece.TypeFrom(string(id))
			if t == piece.NoType {
				return nil, fmt.Errorf("unknown piece char %q", id)
			}

			c := piece.Black
			if id >= 'A' && id <= 'Z' {
				c = piece.White
			}

			board.Pieces[c][t].Set(square.From(file, rank))
			file++
		}

		if file != square.FileN {
			return nil, fmt.Errorf("rank %s in the fen has %d squares, want 8", rank, file)
		}
	}

	turn, err := piece.ColorFrom(parts[1])
	if err != nil {
		return nil, err
	}
	board.Turn = turn

	rights, err := castling.New(parts[2])
	if err != nil {
		return nil, err
	}
	board.Rights = rights

	enPassant, err := square.New(parts[3])
	if err != nil {
		return nil, err
	}
	board.EnPassant = enPassant

	board.DrawClock, err = strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("invalid half move clock %q", parts[4])
	}

	board.FullMoves, err = strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("invalid full move number %q", parts[5])
	}

	return &board, nil
}

// FromStartPosition creates a Board set up with the standard starting
// position.
func FromStartPosition() *Board {
	board, err := FromFEN(StartFEN)
	if err != nil {
		panic(err)
	}

	return board
}

// FEN returns the fen string of the current position.
func (b *Board) FEN() string {
	var placement []string

	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		var rankData string
		empty := 0

		for file := square.FileA; file <= square.FileH; file++ {
			c, t, ok := b.PieceAt(square.From(file, rank))
			if !ok {
				empty++
				continue
			}

			if empty > 0 {
				rankData += strconv.Itoa(empty)
				empty = 0
			}

			rankData += t.Letter(c)
		}

		if empty > 0 {
			rankData += strconv.Itoa(empty)
		}

		placement = append(placement, rankData)
	}

	return strings.Join([]string{
		strings.Join(placement, "/"),
		b.Turn.String(),
		b.Rights.String(),
		b.EnPassant.String(),
		strconv.Itoa(b.DrawClock),
		strconv.Itoa(b.FullMoves),
	}, " ")
}

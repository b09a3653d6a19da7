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

// ceir-book builds a Polyglot opening book from a corpus of PGN
// games, keyed with the engine's position hashes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mitchellh/go-wordwrap"
	"github.com/notnil/chess"
	"github.com/schollz/progressbar/v3"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
	"github.com/AdeAttwood/Ceir/pkg/book"
)

const usage = `usage: ceir-book [flags] <games.pgn> [<games.pgn> ...]

Builds a Polyglot opening book from the given PGN files. Positions
within the ply budget are recorded with the move played from them,
weighted by how well that move scored for the side that played it:
two for the winner of the game, one for either side of a draw. Moves
of the losing side and moves from games without a result are not
recorded. The resulting book can be loaded into the engine with
"setoption name Book value <path>".`

func main() {
	out := flag.String("out", "book.bin", "path of the book to write")
	plies := flag.Int("plies", 16, "number of plies to record from each game")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, wordwrap.WrapString(usage, 76))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Args(), *out, *plies); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(paths []string, out string, plies int) error {
	var games []*chess.Game

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			games = append(games, scanner.Next())
		}

		f.Close()
	}

	// weights[key][packed move]
	weights := make(map[uint64]map[uint16]int)
	bar := progressbar.Default(int64(len(games)), "building")

	for _, game := range games {
		if err := record(weights, game, plies); err != nil {
			return err
		}

		bar.Add(1)
	}

	var entries []book.Entry
	for key, moves := range weights {
		for packed, weight := range moves {
			if weight == 0 {
				continue
			}

			entries = append(entries, book.Entry{
				Key:    key,
				Move:   packed,
				Weight: clampWeight(weight),
			})
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := book.Write(f, entries); err != nil {
		return err
	}

	fmt.Printf("wrote %d entries from %d games to %s\n", len(entries), len(games), out)
	return nil
}

// record replays one game and accumulates the weight of every book
// move it contains.
func record(weights map[uint64]map[uint16]int, game *chess.Game, plies int) error {
	result := "*"
	if tag := game.GetTagPair("Result"); tag != nil {
		result = tag.Value
	}

	position := board.FromStartPosition()

	for i, gameMove := range game.Moves() {
		if i >= plies {
			break
		}

		played, err := resolve(position, gameMove)
		if err != nil {
			return err
		}

		weight := weightFor(position.Turn, result)
		if weight > 0 {
			key := uint64(position.Hash())

			if weights[key] == nil {
				weights[key] = make(map[uint16]int)
			}

			weights[key][book.EncodeMove(played)] += weight
		}

		position.MakeMove(played)
	}

	return nil
}

// weightFor scores a played move for the book: two points for a move
// played by the eventual winner, one for a draw.
func weightFor(mover piece.Color, result string) int {
	switch result {
	case "1-0":
		if mover == piece.White {
			return 2
		}
		return 0
	case "0-1":
		if mover == piece.Black {
			return 2
		}
		return 0
	case "1/2-1/2":
		return 1
	default:
		return 0
	}
}

// clampWeight bounds an accumulated weight to the book record's
// sixteen bits.
func clampWeight(weight int) uint16 {
	if weight > 0xffff {
		return 0xffff
	}

	return uint16(weight)
}

// resolve matches a notnil/chess move against the engine's legal
// moves for the current position.
func resolve(position *board.Board, gameMove *chess.Move) (move.Move, error) {
	from := convertSquare(gameMove.S1())
	to := convertSquare(gameMove.S2())
	promotion := convertPromo(gameMove.Promo())

	for _, m := range position.LegalMoves() {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}

	return move.Null, fmt.Errorf("move %s%s is not legal in %q", from, to, position.FEN())
}

// convertSquare maps a notnil/chess square, which counts a1, b1, ...,
// h8, onto the engine's square encoding.
func convertSquare(s chess.Square) square.Square {
	return square.From(square.File(int(s)%8), square.Rank(int(s)/8))
}

// convertPromo maps a notnil/chess promotion kind onto the engine's.
func convertPromo(p chess.PieceType) piece.Type {
	switch p {
	case chess.Queen:
		return piece.Queen
	case chess.Rook:
		return piece.Rook
	case chess.Bishop:
		return piece.Bishop
	case chess.Knight:
		return piece.Knight
	default:
		return piece.NoType
	}
}

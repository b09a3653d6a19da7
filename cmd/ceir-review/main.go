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

// ceir-review replays the games of a PGN file through the engine and
// reports how much evaluation every played move gave away, with an
// HTML chart of the evaluation curve.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
	"github.com/notnil/chess"
	"github.com/schollz/progressbar/v3"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
	"github.com/AdeAttwood/Ceir/pkg/search"
	"github.com/AdeAttwood/Ceir/pkg/search/tt"
)

const usage = `usage: ceir-review [flags] <game.pgn>

Replays the first game of the given PGN file through the engine,
searching every position to the configured depth. Each played move is
compared against the engine's preferred move and the evaluation it
gave away is reported, with blunders and mistakes highlighted. The
evaluation curve of the whole game is rendered to an HTML chart.`

func main() {
	depth := flag.Int("depth", 4, "plies to search each position to")
	out := flag.String("out", "review.html", "path of the evaluation chart")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, wordwrap.WrapString(usage, 76))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *depth, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// moveReview is the engine's verdict on a single played move.
type moveReview struct {
	number string // move number with side marker, like "12." or "12..."
	played string // the move in UCI notation
	loss   int    // centipawns given away against the engine move
	eval   int    // evaluation after the move, from white's side
	best   string // the engine's preferred move
}

func run(path string, depth int, out string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := chess.NewScanner(f)
	if !scanner.Scan() {
		return fmt.Errorf("%s: no games found", path)
	}

	game := scanner.Next()
	moves := game.Moves()

	position := board.FromStartPosition()
	table := tt.NewTable()

	reviews := make([]moveReview, 0, len(moves))
	bar := progressbar.Default(int64(len(moves)), "reviewing")

	for i, gameMove := range moves {
		mover := position.Turn

		played, err := resolve(position, gameMove)
		if err != nil {
			return err
		}

		// what the engine would have played here
		engineSearch := search.New(io.Discard, table, *position, depth)
		engineSearch.Run()
		bestMove, bestValue, ok := engineSearch.Result()
		table.Clean()

		position.MakeMove(played)

		// the played move's value is the negation of the reply value
		replySearch := search.New(io.Discard, table, *position, depth)
		replySearch.Run()
		_, replyValue, replied := replySearch.Result()
		table.Clean()

		playedValue := -replyValue
		if !replied {
			// no reply exists, score the final position directly
			playedValue = -finalValue(position, depth)
		}

		review := moveReview{
			number: moveNumber(i),
			played: played.String(),
			eval:   whiteValue(mover, playedValue),
		}

		if ok {
			review.best = bestMove.String()
			review.loss = bestValue - playedValue
		}

		reviews = append(reviews, review)
		bar.Add(1)
	}

	report(reviews)

	return chart(reviews, out)
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

// finalValue scores a position for which the reply search reported no
// best move. Mate scores -MateScore and stalemate scores zero.
func finalValue(position *board.Board, depth int) int {
	if len(position.LegalMoves()) > 0 {
		// legal moves exist, so the position is searched again with an
		// empty table and that search's value is used
		s := search.New(io.Discard, tt.NewTable(), *position, depth)
		s.Run()
		_, value, _ := s.Result()
		return value
	}

	if position.InCheck(position.Turn) {
		return -search.MateScore
	}

	return 0
}

// report prints one verdict line per reviewed move.
func report(reviews []moveReview) {
	for _, review := range reviews {
		verdict := "[green]ok"
		switch {
		case review.loss >= 300:
			verdict = "[red]blunder"
		case review.loss >= 100:
			verdict = "[yellow]mistake"
		case review.loss >= 50:
			verdict = "[cyan]inaccuracy"
		}

		colorstring.Printf(
			"%-6s %-7s %s[reset]  (lost %d, engine move %s, eval %d)\n",
			review.number, review.played, verdict, review.loss, review.best, review.eval,
		)
	}
}

// chart renders the white perspective evaluation curve to an HTML
// file.
func chart(reviews []moveReview, out string) error {
	names := make([]string, len(reviews))
	values := make([]opts.LineData, len(reviews))

	for i, review := range reviews {
		names[i] = review.number + review.played
		values[i] = opts.LineData{Value: review.eval}
	}

	plot := charts.NewLine()
	plot.SetXAxis(names).AddSeries("Evaluation", values)

	plotFile, err := os.Create(out)
	if err != nil {
		return err
	}
	defer plotFile.Close()

	return plot.Render(plotFile)
}

// moveNumber formats the move number of the i-th ply of a game.
func moveNumber(i int) string {
	if i%2 == 0 {
		return fmt.Sprintf("%d.", i/2+1)
	}

	return fmt.Sprintf("%d...", i/2+1)
}

// whiteValue converts a score from the mover's perspective to white's.
func whiteValue(mover piece.Color, value int) int {
	if mover == piece.Black {
		return -value
	}

	return value
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

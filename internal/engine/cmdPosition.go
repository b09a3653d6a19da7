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
	"errors"
	"fmt"
	"strings"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/board/piece"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
	"github.com/AdeAttwood/Ceir/pkg/uci/cmd"
	"github.com/AdeAttwood/Ceir/pkg/uci/flag"
)

// fenParts is the number of whitespace separated fields in a fen
// string, which the position command's fen flag collects.
const fenParts = 6

func newCmdPosition(engine *Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Button("startpos")
	schema.Array("fen", fenParts)
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(interaction cmd.Interaction) error {
			var position *board.Board
			var err error

			switch {
			case interaction.Values["startpos"].Set:
				position = board.FromStartPosition()
			case interaction.Values["fen"].Set:
				fen := interaction.Values["fen"].Value.([]string)
				position, err = board.FromFEN(strings.Join(fen, " "))
				if err != nil {
					return err
				}
			default:
				return errors.New("position: no startpos or fen option")
			}

			engine.board = position

			if moves := interaction.Values["moves"]; moves.Set {
				for _, id := range moves.Value.([]string) {
					m, err := engine.parseMove(id)
					if err != nil {
						// the remaining moves are not applied
						return err
					}

					engine.board.MakeMove(m)
				}
			}

			return nil
		},
		Flags: schema,
	}
}

// parseMove resolves an UCI move string like "e2e4" or "e7e8q"
// against the engine's current position.
func (e *Engine) parseMove(id string) (move.Move, error) {
	if len(id) != 4 && len(id) != 5 {
		return move.Null, fmt.Errorf("invalid move %q", id)
	}

	from, err := square.New(id[0:2])
	if err != nil {
		return move.Null, err
	}

	color, kind, ok := e.board.PieceAt(from)
	if !ok {
		return move.Null, fmt.Errorf("there is no piece on the source square of %s", id)
	}

	if color != e.board.Turn {
		return move.Null, fmt.Errorf("it is not %s's turn to move", color.Name())
	}

	to, err := square.New(id[2:4])
	if err != nil {
		return move.Null, err
	}

	m := move.New(kind, from, to)

	if captureColor, captureKind, ok := e.board.PieceAt(to); ok {
		if captureColor == e.board.Turn {
			return move.Null, errors.New("you can not capture your own piece")
		}

		m.Capture = captureKind
	}

	if len(id) == 5 {
		promotion := piece.TypeFrom(id[4:5])
		if promotion == piece.NoType || promotion == piece.King || promotion == piece.Pawn {
			return move.Null, fmt.Errorf("unrecognized promotion piece %q", id[4:5])
		}

		m.Promotion = promotion
	}

	return m, nil
}

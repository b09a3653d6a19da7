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
	"strconv"

	"github.com/AdeAttwood/Ceir/pkg/search"
	"github.com/AdeAttwood/Ceir/pkg/uci/cmd"
	"github.com/AdeAttwood/Ceir/pkg/uci/flag"
)

// defaultDepth is the depth searched when the go command gives none.
const defaultDepth = 4

func newCmdGo(engine *Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Single("depth")

	// clock flags are accepted for GUI compatibility but the engine
	// searches on a depth budget, not a time budget
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Single("movetime")
	schema.Single("nodes")
	schema.Button("infinite")

	return cmd.Command{
		Name: "go",
		Run: func(interaction cmd.Interaction) error {
			depth := defaultDepth
			if value := interaction.Values["depth"]; value.Set {
				parsed, err := strconv.Atoi(value.Value.(string))
				if err != nil {
					return err
				}

				depth = parsed
			}

			// answer from the opening book when it knows the position
			if engine.book != nil {
				if entry, ok := engine.book.Best(engine.board.Hash()); ok {
					interaction.Replyf("bestmove %s", entry.UCI())
					return nil
				}
			}

			search.New(interaction.Writer(), engine.table, *engine.board, depth).Run()

			// age out table entries left over from old root positions
			engine.table.Clean()

			return nil
		},
		Flags: schema,
	}
}

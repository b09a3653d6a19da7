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
	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/search/eval"
	"github.com/AdeAttwood/Ceir/pkg/uci/cmd"
)

// newCmdD implements the non standard d command, which prints the
// current position for debugging.
func newCmdD(engine *Engine) cmd.Command {
	return cmd.Command{
		Name: "d",
		Run: func(interaction cmd.Interaction) error {
			interaction.Reply(engine.board.String())
			interaction.Replyf("Eval: %d", eval.Of(engine.board))
			return nil
		},
	}
}

// newCmdUciNewGame implements ucinewgame, which resets the position
// to the starting one and drops every cached search result.
func newCmdUciNewGame(engine *Engine) cmd.Command {
	return cmd.Command{
		Name: "ucinewgame",
		Run: func(cmd.Interaction) error {
			engine.board = board.FromStartPosition()
			engine.table.Clear()
			return nil
		},
	}
}

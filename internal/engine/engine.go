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

// Package engine binds the chess core to the UCI client, one command
// handler per GUI command.
package engine

import (
	"io"

	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/book"
	"github.com/AdeAttwood/Ceir/pkg/search/tt"
	"github.com/AdeAttwood/Ceir/pkg/uci"
)

// NewClient creates an UCI client with all of the engine's commands
// installed, listening on stdin.
func NewClient() uci.Client {
	return newClient(uci.NewClient())
}

// NewClientFrom creates an UCI client speaking over the given
// streams. Tests drive the engine through this with in memory
// buffers.
func NewClientFrom(stdin io.Reader, stdout io.Writer) uci.Client {
	return newClient(uci.NewClientFrom(stdin, stdout))
}

func newClient(client uci.Client) uci.Client {
	engine := &Engine{
		board: board.FromStartPosition(),
		table: tt.NewTable(),
	}

	client.AddCommand(newCmdUci())
	client.AddCommand(newCmdD(engine))
	client.AddCommand(newCmdUciNewGame(engine))
	client.AddCommand(newCmdPosition(engine))
	client.AddCommand(newCmdGo(engine))
	client.AddCommand(newCmdSetOption(engine))

	return client
}

// Engine holds the session state shared by the UCI commands: the
// current position, the transposition table and the optional opening
// book.
type Engine struct {
	board *board.Board
	table *tt.Table
	book  *book.Book
}

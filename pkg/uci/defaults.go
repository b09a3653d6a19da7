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

package uci

import (
	"errors"

	"github.com/AdeAttwood/Ceir/pkg/uci/cmd"
)

// errQuit is reported by the quit command to stop the repl.
var errQuit = errors.New("uci: quit the repl")

// cmdIsReady implements the isready command, which the GUI uses as a
// synchronization ping.
var cmdIsReady = cmd.Command{
	Name: "isready",
	Run: func(interaction cmd.Interaction) error {
		_, err := interaction.Reply("readyok")
		return err
	},
}

// cmdQuit builds a command which stops the repl, under the given
// name. Both quit and stop terminate since the engine searches
// synchronously and a mid search stop has nothing to interrupt.
func cmdQuit(name string) cmd.Command {
	return cmd.Command{
		Name: name,
		Run: func(cmd.Interaction) error {
			return errQuit
		},
	}
}

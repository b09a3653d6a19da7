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

	"github.com/AdeAttwood/Ceir/pkg/book"
	"github.com/AdeAttwood/Ceir/pkg/uci/cmd"
	"github.com/AdeAttwood/Ceir/pkg/uci/flag"
)

func newCmdSetOption(engine *Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Single("name")
	schema.Variadic("value")

	return cmd.Command{
		Name: "setoption",
		Run: func(interaction cmd.Interaction) error {
			name := interaction.Values["name"]
			if !name.Set {
				return errors.New("setoption: missing option name")
			}

			var value string
			if values := interaction.Values["value"]; values.Set {
				value = strings.Join(values.Value.([]string), " ")
			}

			switch name.Value.(string) {
			case "Book":
				loaded, err := book.Load(value)
				if err != nil {
					return err
				}

				engine.book = loaded
				return nil

			default:
				return fmt.Errorf("setoption: unknown option %q", name.Value)
			}
		},
		Flags: schema,
	}
}

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

// Package cmd implements the schema of GUI to engine commands.
package cmd

import (
	"fmt"
	"io"

	"github.com/AdeAttwood/Ceir/pkg/uci/flag"
)

// NewSchema initializes a new command schema which replies on the
// given writer.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema contains the command set of a client.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add adds the given command to the schema.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by the name token that identifies it.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command represents the schema of a single GUI to engine command.
type Command struct {
	// Name is the token which identifies the command.
	Name string

	// Run is the work function of the command. It receives an
	// Interaction carrying the parsed flag values and the reply
	// writer.
	Run func(Interaction) error

	// Flags is the flag schema of the command; the arguments are
	// parsed against it before Run is called.
	Flags flag.Schema
}

// RunWith parses the given arguments against the command's flag
// schema and runs the command.
func (c Command) RunWith(args []string, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	return c.Run(Interaction{
		Command: c,
		Values:  values,
		stdout:  schema.replyWriter,
	})
}

// Interaction encapsulates a single invocation of a Command by the
// GUI.
type Interaction struct {
	// Command is the parent command being run.
	Command

	// Values are the values parsed for the command's flags.
	Values flag.Values

	stdout io.Writer
}

// Reply writes a reply line to the GUI. It is similar to fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a formatted reply line to the GUI. It is similar to
// fmt.Printf with a newline terminator.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}

// Writer returns the raw reply writer, for commands which stream
// output through another component.
func (i *Interaction) Writer() io.Writer {
	return i.stdout
}

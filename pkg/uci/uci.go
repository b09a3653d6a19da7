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

// Package uci implements a client for the Universal Chess Interface,
// the line based text protocol spoken between a chess engine and its
// GUI.
// https://www.chessprogramming.org/UCI
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AdeAttwood/Ceir/pkg/uci/cmd"
)

// NewClient creates a new Client listening on stdin, with the default
// isready, stop and quit commands installed.
func NewClient() Client {
	return NewClientFrom(os.Stdin, os.Stdout)
}

// NewClientFrom creates a new Client speaking over the given streams.
// Tests use this with in memory buffers to capture engine replies.
func NewClientFrom(stdin io.Reader, stdout io.Writer) Client {
	client := Client{
		stdin:  stdin,
		stdout: stdout,
	}

	client.commands = cmd.NewSchema(client.stdout)

	client.AddCommand(cmdIsReady)
	client.AddCommand(cmdQuit("quit"))
	client.AddCommand(cmdQuit("stop"))

	return client
}

// Client represents an UCI client.
type Client struct {
	stdin  io.Reader // GUI to engine commands
	stdout io.Writer // engine to GUI replies

	commands cmd.Schema
}

// AddCommand adds the given command to the client's schema.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs a repl which reads lines from the client's input stream
// and dispatches them against the command schema. Errors reported by
// commands are printed and the repl continues; it only stops on a
// quit command or when the input stream ends.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		prompt, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}

		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue
		}

		switch err := c.Run(args...); err {
		case nil:
			// continue the repl

		case errQuit:
			// the quit command asked the repl to stop
			return nil

		default:
			c.Println(err)
		}
	}
}

// Run finds the command named by the first argument and runs it with
// the rest. It returns any error reported by the command.
func (c *Client) Run(args ...string) error {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return command.RunWith(args, c.commands)
}

// Print acts as fmt.Print on the client's output stream.
func (c *Client) Print(a ...any) (int, error) {
	return fmt.Fprint(c.stdout, a...)
}

// Println acts as fmt.Println on the client's output stream.
func (c *Client) Println(a ...any) (int, error) {
	return fmt.Fprintln(c.stdout, a...)
}

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

// Package util contains helpers for the repository's build and test
// scripts.
package util

import (
	"os"
	"os/exec"
	"strings"
)

// RunNormal runs the given command with the standard input and output.
func RunNormal(args ...string) error {
	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// RunWithOutput runs the given command and returns its output.
func RunWithOutput(args ...string) (string, error) {
	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	out, err := cmd.Output()

	return strings.TrimSuffix(string(out), "\n"), err
}

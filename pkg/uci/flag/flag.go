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

// Package flag implements the flag schemas of UCI commands and the
// values parsed from them. UCI flags are bare words followed by zero
// or more arguments, like "depth 6" or "moves e2e4 e7e5".
package flag

import "fmt"

// NewSchema initializes an empty flag Schema.
func NewSchema() Schema {
	return Schema{collectors: make(map[string]collector)}
}

// Schema describes the flags a single command accepts.
type Schema struct {
	collectors map[string]collector
}

// collector consumes a flag's arguments from the front of the given
// list, returning the flag's value and the remaining arguments.
type collector func(args []string) (any, []string, error)

// Button adds a flag without arguments to the schema. A button flag is
// either present or absent and its value is always nil.
func (s Schema) Button(name string) {
	s.collectors[name] = func(args []string) (any, []string, error) {
		return nil, args, nil
	}
}

// Single adds a flag with exactly one argument to the schema. Its
// value is a string.
func (s Schema) Single(name string) {
	s.collectors[name] = func(args []string) (any, []string, error) {
		if len(args) == 0 {
			return nil, nil, fmt.Errorf("flag %s: expected an argument", name)
		}

		return args[0], args[1:], nil
	}
}

// Array adds a flag with a fixed number of arguments to the schema.
// Its value is a []string of that length.
func (s Schema) Array(name string, size int) {
	s.collectors[name] = func(args []string) (any, []string, error) {
		if len(args) < size {
			return nil, nil, fmt.Errorf(
				"flag %s: expected %d args, collected %d args", name, size, len(args),
			)
		}

		return args[:size], args[size:], nil
	}
}

// Variadic adds a flag which consumes every remaining argument to the
// schema. Its value is a []string.
func (s Schema) Variadic(name string) {
	s.collectors[name] = func(args []string) (any, []string, error) {
		return args, nil, nil
	}
}

// Parse matches the given argument list against the schema and
// returns the collected flag values.
func (s Schema) Parse(args []string) (Values, error) {
	values := make(Values)

	if s.collectors == nil {
		if len(args) > 0 {
			return values, fmt.Errorf("parse flags: unknown flag %q", args[0])
		}

		return values, nil
	}

	for len(args) > 0 {
		name := args[0]

		collect, ok := s.collectors[name]
		if !ok {
			return values, fmt.Errorf("parse flags: unknown flag %q", name)
		}

		if values[name].Set {
			return values, fmt.Errorf("parse flags: flag %q already set", name)
		}

		value, rest, err := collect(args[1:])
		if err != nil {
			return values, err
		}

		args = rest
		values[name] = Value{Set: true, Value: value}
	}

	return values, nil
}

// Values maps each flag's name to the value collected for it.
type Values map[string]Value

// Value is the parsed value of a single flag.
type Value struct {
	// Set reports whether the flag appeared at all.
	Set bool

	// Value is the collected value; its type depends on the flag
	// kind it was declared with.
	Value any
}

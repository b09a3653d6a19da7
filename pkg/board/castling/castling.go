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

// Package castling implements a compact representation of the castling
// rights of both players.
package castling

import "fmt"

// Rights is a bitset of the four castling rights.
type Rights uint8

// constants representing the individual castling rights
const (
	WhiteK Rights = 1 << iota
	WhiteQ
	BlackK
	BlackQ

	None Rights = 0
	All         = WhiteK | WhiteQ | BlackK | BlackQ
)

// New parses the castling field of a FEN string into a Rights set.
func New(fen string) (Rights, error) {
	var rights Rights

	for _, id := range fen {
		switch id {
		case 'K':
			rights |= WhiteK
		case 'Q':
			rights |= WhiteQ
		case 'k':
			rights |= BlackK
		case 'q':
			rights |= BlackQ
		case '-':
		default:
			return None, fmt.Errorf("unexpected %q in castling rights", id)
		}
	}

	return rights, nil
}

// Has reports whether every right in the given set is present.
func (r Rights) Has(right Rights) bool {
	return r&right == right
}

// Unset removes the given rights from the set.
func (r *Rights) Unset(right Rights) {
	*r &^= right
}

// String converts the rights back into their FEN representation.
func (r Rights) String() string {
	if r == None {
		return "-"
	}

	var str string
	if r.Has(WhiteK) {
		str += "K"
	}
	if r.Has(WhiteQ) {
		str += "Q"
	}
	if r.Has(BlackK) {
		str += "k"
	}
	if r.Has(BlackQ) {
		str += "q"
	}

	return str
}

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

package attacks

import "github.com/AdeAttwood/Ceir/pkg/board/bitboard"

// King returns the squares attacked by the king on the given bitboard.
// https://www.chessprogramming.org/King_Pattern
func King(b bitboard.Board) bitboard.Board {
	return b.North() | b.South() | b.East() | b.West() |
		b.NorthEast() | b.NorthWest() | b.SouthEast() | b.SouthWest()
}

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

package board

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It is used to validate move generation against the published
// node counts.
// https://www.chessprogramming.org/Perft
func (b *Board) Perft(depth int) int {
	if depth <= 0 {
		return 1
	}

	nodes := 0

	for _, m := range b.LegalMoves() {
		child := *b
		child.MakeMove(m)
		nodes += child.Perft(depth - 1)
	}

	return nodes
}

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

package search

import (
	"sort"

	"github.com/AdeAttwood/Ceir/pkg/board/move"
)

// mvvLva scores captures by most valuable victim, least valuable
// attacker. It is indexed [victim][attacker] with the piece kind
// constants; the king victim row is zero since a king can never
// legally be captured.
// https://www.chessprogramming.org/MVV-LVA
var mvvLva = [6][6]int{
	{0, 0, 0, 0, 0, 0},       // victim K, attacker K, Q, R, B, N, P
	{50, 51, 52, 53, 54, 55}, // victim Q, attacker K, Q, R, B, N, P
	{40, 41, 42, 43, 44, 45}, // victim R, attacker K, Q, R, B, N, P
	{30, 31, 32, 33, 34, 35}, // victim B, attacker K, Q, R, B, N, P
	{20, 21, 22, 23, 24, 25}, // victim N, attacker K, Q, R, B, N, P
	{10, 11, 12, 13, 14, 15}, // victim P, attacker K, Q, R, B, N, P
}

// sortKey returns the ordering key of a move. Captures get negative
// keys so they sort before the quiet moves, whose key is zero.
func sortKey(m move.Move) int {
	if !m.IsCapture() {
		return 0
	}

	return -mvvLva[m.Capture][m.Piece]
}

// sortMoves orders the given move list for searching, captures first
// in MVV-LVA order. The sort is stable so the move generator's
// deterministic order is kept within equal keys.
func sortMoves(moves []move.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return sortKey(moves[i]) < sortKey(moves[j])
	})
}

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
	"github.com/AdeAttwood/Ceir/pkg/board"
	"github.com/AdeAttwood/Ceir/pkg/search/eval"
)

// quiesce keeps searching capture moves past the nominal depth limit
// so a position is never evaluated in the middle of an exchange.
// https://www.chessprogramming.org/Quiescence_Search
func (s *Search) quiesce(b *board.Board, alpha, beta int) int {
	standPat := eval.Of(b)

	if standPat >= beta {
		return beta
	}

	if standPat > alpha {
		alpha = standPat
	}

	us := b.Turn

	moves := b.PseudoMoves()
	sortMoves(moves)

	for _, m := range moves {
		if !m.IsCapture() {
			// captures sort to the front, so the first quiet move
			// means there is nothing tactical left to explore
			return alpha
		}

		child := *b
		child.MakeMove(m)

		if child.InCheck(us) {
			continue
		}

		score := -s.quiesce(&child, -beta, -alpha)

		if score >= beta {
			return beta
		}

		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

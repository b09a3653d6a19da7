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
	"github.com/AdeAttwood/Ceir/pkg/board/move"
	"github.com/AdeAttwood/Ceir/pkg/search/tt"
)

// negamax is a simplified formulation of the minmax search algorithm
// which uses a single function for both the maximizing and minimizing
// players, negating the score at every ply. Alpha beta pruning cuts
// the branches a single refutation has already proven worthless.
// https://www.chessprogramming.org/Negamax
// https://www.chessprogramming.org/Alpha-Beta
func (s *Search) negamax(b *board.Board, depth, alpha, beta int) int {
	s.nodes++

	// the original alpha decides whether the stored value is an
	// upper bound on the exact score
	originalAlpha := alpha

	// probe the transposition table; entries searched at least as
	// deep as the current node can narrow the window or cut outright
	if entry, ok := s.table.Probe(b.Hash()); ok && entry.Depth >= depth {
		switch entry.Bound {
		case tt.Exact:
			return entry.Value
		case tt.LowerBound:
			alpha = max(alpha, entry.Value)
		case tt.UpperBound:
			beta = min(beta, entry.Value)
		}

		if alpha >= beta {
			return entry.Value
		}
	}

	if depth == 0 {
		// drop into quiescence search so the evaluation never lands
		// in the middle of an exchange
		return s.quiesce(b, alpha, beta)
	}

	us := b.Turn

	moves := b.PseudoMoves()
	sortMoves(moves)

	moved := false
	bestValue := MaxNegative - 1
	bestMove := move.Null

	for _, m := range moves {
		child := *b
		child.MakeMove(m)

		// drop pseudo legal moves that leave our king attacked
		if child.InCheck(us) {
			continue
		}

		moved = true

		score := -s.negamax(&child, depth-1, -beta, -alpha)

		if score > bestValue {
			bestValue = score
			bestMove = m
		}

		alpha = max(alpha, score)

		if score >= beta {
			// fail hard beta cutoff
			return beta
		}
	}

	// with no legal move the position scores as mate, whether or not
	// the king is in check; scoring by distance from the root makes
	// nearer mates preferable
	plys := s.maxDepth - depth
	matedValue := -MateScore + plys

	value := bestValue
	if !moved {
		value = matedValue
	}

	bound := tt.Exact
	switch {
	case bestValue <= originalAlpha:
		bound = tt.UpperBound
	case bestValue >= beta:
		bound = tt.LowerBound
	}

	s.table.Store(b.Hash(), tt.Entry{
		Depth: depth,
		Value: value,
		Move:  bestMove,
		Bound: bound,
		Seen:  1,
	})

	if !moved {
		return matedValue
	}

	return alpha
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

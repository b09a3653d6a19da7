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

import (
	"github.com/AdeAttwood/Ceir/pkg/board/bitboard"
	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

// Knight returns the squares attacked by the knights on the given
// bitboard. Each of the eight offsets is masked so that a jump never
// wraps across the a or h file.
// https://www.chessprogramming.org/Knight_Pattern
func Knight(b bitboard.Board) bitboard.Board {
	fileA := bitboard.Files[square.FileA]
	fileB := bitboard.Files[square.FileB]
	fileG := bitboard.Files[square.FileG]
	fileH := bitboard.Files[square.FileH]

	return (b << 6 &^ (fileA | fileB)) | // north east east
		(b << 15 &^ fileA) | // north north east
		(b << 17 &^ fileH) | // north north west
		(b << 10 &^ (fileG | fileH)) | // north west west
		(b >> 6 &^ (fileG | fileH)) | // south west west
		(b >> 15 &^ fileH) | // south south west
		(b >> 17 &^ fileA) | // south south east
		(b >> 10 &^ (fileA | fileB)) // south east east
}

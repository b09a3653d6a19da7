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

package piece_test

import (
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board/piece"
)

func TestTypeFrom(t *testing.T) {
	for _, id := range []string{"k", "q", "r", "b", "n", "p"} {
		kind := piece.TypeFrom(id)
		if kind == piece.NoType {
			t.Fatalf("expected %q to parse", id)
		}

		if kind.String() != id {
			t.Errorf("kind %q prints as %q", id, kind.String())
		}
	}

	if piece.TypeFrom("x") != piece.NoType {
		t.Error("expected unknown letters to parse to NoType")
	}
}

func TestLetter(t *testing.T) {
	if got := piece.Queen.Letter(piece.White); got != "Q" {
		t.Errorf("white queen letter: got %q, want Q", got)
	}

	if got := piece.Queen.Letter(piece.Black); got != "q" {
		t.Errorf("black queen letter: got %q, want q", got)
	}
}

func TestColorOther(t *testing.T) {
	if piece.White.Other() != piece.Black || piece.Black.Other() != piece.White {
		t.Error("Other should swap the colors")
	}
}

func TestColorFrom(t *testing.T) {
	if c, err := piece.ColorFrom("w"); err != nil || c != piece.White {
		t.Errorf("parsing w: got %v, %v", c, err)
	}

	if c, err := piece.ColorFrom("b"); err != nil || c != piece.Black {
		t.Errorf("parsing b: got %v, %v", c, err)
	}

	if _, err := piece.ColorFrom("x"); err == nil {
		t.Error("expected an error parsing x")
	}
}

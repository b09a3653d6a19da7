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

package square_test

import (
	"testing"

	"github.com/AdeAttwood/Ceir/pkg/board/square"
)

func TestEncoding(t *testing.T) {
	tests := []struct {
		id    string
		index square.Square
	}{
		{"h1", 0},
		{"a1", 7},
		{"e2", 11},
		{"e4", 27},
		{"h8", 56},
		{"a8", 63},
	}

	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			s, err := square.New(test.id)
			if err != nil {
				t.Fatal(err)
			}

			if s != test.index {
				t.Errorf("got index %d, want %d", s, test.index)
			}

			if s.String() != test.id {
				t.Errorf("got id %s, want %s", s, test.id)
			}
		})
	}
}

func TestFileAndRankRoundTrip(t *testing.T) {
	for s := square.Square(0); s < square.N; s++ {
		if got := square.From(s.File(), s.Rank()); got != s {
			t.Fatalf("square %d round trips to %d", s, got)
		}
	}
}

func TestNewErrors(t *testing.T) {
	for _, id := range []string{"", "e", "e44", "i4", "e9", "44"} {
		if _, err := square.New(id); err == nil {
			t.Errorf("expected an error parsing %q", id)
		}
	}
}

func TestNone(t *testing.T) {
	s, err := square.New("-")
	if err != nil || s != square.None {
		t.Errorf("expected the null square, got %v, %v", s, err)
	}

	if square.None.String() != "-" {
		t.Errorf("null square prints as %q", square.None.String())
	}
}

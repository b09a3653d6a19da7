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

// This script stages the current engine build and plays it against a
// reference build under cutechess-cli to measure the strength
// difference.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/AdeAttwood/Ceir/scripts/util"
)

func main() {
	timeControl := "40+0.4"
	gameNumber := "2000"
	threads := "8"

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./scripts <reference-engine>")
		os.Exit(2)
	}

	opponent := fmt.Sprintf("./testing/engines/%s", os.Args[1])

	fmt.Print("info: staging engine... ")
	assert(util.RunNormal("go", "build", "-o", "./testing/stage/ceir", "."))
	fmt.Println("done.")

	assert(util.RunNormal(
		"cutechess-cli",
		"-repeat", "-recover", "-resign", "movecount=3", "score=400",
		"-draw", "movenumber=40", "movecount=8", "score=10",
		"-srand", strconv.Itoa(int(time.Now().Unix())),
		"-variant", "standard", "-concurrency", threads, "-games", gameNumber,
		"-engine", "cmd=./testing/stage/ceir", "proto=uci", "tc="+timeControl, "name=ceir",
		"-engine", "cmd="+opponent, "proto=uci", "tc="+timeControl, "name=reference",
		"-openings", "file=testing/books/openings.pgn", "format=pgn", "order=random", "plies=16",
		"-pgnout", "testing/pgns/games.pgn",
	))
}

func assert(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

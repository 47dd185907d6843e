// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// suggest is a line-oriented demo of the widget session. Type text to
// search, or one of the commands: :down, :up, :ok, :esc, :sel, :quit.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/typeahead"
	"github.com/poiesic/typeahead/search"
	"github.com/poiesic/typeahead/widget"
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	dbPath := "./typeahead_db"
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}

	store, err := typeahead.Open(dbPath)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	cfg := search.DefaultConfig()
	cfg.Debounce = 0 // line-oriented input needs no keystroke debouncing

	session, err := store.NewSession(context.Background(), cfg, nil,
		widget.Multiple(),
		widget.OnResults(printResults),
	)
	if err != nil {
		panic(err)
	}
	defer session.Close()

	fmt.Println("typeahead demo. Type to search; :down :up :ok :esc :sel :quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case ":quit":
			return
		case ":down":
			session.MoveDown()
			printHighlight(session)
		case ":up":
			session.MoveUp()
			printHighlight(session)
		case ":ok":
			if picked, ok := session.Confirm(); ok {
				fmt.Printf("toggled %q\n", picked.Label)
			} else {
				fmt.Println("nothing highlighted")
			}
		case ":esc":
			session.Escape()
			fmt.Println("closed")
		case ":sel":
			for _, c := range session.Selection() {
				fmt.Printf("* %s (%s)\n", c.Label, c.ID)
			}
		default:
			session.SetQuery(line)
		}
	}
}

func printResults(query string, results []search.Result) {
	fmt.Printf("%q: %d hits\n", query, len(results))
	for i, r := range results {
		fmt.Printf("%2d: %s [%0.1f]\n", i, r.Candidate.Label, r.Candidate.Popularity)
	}
}

func printHighlight(session *widget.Session) {
	idx := session.Highlighted()
	if idx == widget.NoHighlight {
		fmt.Println("no highlight")
		return
	}
	results := session.Results()
	if idx < len(results) {
		fmt.Printf("> %d: %s\n", idx, results[idx].Candidate.Label)
	}
}

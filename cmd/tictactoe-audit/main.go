// Command tictactoe-audit checks the computer player against an exhaustive
// search on every reachable position and plays it against every opponent line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jaminalder/tictactoe-ai/internal/domain"
	"github.com/jaminalder/tictactoe-ai/internal/engine"
	"github.com/logrusorgru/aurora"
)

var (
	symbol = flag.String("symbol", "O", "side the engine plays, X or O")
	limit  = flag.Int("show", 10, "findings to print")
)

func main() {
	flag.Parse()
	me, err := domain.ParseCell(*symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(2)
	}

	positions := engine.ReachablePositions(me)
	b := newBar(len(positions), fmt.Sprintf("checking %d positions as %s", len(positions), me))
	var findings []engine.Finding
	for _, p := range positions {
		if f := engine.CheckPosition(p, me); f != nil {
			findings = append(findings, *f)
		}
		b.Add(1)
	}
	b.Close()
	fmt.Println()

	out, err := engine.PlayAll(me)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	for i, f := range findings {
		if i == *limit {
			fmt.Printf("... %d more\n", len(findings)-i)
			break
		}
		fmt.Println(aurora.Red(f.String()))
	}
	summary := fmt.Sprintf("%d positions, %d findings; %d games: %d won, %d drawn, %d lost",
		len(positions), len(findings), out.Games(), out.Wins, out.Draws, out.Losses)
	if len(findings) > 0 || out.Losses > 0 {
		fmt.Println(aurora.Red(summary))
		os.Exit(1)
	}
	fmt.Println(aurora.Green(summary))
}

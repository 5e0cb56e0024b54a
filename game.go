package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/minmaxed/dots-and-boxes/pkg/assess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/model"
)

// Run drives one complete match between the human (MIN, moves first) and
// the engine (MAX). The core never blocks on input; all reading and
// rendering happens here.
func Run(cfg Config) error {
	g, err := chess.NewGame(cfg.Lines, cfg.Columns)
	if err != nil {
		return err
	}

	journal := NewJournal(cfg)
	in := bufio.NewScanner(os.Stdin)

	fmt.Printf("Dots and Boxes: %dx%d boxes, %s, depth %d, %s heuristic\n",
		cfg.Lines, cfg.Columns, cfg.Search.Algorithm, cfg.Search.Depth, cfg.Search.Policy)
	fmt.Printf("You are %s and move first. Address a segment as \"line column\" on the dot\n", cfg.HumanGlyph)
	fmt.Printf("lattice (%dx%d, segments have exactly one odd coordinate); enter -1 to resign.\n\n",
		2*cfg.Lines+1, 2*cfg.Columns+1)
	fmt.Println(Render(g, cfg))

	for assess.Evaluate(g) == assess.NotOver {
		start := time.Now()

		if g.NowPlayer == chess.PlayerMin {
			quit, err := humanTurn(in, g, cfg)
			if err != nil {
				return err
			}
			if quit {
				fmt.Println("Game abandoned.")
				return journal.Close(g, assess.NotOver)
			}
		} else {
			next, err := engineTurn(g, cfg)
			if err != nil {
				return err
			}
			g = next
		}

		journal.Record(g)
		fmt.Println(Render(g, cfg))
		fmt.Printf("%s %s %d : %d %s %s, turn took %v\n\n",
			aurora.Cyan(cfg.HumanGlyph), "(you)", g.MinScore,
			g.MaxScore, aurora.Red(cfg.EngineGlyph), "(engine)",
			time.Since(start).Round(time.Millisecond))
	}

	outcome := assess.Evaluate(g)
	announce(outcome, cfg)
	return journal.Close(g, outcome)
}

func humanTurn(in *bufio.Scanner, g *chess.Game, cfg Config) (quit bool, err error) {
	for {
		fmt.Printf("%s> ", aurora.Cyan("your move"))
		if !in.Scan() {
			return true, in.Err()
		}

		var r, c int
		n, _ := fmt.Sscanf(in.Text(), "%d %d", &r, &c)
		if n >= 1 && r == -1 {
			return true, nil
		}
		if n != 2 {
			fmt.Println(aurora.Red("enter two integers: line column"))
			continue
		}

		if err := g.ApplySegment(r, c); err != nil {
			fmt.Println(aurora.Red(err))
			continue
		}
		return false, nil
	}
}

func engineTurn(g *chess.Game, cfg Config) (*chess.Game, error) {
	fmt.Println(aurora.Yellow("engine's turn"))

	bar := model.NewSpinner("searching")
	done := make(chan struct{})
	go bar.Spin(done)

	res, err := assess.Search(g, cfg.Search)
	close(done)
	bar.Done()
	if err != nil {
		return nil, err
	}
	if res.Next == nil {
		// Terminal already; the loop condition catches it.
		return g, nil
	}

	r, c := chess.Lattice(res.Next.LastMove.Edge)
	fmt.Printf("engine plays %d %d (score %d, %d nodes)\n", r, c, res.Score, res.Visited)
	return res.Next, nil
}

func announce(outcome assess.Outcome, cfg Config) {
	switch outcome {
	case assess.Tie:
		fmt.Println(aurora.Yellow("It's a tie!"))
	case assess.MinWins:
		fmt.Println(aurora.Cyan(cfg.HumanGlyph + " (you) won!"))
	case assess.MaxWins:
		fmt.Println(aurora.Red(cfg.EngineGlyph + " (engine) won!"))
	}
}

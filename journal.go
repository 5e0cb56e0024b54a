package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/minmaxed/dots-and-boxes/pkg/assess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/message"
)

// Journal accumulates the records of one match and writes them out as a
// single JSON document when the match ends.
type Journal struct {
	Uid   message.GameUid         `json:"gameUid"`
	Start message.GameStartRecord `json:"start"`
	Moves []message.MoveRecord    `json:"moves"`
	End   *message.GameEndRecord  `json:"end,omitempty"`

	dir string
}

func NewJournal(cfg Config) *Journal {
	uid := message.NewGameUid()
	return &Journal{
		Uid: uid,
		Start: message.GameStartRecord{
			TimeStamp: message.NewTimeStamp(time.Now()),
			GameUid:   uid,
			Lines:     cfg.Lines,
			Columns:   cfg.Columns,
			Depth:     cfg.Search.Depth,
			Algorithm: cfg.Search.Algorithm.String(),
			Policy:    cfg.Search.Policy.String(),
		},
		dir: cfg.JournalDir,
	}
}

// Record appends the placement the game's LastMove describes. It must be
// called once after every committed placement, before the next one.
func (j *Journal) Record(g *chess.Game) {
	if !g.LastMove.Valid {
		return
	}
	j.Moves = append(j.Moves, message.NewMoveRecord(j.Uid, g))
}

// Close stamps the outcome and writes the journal next to the binary (or
// wherever -journal points). An abandoned game is written without an end
// record.
func (j *Journal) Close(g *chess.Game, outcome assess.Outcome) error {
	if outcome != assess.NotOver {
		j.End = &message.GameEndRecord{
			TimeStamp: message.NewTimeStamp(time.Now()),
			GameUid:   j.Uid,
			Winner:    outcome.String(),
			MinScore:  g.MinScore,
			MaxScore:  g.MaxScore,
		}
	}

	data, err := sonic.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(j.dir, fmt.Sprintf("game-%s.json", j.Uid))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	fmt.Printf("journal written to %s\n", path)
	return nil
}

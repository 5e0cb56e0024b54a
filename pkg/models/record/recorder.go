package record

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
)

const (
	gameStartCollection = "game_start_record"
	moveCollection      = "move_record"
	gameEndCollection   = "game_end_record"
)

// Recorder writes match history to mongo, one collection per record kind.
type Recorder struct {
	starts *mon.Model
	moves  *mon.Model
	ends   *mon.Model
}

func NewRecorder(url, database string) *Recorder {
	return &Recorder{
		starts: mon.MustNewModel(url, database, gameStartCollection),
		moves:  mon.MustNewModel(url, database, moveCollection),
		ends:   mon.MustNewModel(url, database, gameEndCollection),
	}
}

func (r *Recorder) RecordStart(ctx context.Context, rec *GameStart) error {
	rec.CreateAt = time.Now()
	_, err := r.starts.InsertOne(ctx, rec)
	return err
}

func (r *Recorder) RecordMove(ctx context.Context, rec *Move) error {
	rec.CreateAt = time.Now()
	_, err := r.moves.InsertOne(ctx, rec)
	return err
}

func (r *Recorder) RecordEnd(ctx context.Context, rec *GameEnd) error {
	rec.CreateAt = time.Now()
	_, err := r.ends.InsertOne(ctx, rec)
	return err
}

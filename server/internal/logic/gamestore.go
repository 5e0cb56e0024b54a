package logic

import (
	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/minmaxed/dots-and-boxes/pkg/assess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/chess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/message"
)

// storedGame is the redis value for one live match. The search options are
// fixed at creation so replays of the same game stay deterministic.
type storedGame struct {
	Uid     message.GameUid
	Game    *chess.Game
	Options assess.Options
}

func gameKey(uid string) string {
	return "game:" + uid
}

func loadGame(rds *redis.Redis, uid string) (*storedGame, error) {
	data, err := rds.Get(gameKey(uid))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, ErrGameNotFound
	}

	var stored storedGame
	if err := sonic.UnmarshalString(data, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func saveGame(rds *redis.Redis, stored *storedGame, ttlSeconds int) error {
	data, err := sonic.MarshalString(stored)
	if err != nil {
		return err
	}
	return rds.Setex(gameKey(string(stored.Uid)), data, ttlSeconds)
}

func dropGame(rds *redis.Redis, uid message.GameUid) error {
	_, err := rds.Del(gameKey(string(uid)))
	return err
}

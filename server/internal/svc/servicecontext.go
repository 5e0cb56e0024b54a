package svc

import (
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/minmaxed/dots-and-boxes/pkg/assess"
	"github.com/minmaxed/dots-and-boxes/pkg/models/model"
	"github.com/minmaxed/dots-and-boxes/pkg/models/pusher"
	"github.com/minmaxed/dots-and-boxes/pkg/models/record"
	"github.com/minmaxed/dots-and-boxes/server/internal/config"
)

// moveFeedKey holds the most recent placements across all games, newest
// first, for live spectators.
const (
	moveFeedKey      = "moves:feed"
	moveFeedLockName = "moves:feed:lock"
	moveFeedCap      = 1024
)

type ServiceContext struct {
	Config     config.Config
	Redis      *redis.Redis
	Recorder   *record.Recorder
	Search     assess.Options
	FeedPusher *pusher.Pusher[string]
}

func NewServiceContext(c config.Config) (*ServiceContext, error) {
	algorithm, err := assess.ParseAlgorithm(c.Engine.Algorithm)
	if err != nil {
		return nil, err
	}
	policy, err := assess.ParsePolicy(c.Engine.Policy)
	if err != nil {
		return nil, err
	}

	rds := redis.MustNewRedis(c.Redis)
	feedLock := model.NewLock(rds, moveFeedLockName)

	svcCtx := &ServiceContext{
		Config:   c,
		Redis:    rds,
		Recorder: record.NewRecorder(c.Mongo.Url, c.Mongo.Database),
		Search: assess.Options{
			Algorithm: algorithm,
			Policy:    policy,
			Depth:     c.Engine.Depth,
		},
	}

	svcCtx.FeedPusher = pusher.New(pusher.WithPushLogic(func(messages ...string) error {
		if len(messages) == 0 {
			return nil
		}

		return feedLock.Do(func() error {
			values := make([]any, 0, len(messages))
			for _, m := range messages {
				values = append(values, m)
			}

			if _, err := svcCtx.Redis.Lpush(moveFeedKey, values...); err != nil {
				return err
			}
			return svcCtx.Redis.Ltrim(moveFeedKey, 0, moveFeedCap-1)
		})
	}))
	svcCtx.FeedPusher.Start()

	return svcCtx, nil
}

func (s *ServiceContext) Close() {
	s.FeedPusher.Stop()
}

package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Redis redis.RedisConf
	Mongo struct {
		Url      string
		Database string
	}

	Engine struct {
		Depth     int    `json:",default=4"`
		Algorithm string `json:",default=alphabeta"`
		Policy    string `json:",default=chain"`
	}

	GameTTLSeconds int    `json:",default=3600"`
	PprofAddr      string `json:",optional"`
}

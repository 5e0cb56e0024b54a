package main

import (
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"

	"github.com/minmaxed/dots-and-boxes/pkg/pprof"
	"github.com/minmaxed/dots-and-boxes/server/internal/config"
	"github.com/minmaxed/dots-and-boxes/server/internal/handler"
	"github.com/minmaxed/dots-and-boxes/server/internal/svc"
)

var configFile = flag.String("f", "etc/server.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	if c.PprofAddr != "" {
		pprof.Start(c.PprofAddr)
	}

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	svcCtx, err := svc.NewServiceContext(c)
	if err != nil {
		logx.Must(err)
	}
	defer svcCtx.Close()

	handler.RegisterHandlers(server, svcCtx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

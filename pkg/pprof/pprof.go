package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Start exposes the pprof handlers on their own gin listener and returns
// immediately. The listener lives for the rest of the process.
func Start(addr string) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)
	go func() {
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof listener stopped: %v", err)
		}
	}()
}

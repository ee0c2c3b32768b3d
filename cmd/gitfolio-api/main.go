// @title         Gitfolio API
// @version       0.1.0
// @description   Read only endpoints backing a GitHub profile page

package main

import (
	"context"

	"gitfolio/internal/platform/config"
	"gitfolio/internal/platform/logger"
	phttp "gitfolio/internal/platform/net/http"

	"gitfolio/internal/services/api"
)

func main() {
	// service-scoped config (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

// Package api provides the HTTP API for the application
package api

import (
	"gitfolio/internal/platform/config"
	"gitfolio/internal/platform/logger"
	phttp "gitfolio/internal/platform/net/http"

	"gitfolio/internal/adapters/assets"
	"gitfolio/internal/adapters/contribgraph"
	"gitfolio/internal/adapters/github"

	"gitfolio/internal/modkit"
	"gitfolio/internal/modkit/httpkit"
	"gitfolio/internal/modkit/module"
	"gitfolio/internal/modkit/swaggerkit"

	activitymod "gitfolio/internal/services/api/activity/module"
	contribmod "gitfolio/internal/services/api/contributions/module"
	metamod "gitfolio/internal/services/api/meta/module"
	profilemod "gitfolio/internal/services/api/profile/module"
	reposmod "gitfolio/internal/services/api/repos/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	cfg := opt.Config

	// upstream adapters shared across modules
	gh := github.NewClient(github.Options{
		BaseURL:   cfg.MayString("GITHUB_BASE_URL", ""),
		TokensCSV: cfg.MayString("GITHUB_TOKENS", ""),
	})
	history := contribgraph.NewClient(contribgraph.Options{
		BaseURL: cfg.MayString("CONTRIB_BASE_URL", ""),
	})
	extras := assets.NewStore(cfg.MayString("ASSETS_DIR", "assets"))

	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     cfg,
		GitHub:  gh,
		History: history,
		Assets:  extras,
	}

	mods := []module.Module{
		metamod.New(deps),
		profilemod.New(deps),
		reposmod.New(deps),
		activitymod.New(deps),
		contribmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

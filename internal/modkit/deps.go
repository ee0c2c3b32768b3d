// Package modkit provides module wiring and core deps
package modkit

import (
	"gitfolio/internal/adapters/assets"
	"gitfolio/internal/adapters/contribgraph"
	"gitfolio/internal/adapters/github"
	"gitfolio/internal/platform/config"
	"gitfolio/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	GitHub  *github.Client
	History *contribgraph.Client
	Assets  *assets.Store
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional adapters
func (d Deps) ZeroOK() bool { return true }

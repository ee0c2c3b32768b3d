// Package module wires contribution endpoints into the API
package module

import (
	"net/http"

	modkit "gitfolio/internal/modkit"
	"gitfolio/internal/modkit/httpkit"
	str "gitfolio/internal/platform/strings"

	contribhttp "gitfolio/internal/services/api/contributions/http"
	contribsvc "gitfolio/internal/services/api/contributions/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc contribsvc.Service
}

// New constructs a contributions module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("contributions"),
		modkit.WithPrefix("/contributions"),
	}, opts...)...)

	svc := contribsvc.New(deps.History, deps.Cfg.MayString("DEFAULT_USER", ""))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		contribhttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "contributions") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

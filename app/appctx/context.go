package appctx

import (
	"github.com/ConserveLee/zoot/app/route"
	"github.com/ConserveLee/zoot/internal/config"
	"github.com/ConserveLee/zoot/internal/logger"
)

// Context carries the state shared by every view. It is built once in main
// and passed down instead of living in a package-level global.
type Context struct {
	Config *config.Config
	Logger *logger.AppLogger

	route *route.AppRoute
}

// New builds the context and its route container, which starts at Home
func New(cfg *config.Config, log *logger.AppLogger) *Context {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.NewAppLogger(nil)
	}
	return &Context{
		Config: cfg,
		Logger: log,
		route:  route.New(),
	}
}

// Route returns the shared route container for reading and navigation.
// Using a Context that was not built by New is a programming error and panics.
func (c *Context) Route() *route.AppRoute {
	if c == nil || c.route == nil {
		panic("appctx: route state used before initialization")
	}
	return c.route
}

// RouteReader returns the route container for views that only observe it
func (c *Context) RouteReader() route.Reader {
	return c.Route()
}

// CurrentRoute returns a snapshot of the active route
func (c *Context) CurrentRoute() route.Route {
	return c.Route().Current()
}

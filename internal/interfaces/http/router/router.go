// Package router mounts the OwnerIQ API under /api. Resource handlers are
// collected into DomainGroups first so the full route table can be listed
// and tested before it is attached to a gin engine.
package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// Prefix is where every authenticated API route lives. Health, metrics and
// docs are mounted on the engine directly.
const Prefix = "/api"

type Router struct {
	engine     *gin.Engine
	middleware []gin.HandlerFunc
	groups     []*DomainGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{engine: engine}
}

// Use adds middleware that runs for API routes only.
func (r *Router) Use(mw ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, mw...)
	return r
}

func (r *Router) Mount(groups ...*DomainGroup) *Router {
	r.groups = append(r.groups, groups...)
	return r
}

// Setup attaches the mounted groups to the engine. Call it once, after all
// middleware and groups are in place.
func (r *Router) Setup() {
	api := r.engine.Group(Prefix, r.middleware...)
	for _, g := range r.groups {
		g.attach(api)
	}
}

// Route is a method and a path relative to Prefix.
type Route struct {
	Method string
	Path   string
}

type route struct {
	Route
	handlers []gin.HandlerFunc
}

// DomainGroup is the route table of one resource.
type DomainGroup struct {
	prefix     string
	middleware []gin.HandlerFunc
	routes     []route
	children   []*DomainGroup
}

func NewDomainGroup(prefix string) *DomainGroup {
	return &DomainGroup{prefix: prefix}
}

func (g *DomainGroup) Use(mw ...gin.HandlerFunc) *DomainGroup {
	g.middleware = append(g.middleware, mw...)
	return g
}

func (g *DomainGroup) Handle(method, relPath string, handlers ...gin.HandlerFunc) *DomainGroup {
	g.routes = append(g.routes, route{Route: Route{Method: method, Path: relPath}, handlers: handlers})
	return g
}

func (g *DomainGroup) GET(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodGet, p, h...)
}

func (g *DomainGroup) POST(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodPost, p, h...)
}

func (g *DomainGroup) PUT(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodPut, p, h...)
}

func (g *DomainGroup) DELETE(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodDelete, p, h...)
}

// Group returns a nested group under prefix. It inherits the parent's
// middleware.
func (g *DomainGroup) Group(prefix string) *DomainGroup {
	child := NewDomainGroup(prefix)
	g.children = append(g.children, child)
	return child
}

func (g *DomainGroup) attach(parent *gin.RouterGroup) {
	rg := parent.Group(g.prefix, g.middleware...)
	for _, rt := range g.routes {
		rg.Handle(rt.Method, rt.Path, rt.handlers...)
	}
	for _, child := range g.children {
		child.attach(rg)
	}
}

// Routes lists every route of the group and its children with paths
// relative to Prefix.
func (g *DomainGroup) Routes() []Route {
	var out []Route
	for _, rt := range g.routes {
		out = append(out, Route{Method: rt.Method, Path: joinPath(g.prefix, rt.Path)})
	}
	for _, child := range g.children {
		for _, rt := range child.Routes() {
			out = append(out, Route{Method: rt.Method, Path: joinPath(g.prefix, rt.Path)})
		}
	}
	return out
}

func joinPath(prefix, rel string) string {
	if rel == "" {
		return prefix
	}
	return path.Join(prefix, rel)
}

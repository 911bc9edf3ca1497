// Package gateway serves the ledger over HTTP/JSON with gin. It calls the same
// service as the gRPC handler and authenticates with the same Authenticator.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	auditrepo "collective-ledger/internal/audit/repository"
	ledgerhandler "collective-ledger/internal/ledger/handler"
	"collective-ledger/internal/observability"
	"collective-ledger/internal/server/interceptors"
)

// ReadinessChecker reports whether the server's dependencies are healthy. *healthhandler.Server satisfies it.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// Deps holds the gateway dependencies. Only Ledger and Auth are required.
type Deps struct {
	Ledger ledgerhandler.LedgerService
	Auth   *interceptors.Authenticator
	// Audit backs GET /v1/audit. If nil, the route returns 501.
	Audit auditrepo.Repository
	// Readiness backs GET /readyz. If nil, /readyz always reports ready.
	Readiness   ReadinessChecker
	CORSOrigins []string
	// TrustedProxies are the IPs or CIDRs allowed to set X-Forwarded-For; nil means localhost only.
	TrustedProxies []string
}

// Gateway is the HTTP surface of the ledger.
type Gateway struct {
	deps     Deps
	router   *gin.Engine
	appeared time.Time
}

// New returns a Gateway with middleware and routes registered.
func New(deps Deps) *Gateway {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(deps.CORSOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Actor"},
		MaxAge:       12 * time.Hour,
	}))
	proxies := deps.TrustedProxies
	if proxies == nil {
		proxies = []string{"127.0.0.1", "::1"}
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		log.Warn().Err(err).Msg("gateway: invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	g := &Gateway{deps: deps, router: r, appeared: time.Now()}
	g.registerRoutes()
	return g
}

// Handler returns the gin engine as an http.Handler.
func (g *Gateway) Handler() http.Handler {
	return g.router
}

func (g *Gateway) registerRoutes() {
	r := g.router
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(g.appeared).String(),
		})
	})
	r.GET("/readyz", g.readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.Use(g.identify())

	v1.POST("/members", g.requireActor(), g.joinDAO)
	v1.GET("/members", g.listMembers)
	v1.GET("/members/:actor", g.isMember)

	v1.POST("/proposals", g.requireActor(), g.createProposal)
	v1.GET("/proposals", g.listProposals)
	v1.GET("/proposals/:index", g.getProposal)
	v1.POST("/proposals/:index/votes", g.requireActor(), g.vote)
	v1.POST("/proposals/:index/execute", g.requireActor(), g.executeProposal)

	v1.GET("/audit", g.requireActor(), g.listAudit)
}

func (g *Gateway) readyz(c *gin.Context) {
	if g.deps.Readiness != nil {
		if err := g.deps.Readiness.Ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false, "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

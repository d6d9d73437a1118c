// Package devserver is an in-memory rendition of the marketplace backend.
// It serves the same routes, envelope, and auth semantics as production so
// the client toolkit can be exercised end to end without infrastructure.
package devserver

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver/auth"
	"github.com/adspace/adspace-cli/internal/devserver/handler"
	"github.com/adspace/adspace-cli/internal/devserver/middleware"
	"github.com/adspace/adspace-cli/internal/devserver/store"
	"github.com/adspace/adspace-cli/internal/devserver/tracker"
)

// Options configures a devserver instance.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Workers   int
	Log       zerolog.Logger
}

// Server bundles the router with the state behind it so tests and the
// CLI can reach both.
type Server struct {
	Echo     *echo.Echo
	Store    *store.Store
	Auth     *auth.Service
	Ingester *tracker.Ingester
}

// New builds the Echo instance with all routes registered. The caller
// owns ctx; cancelling it stops the tracking workers.
func New(ctx context.Context, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// --- Dependencies ---
	st := store.New()
	authService := auth.NewService(st, opts.JWTSecret, opts.TokenTTL)
	ingester := tracker.NewIngester(opts.Workers, st.RecordEvent, opts.Log)
	ingester.Start(ctx)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(st, authService)
	advertiserHandler := handler.NewAdvertiserHandler(st)
	publisherHandler := handler.NewPublisherHandler(st)
	commonHandler := handler.NewCommonHandler(st)
	fileHandler := handler.NewFileHandler()
	appHandler := handler.NewAppHandler(ingester)

	authMW := middleware.Auth(opts.JWTSecret)

	// --- Public routes ---
	e.POST("/user/login", authHandler.Login)
	e.POST("/user/register", authHandler.Register)
	e.GET("/app/version", appHandler.Version)
	e.GET("/version.txt", appHandler.TrackerVersion)
	e.POST("/track", appHandler.Track)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Authenticated routes ---
	common := e.Group("/common", authMW)
	common.GET("/categories", commonHandler.ListCategories)

	file := e.Group("/file", authMW)
	file.POST("/upload", fileHandler.Upload)

	admin := e.Group("/admin", authMW, middleware.RBAC(string(domain.RoleAdmin)))
	admin.GET("/ads", adminHandler.ListAds)
	admin.PUT("/ads/:adId/review", adminHandler.ReviewAd)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateAdmin)

	adv := e.Group("/advertisers", authMW, middleware.RBAC(string(domain.RoleAdvertiser)))
	adv.GET("/ads", advertiserHandler.ListAds)
	adv.POST("/ads", advertiserHandler.CreateAd)
	adv.GET("/ads/:adId", advertiserHandler.GetAd)
	adv.PUT("/ads/:adId", advertiserHandler.UpdateAd)
	adv.DELETE("/ads/:adId", advertiserHandler.DeleteAd)
	adv.PUT("/ads/:adId/status", advertiserHandler.ToggleAdStatus)
	adv.GET("/ads/:adId/statistics", advertiserHandler.AdStats)
	adv.GET("/statistics/summary", advertiserHandler.Summary)
	adv.POST("/company-name", advertiserHandler.SetCompanyName)
	adv.GET("/payment-methods", advertiserHandler.PaymentMethods)
	adv.POST("/payment-methods", advertiserHandler.AddPaymentMethod)
	adv.GET("/profile", advertiserHandler.Profile)

	pub := e.Group("/publishers", authMW, middleware.RBAC(string(domain.RolePublisher)))
	pub.POST("/sites", publisherHandler.CreateSite)
	pub.GET("/sites", publisherHandler.ListSites)
	pub.GET("/sites/:websiteId", publisherHandler.GetSite)
	pub.POST("/sites/:websiteId/verification", publisherHandler.VerifySite)
	pub.GET("/statistics", publisherHandler.Statistics)

	return &Server{
		Echo:     e,
		Store:    st,
		Auth:     authService,
		Ingester: ingester,
	}
}

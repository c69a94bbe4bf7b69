package main

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logFatal("Failed to load configuration: %v", err)
	}
	setupLogger(cfg)
	logInfo("Starting Pendumo in %s mode", cfg.envName())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := newApp(cfg)
	// The game stays disabled on failure; loadWords already logged why.
	_ = app.loadWords(ctx)

	templateGlob, staticDir := "templates/*.html", "./static"
	if cfg.IsProduction() && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		templateGlob, staticDir = "dist/templates/*.html", "./dist/static"
	} else {
		logInfo("Serving development assets from source directories")
	}

	router := app.newRouter(templateGlob, staticDir)
	go app.runSessionCleanup(ctx)

	startServer(ctx, cfg.Port, router)
}

// newRouter builds the engine with all middleware and routes.
func (app *App) newRouter(templateGlob, staticDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), accessLogMiddleware())

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif", ".wav"}),
		ginGzip.WithExcludedPaths([]string{"/static/sounds", RouteWebSocket})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	production := app.Config.IsProduction()
	router.Use(func(c *gin.Context) {
		app.applyCacheHeaders(c, production)
	})

	router.LoadHTMLGlob(templateGlob)
	router.Static("/static", staticDir)

	commands := []gin.HandlerFunc{app.rateLimitMiddleware(), app.readinessMiddleware()}

	router.GET(RouteHome, app.homeHandler)
	router.POST(RouteNewGame, append(commands, app.newGameHandler)...)
	router.POST(RouteGuess, append(commands, app.guessHandler)...)
	router.POST(RouteMute, app.rateLimitMiddleware(), app.muteHandler)
	router.GET(RouteGameState, app.gameStateHandler)
	router.GET(RouteAPIState, app.apiStateHandler)
	router.GET(RouteWebSocket, app.wsHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

func startServer(ctx context.Context, port string, router *gin.Engine) {
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

func (app *App) applyCacheHeaders(c *gin.Context, production bool) {
	if production && strings.HasPrefix(c.Request.URL.Path, "/static/") {
		cachecontrol.New(cachecontrol.Config{
			Public: true,
			MaxAge: cachecontrol.Duration(app.Config.StaticCacheAge),
		})(c)
		c.Header("Vary", "Accept-Encoding")
		return
	}
	cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})(c)
}

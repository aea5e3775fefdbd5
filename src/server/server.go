package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "skinserv/src/app"
	cfg "skinserv/src/configuration"
	db "skinserv/src/repository"
)

// NewRouter wires the storage, analysis and handler layers into a gin
// engine. Kept separate from RunServer so tests can drive the router
// directly.
func NewRouter(config *cfg.Properties, log *zap.Logger) (*gin.Engine, error) {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	pprof.Register(router)

	store, err := db.NewLocalImageStore(config.Storage.Dir, log)
	if err != nil {
		return nil, err
	}

	handler := NewImageHandler(store, app.NewAnalysisService(), log)
	health := NewHealthHandler(config.Server.Name)

	// Register Routes
	router.GET("/", health.Root)
	router.GET("/health", health.GetHealth)

	secured := router.Group("/", APIKeyAuth(config.APIKey, log))
	secured.POST("/upload", handler.UploadImage)
	secured.POST("/analyze", handler.AnalyzeImage)
	secured.GET("/image/:image_id", handler.GetImageInfo)

	router.NoRoute(func(ctx *gin.Context) { ctx.JSON(http.StatusNotFound, gin.H{}) })

	return router, nil
}

// RunServer starts the HTTP server and blocks until a termination signal
// arrives, then shuts down gracefully.
func RunServer(config *cfg.Properties, log *zap.Logger) error {
	router, err := NewRouter(config, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", config.Server.Port),
		Handler:     router,
		ReadTimeout: config.Server.ReadTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

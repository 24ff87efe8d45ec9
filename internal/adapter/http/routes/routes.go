package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mensalidade_pix/internal/adapter/http/handlers"
	"mensalidade_pix/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAPI         = "/api"
	PathGeneratePix = "/generate-pix"
	PathWebhook     = "/webhook"

	shutdownTimeout = 10 * time.Second
)

// NewRouter builds the gin engine with every public route registered.
func NewRouter(pixUseCase usecase.IPixChargeUseCase, notificationUseCase usecase.IPaymentNotificationUseCase, corsOrigin string) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	setMiddlewares(router)

	router.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pixHandler := handlers.NewPixChargeHandler(pixUseCase)
	webhookHandler := handlers.NewPaymentWebhookHandler(notificationUseCase)

	api := router.Group(PathAPI)
	api.Use(corsMiddleware(corsOrigin))
	addPixRoutes(api, pixHandler)
	addWebhookRoutes(api, webhookHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	return router
}

// Run serves router on addr until ctx is cancelled, then drains in-flight
// requests.
func Run(ctx context.Context, addr string, router http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logrus.Info("Server stopped")
	return nil
}

package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"mensalidade_pix/internal/adapter/http/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := mustBuildApplication(ctx, cfg)
	router := routes.NewRouter(app.pix, app.notifications, cfg.CORS.AllowedOrigin)

	addr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
	if err := routes.Run(ctx, addr, router); err != nil {
		logrus.WithError(err).Fatal("HTTP server error")
	}
}

package main

import (
	"fmt"
	"os"

	"mensalidade_pix/internal/infrastructure/config"
	"mensalidade_pix/internal/infrastructure/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "billing",
	Short: "Membership fee billing service",
	Long:  "Generates PIX charges for monthly membership fees and settles them from Mercado Pago notifications.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := logging.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	return cfg
}

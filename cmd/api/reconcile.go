package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reconcileTimeout time.Duration

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <paymentId>",
	Short: "Settle the charge of a gateway payment whose notification was lost",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg := mustLoadConfig()

		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()

		app := mustBuildApplication(ctx, cfg)
		outcome, err := app.notifications.ReconcilePayment(ctx, args[0])
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"provider_payment_id": args[0], "outcome": outcome}).Info("Reconciliation finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().DurationVar(&reconcileTimeout, "timeout", 30*time.Second, "Overall timeout for the reconciliation")
}

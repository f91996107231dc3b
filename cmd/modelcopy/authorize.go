package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meigma/modelcopy"
	"github.com/meigma/modelcopy/client"
)

var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Mint a copy authorization from the target resource",
	Long: `Ask the target resource to issue a copy authorization and print it
as JSON. The authorization can be used by another party to copy a model into
the target without holding the target's credentials.`,
	RunE: runAuthorize,
}

func init() {
	rootCmd.AddCommand(authorizeCmd)

	authorizeCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = authorizeCmd.MarkFlagRequired("config")
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := Load(configFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	target, err := client.New(cfg.Target.Endpoint,
		client.WithAPIKey(cfg.Target.APIKey),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	auth, err := target.GenerateCopyAuthorization(ctx, cfg.Target.ResourceID, cfg.Target.ResourceRegion, modelcopy.CopyOptions{})
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(auth)
}

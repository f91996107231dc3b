package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meigma/modelcopy"
	"github.com/meigma/modelcopy/client"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy a model and wait for completion",
	Long: `Copy a model from the source resource into the target resource.

The target resource issues a copy authorization, the source executes the
copy, and this command polls until the operation reaches a terminal state.

If --token-file is given, the poller state is written there after the copy
starts, and an existing token file is resumed from instead of starting a
new copy. Ctrl+C stops polling without aborting the server-side copy; run
the same command again to pick it up.`,
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	copyCmd.Flags().String("model", "", "source model ID to copy (required unless resuming)")
	copyCmd.Flags().String("token-file", "", "path for the resume token")
	_ = copyCmd.MarkFlagRequired("config")
}

func runCopy(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := Load(configFile)
	if err != nil {
		return err
	}

	modelID, _ := cmd.Flags().GetString("model")
	tokenFile, _ := cmd.Flags().GetString("token-file")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := client.New(cfg.Source.Endpoint,
		client.WithAPIKey(cfg.Source.APIKey),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	opts := []modelcopy.PollerOption{
		modelcopy.WithPollingInterval(cfg.PollInterval.Duration()),
		modelcopy.WithLogger(logger),
		modelcopy.WithProgress(func(st modelcopy.OperationState) {
			logger.Info("copy in progress", "modelId", st.ModelID, "status", st.Status)
		}),
	}

	poller, err := buildPoller(ctx, cfg, source, modelID, tokenFile, opts)
	if err != nil {
		return err
	}

	// Persist state as soon as the operation is underway so an interrupted
	// run can resume without restarting the copy.
	if err := poller.Poll(ctx); err != nil {
		return err
	}
	if tokenFile != "" {
		if err := saveToken(poller, tokenFile); err != nil {
			return err
		}
		logger.Info("resume token saved", "path", tokenFile)
	}

	info, err := poller.PollUntilDone(ctx)
	if err != nil {
		return err
	}

	logger.Info("copy complete", "modelId", info.ModelID)
	return json.NewEncoder(os.Stdout).Encode(info)
}

// buildPoller resumes from the token file when one exists, otherwise starts
// a fresh copy by minting an authorization from the target resource.
func buildPoller(ctx context.Context, cfg *Config, source *client.Client, modelID, tokenFile string, opts []modelcopy.PollerOption) (*modelcopy.Poller, error) {
	if tokenFile != "" {
		if token, err := os.ReadFile(tokenFile); err == nil && len(token) > 0 {
			return modelcopy.ResumePoller(source, string(token), opts...)
		}
	}

	if modelID == "" {
		return nil, fmt.Errorf("--model is required when not resuming")
	}

	target, err := client.New(cfg.Target.Endpoint, client.WithAPIKey(cfg.Target.APIKey))
	if err != nil {
		return nil, err
	}
	auth, err := target.GenerateCopyAuthorization(ctx, cfg.Target.ResourceID, cfg.Target.ResourceRegion, modelcopy.CopyOptions{})
	if err != nil {
		return nil, err
	}

	return modelcopy.NewPoller(source, modelID, auth, opts...)
}

// saveToken writes the poller's resume token to path.
func saveToken(poller *modelcopy.Poller, path string) error {
	token, err := poller.ResumeToken()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

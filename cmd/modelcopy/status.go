package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meigma/modelcopy"
	"github.com/meigma/modelcopy/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check a copy operation from a saved resume token",
	Long: `Perform one poll step against the source resource using a saved
resume token and print the resulting operation state. The token file is
updated with the advanced state.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	statusCmd.Flags().String("token-file", "", "path to the resume token (required)")
	_ = statusCmd.MarkFlagRequired("config")
	_ = statusCmd.MarkFlagRequired("token-file")
}

func runStatus(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := Load(configFile)
	if err != nil {
		return err
	}

	tokenFile, _ := cmd.Flags().GetString("token-file")
	token, err := os.ReadFile(tokenFile)
	if err != nil {
		return err
	}

	source, err := client.New(cfg.Source.Endpoint,
		client.WithAPIKey(cfg.Source.APIKey),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	poller, err := modelcopy.ResumePoller(source, string(token), modelcopy.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pollErr := poller.Poll(ctx)
	if pollErr != nil && !errors.Is(pollErr, modelcopy.ErrOperationFailed) {
		return pollErr
	}

	if err := saveToken(poller, tokenFile); err != nil {
		return err
	}

	st := poller.OperationState()
	if err := json.NewEncoder(os.Stdout).Encode(struct {
		ModelID   string                    `json:"modelId"`
		ResultID  string                    `json:"resultId,omitempty"`
		Status    modelcopy.OperationStatus `json:"status"`
		Completed bool                      `json:"completed"`
		Result    *modelcopy.ModelInfo      `json:"result,omitempty"`
	}{
		ModelID:   st.ModelID,
		ResultID:  st.ResultID,
		Status:    st.Status,
		Completed: st.Completed,
		Result:    st.Result,
	}); err != nil {
		return err
	}
	return pollErr
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"stack-manager/core/config"
	"stack-manager/core/logger"
	"stack-manager/core/photos"
	"stack-manager/core/reconcile"
	"stack-manager/core/storage"

	"go.uber.org/zap"
)

var (
	dryRun     bool
	yesConfirm bool

	// confirmReader is shared by every prompt of a run.
	confirmReader = bufio.NewReader(os.Stdin)
)

// setConfirmInput replaces the source of confirmation answers.
func setConfirmInput(r io.Reader) {
	confirmReader.Reset(r)
}

// loadRuntime loads configuration and builds the logger and Photo Service
// client. The API key is checked before anything touches the network.
func loadRuntime() (*config.Config, *zap.Logger, photos.Client, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := cfg.Immich.Validate(); err != nil {
		return nil, nil, nil, err
	}
	client, err := photos.NewClient(cfg.Immich)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create photo service client: %w", err)
	}

	return cfg, l, client, nil
}

// newExporter returns a plan exporter, or nil when export is disabled.
func newExporter(cfg storage.Config, l *zap.Logger) (*reconcile.Exporter, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	l.Info("Plan export enabled", zap.String("bucket", cfg.Bucket), zap.String("prefix", cfg.Prefix))
	return reconcile.NewExporter(client, cfg.Bucket, cfg.Prefix), nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(plan *reconcile.Plan) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %s: %d action(s) planned. Type 'yes' to confirm: ", plan.Step, len(plan.Actions))
	response, err := confirmReader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gsread/internal/config"
	"github.com/dbsmedya/gsread/internal/gainsight"
	"github.com/dbsmedya/gsread/internal/logger"
	"github.com/dbsmedya/gsread/internal/present"
	"github.com/dbsmedya/gsread/internal/signals"
)

// session holds everything a command needs once configuration is valid.
// Building one never touches the network.
type session struct {
	cfg     *config.Config
	log     *logger.Logger
	client  *gainsight.Client
	printer *present.Printer
}

// newSession loads configuration, applies persistent and command overrides,
// validates it and wires the logger, client and printer.
func newSession(cmd *cobra.Command, extra config.Overrides) (*session, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(GetCLIOverrides())
	cfg.ApplyOverrides(extra)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.NewWithErrWriter(&cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := &session{
		cfg:     cfg,
		log:     log,
		printer: present.NewPrinter(cmd.OutOrStdout(), cfg.Output.Color, cfg.Output.Redact),
	}
	s.client = s.newClient(cfg.Timeout())
	return s, nil
}

// newClient creates an API client with the given per-request timeout.
func (s *session) newClient(timeout time.Duration) *gainsight.Client {
	return gainsight.NewClient(gainsight.Options{
		Domain:    s.cfg.API.Domain,
		AccessKey: s.cfg.API.AccessKey,
		Timeout:   timeout,
		Debug:     debug,
		Logger:    s.log,
	})
}

// signalContext returns the command context bound to SIGINT/SIGTERM.
func (s *session) signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signals.WithShutdown(parent, nil)
}

// close flushes logs.
func (s *session) close() {
	_ = s.log.Sync()
}

// domainField is the header line every command starts with.
func (s *session) domainField() present.Field {
	return present.Field{Icon: "🌐", Label: "Domain", Value: s.cfg.API.Domain}
}

// firstNonEmpty returns the first argument that is not empty.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

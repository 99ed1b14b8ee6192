package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gsread/internal/config"
	"github.com/dbsmedya/gsread/internal/present"
	"github.com/dbsmedya/gsread/internal/query"
)

var (
	timelineUserEmail string
	timelineLimit     int
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a user's recent timeline activities",
	Long: `Timeline lists the most recent activities authored by a user, newest
first. With --debug the raw JSON response is printed as well.

Example:
  gsread timeline --user-email csm@example.com --limit 5`,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVar(&timelineUserEmail, "user-email", "",
		"Author email to filter on (default $GAINSIGHT_USER_EMAIL)")
	timelineCmd.Flags().IntVar(&timelineLimit, "limit", 0,
		"Max activities to fetch (default from config, 3)")

	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, config.Overrides{})
	if err != nil {
		return err
	}
	defer s.close()

	email := firstNonEmpty(timelineUserEmail, s.cfg.Defaults.UserEmail)
	if err := config.RequireValue("user-email", email,
		"missing user email: provide --user-email or set "+config.EnvUserEmail); err != nil {
		return err
	}
	limit := s.cfg.Fetch.TimelineLimit
	if timelineLimit > 0 {
		limit = timelineLimit
	}

	q, err := query.TimelineByAuthor(email, limit)
	if err != nil {
		return fmt.Errorf("invalid timeline query: %w", err)
	}

	ctx, stop := s.signalContext(cmd)
	defer stop()

	p := s.printer
	p.Header("👤 Timeline Activity Viewer (READ-ONLY)", 60,
		s.domainField(),
		present.Field{Icon: "🧑", Label: "User", Value: email},
	)
	p.Line("🔍 Querying Timeline activities for %s (limit: %d)...", email, limit)

	page, err := s.client.Query(ctx, query.CollectionTimeline, q)
	if err != nil {
		s.log.WithCollection(query.CollectionTimeline).Debugw("timeline query failed", "error", err)
		p.Error(err)
		p.Failure("Timeline API not accessible",
			"Timeline features not enabled on your instance",
			"API key lacks Timeline read permissions",
			"No Timeline activities in the system",
		)
	} else {
		if debug {
			p.RawJSON(page.Raw)
		}
		p.Timeline(page.Records)
		p.Rule("-", 40)
		p.Success("Successfully accessed Timeline API!")
	}

	p.Footer()
	return nil
}

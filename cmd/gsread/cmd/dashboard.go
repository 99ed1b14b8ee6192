package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gsread/internal/config"
	"github.com/dbsmedya/gsread/internal/present"
	"github.com/dbsmedya/gsread/internal/workflow"
)

var (
	dashboardUserEmail string
	dashboardLimit     int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Build a CSM dashboard from a user's recent activities",
	Long: `Dashboard chains three read-only lookups, one request at a time:

  1. the user's most recent timeline activities
  2. the unique companies those activities belong to
  3. for each company: its name and industry, its top contacts and the
     email domains those contacts use

A company or contact lookup that fails is reported with placeholder values.
The command fails only when the timeline itself cannot be read.

Example:
  gsread dashboard --user-email csm@example.com --limit 5`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardUserEmail, "user-email", "",
		"Author email to filter on (default $GAINSIGHT_USER_EMAIL)")
	dashboardCmd.Flags().IntVar(&dashboardLimit, "limit", 0,
		"Max timeline activities (default from config, 3)")

	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, config.Overrides{})
	if err != nil {
		return err
	}
	defer s.close()

	email := firstNonEmpty(dashboardUserEmail, s.cfg.Defaults.UserEmail)
	if err := config.RequireValue("user-email", email,
		"missing user email: provide --user-email or set "+config.EnvUserEmail); err != nil {
		return err
	}
	limit := s.cfg.Fetch.TimelineLimit
	if dashboardLimit > 0 {
		limit = dashboardLimit
	}

	ctx, stop := s.signalContext(cmd)
	defer stop()

	p := s.printer
	p.Header("🎯 CSM Complete Dashboard (READ-ONLY)", 80,
		s.domainField(),
		present.Field{Icon: "👤", Label: "User", Value: email},
	)

	dash := workflow.New(s.client, workflow.Options{
		UserEmail:     email,
		TimelineLimit: limit,
		ContactsLimit: s.cfg.Fetch.ContactsLimit,
		Timeout:       s.cfg.Timeout(),
		LookupTimeout: s.cfg.LookupTimeout(),
	}, s.log)

	result, err := dash.Report(p.NewDashboardProgress()).Run(ctx)
	if err != nil {
		if !errors.Is(err, workflow.ErrNoActivities) {
			p.Error(err)
		}
		p.Failure("Failed to get timeline activities")
		return fmt.Errorf("dashboard: %w", err)
	}

	p.Dashboard(result.Companies)
	p.Line("")
	p.Rule("=", 80)
	p.Success("CSM Dashboard completed successfully!")
	p.Footer()
	return nil
}

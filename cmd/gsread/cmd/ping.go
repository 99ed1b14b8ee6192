package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gsread/internal/config"
	"github.com/dbsmedya/gsread/internal/present"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the access key is valid and the API is reachable",
	Long: `Ping reads a single row from the user listing endpoint and prints the
status code and response body.

Example:
  GAINSIGHT_DOMAIN=https://acme.gainsightcloud.com GAINSIGHT_ACCESS_KEY=... gsread ping`,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, config.Overrides{})
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := s.signalContext(cmd)
	defer stop()

	p := s.printer
	p.Header("🔑 API Key Check (READ-ONLY)", 60,
		s.domainField(),
		present.Field{Icon: "📖", Label: "Endpoint", Value: "v1/users/services/list"},
	)

	res, err := s.newClient(s.cfg.PingTimeout()).ListUsers(ctx)
	if res != nil {
		p.Line("HTTP %d", res.StatusCode)
		p.RawJSON(res.Body)
	}

	if err != nil {
		p.Failure("Request failed.")
		p.Error(err)
	} else {
		p.Success("API key looks valid and endpoint reachable.")
	}

	p.Footer()
	return nil
}

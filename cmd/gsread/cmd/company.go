package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gsread/internal/config"
	"github.com/dbsmedya/gsread/internal/present"
	"github.com/dbsmedya/gsread/internal/query"
)

var companyID string

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Look up a company by Gsid",
	Long: `Company looks up a single company record by its Gsid and prints its
name, industry and identifier.

Example:
  gsread company --company-id 1P02ABCDEF...`,
	RunE: runCompany,
}

func init() {
	companyCmd.Flags().StringVar(&companyID, "company-id", "",
		"Company Gsid (default $GAINSIGHT_COMPANY_ID)")

	rootCmd.AddCommand(companyCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, config.Overrides{})
	if err != nil {
		return err
	}
	defer s.close()

	gsid := firstNonEmpty(companyID, s.cfg.Defaults.CompanyID)
	if err := config.RequireValue("company-id", gsid,
		"missing company ID: provide --company-id or set "+config.EnvCompanyID); err != nil {
		return err
	}

	q, err := query.CompanyByID(gsid, query.CompanyFields)
	if err != nil {
		return fmt.Errorf("invalid company query: %w", err)
	}

	ctx, stop := s.signalContext(cmd)
	defer stop()

	p := s.printer
	p.Header("🏢 Company Name Lookup (READ-ONLY)", 60,
		s.domainField(),
		present.Field{Icon: "🆔", Label: "Target Company ID", Value: gsid},
		present.Field{Icon: "📖", Label: "Endpoint", Value: "v1/data/objects/query/" + query.CollectionCompany},
	)
	p.Line("🔍 Looking up company with ID: %s", gsid)

	page, err := s.client.Query(ctx, query.CollectionCompany, q)
	if err != nil {
		s.log.WithCompany(gsid).Debugw("company lookup failed", "error", err)
		p.Error(err)
		p.Failure("Company lookup failed",
			"Company ID doesn't exist",
			"API key lacks Company read permissions",
			"Company object not accessible",
		)
	} else {
		p.Line("🎯 Result:")
		p.Company(page.Records)
		p.Rule("-", 40)
		p.Success("Company lookup completed!")
	}

	p.Footer()
	return nil
}

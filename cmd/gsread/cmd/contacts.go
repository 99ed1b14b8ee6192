package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gsread/internal/config"
	"github.com/dbsmedya/gsread/internal/gainsight"
	"github.com/dbsmedya/gsread/internal/present"
	"github.com/dbsmedya/gsread/internal/query"
)

var (
	contactsCompanyID   string
	contactsCompanyName string
	contactsPageSize    int
	contactsOutput      string
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List the active contacts of a company",
	Long: `Contacts pages through every active contact of a company, ordered by
last name, and prints them. Email addresses are redacted unless
GAINSIGHT_REDACT=0.

Example:
  gsread contacts --company-id 1P02ABCDEF... --company-name "Acme"
  gsread contacts --company-id 1P02ABCDEF... --output table`,
	RunE: runContacts,
}

func init() {
	contactsCmd.Flags().StringVar(&contactsCompanyID, "company-id", "",
		"Company Gsid (default $GAINSIGHT_COMPANY_ID)")
	contactsCmd.Flags().StringVar(&contactsCompanyName, "company-name", "",
		"Display name for the company (default $GAINSIGHT_COMPANY_NAME)")
	contactsCmd.Flags().IntVar(&contactsPageSize, "page-size", 0,
		"Override records requested per page")
	contactsCmd.Flags().StringVarP(&contactsOutput, "output", "o", "",
		"Output format (lines, table)")

	rootCmd.AddCommand(contactsCmd)
}

func runContacts(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, config.Overrides{
		PageSize:     contactsPageSize,
		OutputFormat: contactsOutput,
	})
	if err != nil {
		return err
	}
	defer s.close()

	gsid := firstNonEmpty(contactsCompanyID, s.cfg.Defaults.CompanyID)
	if err := config.RequireValue("company-id", gsid,
		"missing company ID: provide --company-id or set "+config.EnvCompanyID); err != nil {
		return err
	}
	name := firstNonEmpty(contactsCompanyName, s.cfg.Defaults.CompanyName)

	template, err := query.ContactsByCompany(gsid, query.ContactFields, s.cfg.Fetch.PageSize)
	if err != nil {
		return fmt.Errorf("invalid contacts query: %w", err)
	}

	ctx, stop := s.signalContext(cmd)
	defer stop()

	p := s.printer
	p.Header("👥 Company Contacts Lookup (READ-ONLY)", 60,
		s.domainField(),
		present.Field{Icon: "🏢", Label: "Company", Value: fmt.Sprintf("%s (%s)", name, gsid)},
		present.Field{Icon: "🔗", Label: "Endpoint", Value: "v1/data/objects/query/" + query.CollectionCompanyPerson},
	)

	contacts, err := gainsight.NewPaginator(s.client, query.CollectionCompanyPerson, template, s.cfg.Fetch.PageSize, s.log).
		Observe(p.NewPageProgress("contacts")).
		FetchAll(ctx)
	if err != nil {
		s.log.WithCompany(gsid).Debugw("contact lookup failed", "error", err)
		p.Error(err)
		p.Failure("Contact lookup failed",
			"Custom Object API endpoint not accessible",
			"Company GSID doesn't exist",
			"No company_person object access",
			"Wrong domain for Custom Object API",
		)
	} else {
		p.Section("🎯 Results:")
		if s.cfg.Output.Format == "table" {
			p.ContactsTable(contacts, name)
		} else {
			p.Contacts(contacts, name)
		}
		p.Rule("-", 40)
		p.Success("Contact lookup completed! Total: %d contacts", len(contacts))
	}

	p.Footer()
	return nil
}

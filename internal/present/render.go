package present

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dbsmedya/gsread/internal/query"
	"github.com/dbsmedya/gsread/internal/redact"
	"github.com/dbsmedya/gsread/internal/types"
	"github.com/dbsmedya/gsread/internal/workflow"
)

// Company prints the company card for the first record, if any.
func (p *Printer) Company(records []types.Record) {
	if len(records) == 0 {
		p.Line("   No company found with that ID")
		return
	}

	c := records[0]
	p.Line("   ✅ Company found:")
	p.Line("   📊 Name: %s", c.StringOr("Name", "Unknown Company"))
	p.Line("   🏭 Industry: %s", c.StringOr("Industry", "No industry"))
	p.Line("   🆔 Gsid: %s", c.StringOr("Gsid", "Unknown ID"))
}

// contactRow is a contact prepared for display.
type contactRow struct {
	name  string
	email string
	role  string
	title string
}

func (p *Printer) contactRow(c types.Record) contactRow {
	first := c.StringOr(query.FieldPersonFirstName, "Unknown")
	last := c.StringOr(query.FieldPersonLastName, "Unknown")

	email, ok := c.String(query.FieldPersonEmail)
	if !ok || email == "" {
		email = "No email"
	} else if p.redact {
		email = redact.Email(email)
	}

	return contactRow{
		name:  strings.TrimSpace(first + " " + last),
		email: email,
		role:  c.StringOr("Role", ""),
		title: c.StringOr("Title", ""),
	}
}

// Contacts prints the contact listing for a company.
func (p *Printer) Contacts(contacts []types.Record, companyName string) {
	if len(contacts) == 0 {
		p.Line("   No active contacts found for %s", companyName)
		return
	}

	p.Line("   📊 Found %d active contacts for %s:", len(contacts), companyName)
	p.Line("   %s", strings.Repeat("=", 60))

	for i, c := range contacts {
		row := p.contactRow(c)
		p.Line("   %d. 👤 %s", i+1, row.name)
		p.Line("      📧 %s", row.email)
		if row.role != "" {
			p.Line("      🎯 Role: %s", row.role)
		}
		if row.title != "" {
			p.Line("      💼 Title: %s", row.title)
		}
		p.Line("")
	}
}

// ContactsTable prints the contact listing as a table.
func (p *Printer) ContactsTable(contacts []types.Record, companyName string) {
	if len(contacts) == 0 {
		p.Line("   No active contacts found for %s", companyName)
		return
	}

	p.Line("   📊 Found %d active contacts for %s:", len(contacts), companyName)

	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Name", "Email", "Role", "Title"})
	for i, c := range contacts {
		row := p.contactRow(c)
		t.AppendRow(table.Row{i + 1, row.name, row.email, row.role, row.title})
	}
	t.Render()
}

// Timeline prints activities with date, context, subject and short Gsid.
func (p *Printer) Timeline(activities []types.Record) {
	if len(activities) == 0 {
		p.Line("   No activities found in Timeline")
		return
	}

	p.Line("   📊 Found %d Timeline activities:", len(activities))
	for i, a := range activities {
		p.Line("   %d. [%s] %s context", i+1, FormatDate(a), a.StringOr("contextname", "Unknown"))
		if subject, ok := a.String("Subject"); ok && subject != "" {
			p.Line("      📧 %s", TruncateSubject(subject))
		}
		p.Line("      🆔 %s", ShortID(a.StringOr("Gsid", "Unknown")))
	}
}

// TimelineSummary prints the short activity list used by the dashboard.
func (p *Printer) TimelineSummary(activities []types.Record) {
	if len(activities) == 0 {
		p.Line("   No activities found")
		return
	}

	p.Line("   📊 Found %d recent activities:", len(activities))
	for i, a := range activities {
		p.Line("   %d. 📧 %s", i+1, TruncateSubject(a.StringOr("Subject", "No subject")))
		p.Line("      🏢 Company ID: %s", a.StringOr("GsCompanyId", "No company ID"))
	}
}

// Dashboard prints the final per-company report.
func (p *Printer) Dashboard(companies []workflow.CompanyResult) {
	p.println()
	p.Rule("=", 80)
	p.println(p.paint(styleTitle, "🎯 FINAL DASHBOARD RESULTS"))
	p.Rule("=", 80)

	for i, c := range companies {
		p.println()
		p.println(p.paint(styleTitle, fmt.Sprintf("🏢 COMPANY %d: %s", i+1, c.Name)))
		p.Line("   🆔 GSID: %s", c.Gsid)
		p.Line("   🏭 Industry: %s", c.Industry)

		if c.Domains != nil && c.Domains.Len() > 0 {
			p.Line("   📊 Email Domains:")
			entries := c.Domains.MostCommon()
			shown := make([]string, len(entries))
			for j, e := range entries {
				shown[j] = "@" + redact.Domain(e.Key, p.redact)
			}
			w := maxWidth(shown)
			for j, e := range entries {
				p.Line("      • %s (%d contacts)", padRight(shown[j], w), e.Count)
			}
		}

		p.Line("   👥 Top %d Contacts:", len(c.Contacts))
		for j, contact := range c.Contacts {
			row := p.contactRow(contact)
			name := strings.TrimSpace(contact.StringOr(query.FieldPersonFirstName, "") + " " +
				contact.StringOr(query.FieldPersonLastName, ""))
			p.Line("      %d. %s", j+1, name)
			p.Line("         📧 %s", row.email)
			if row.title != "" {
				p.Line("         💼 %s", row.title)
			}
		}
	}
}

// RawJSON prints an indented copy of a response body. Bodies that are not
// JSON are printed as-is.
func (p *Printer) RawJSON(body []byte) {
	p.Line("📝 Raw JSON:")
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		p.Line("%s", body)
	} else {
		p.Line("%s", buf.String())
	}
	p.println()
	p.Rule("=", 80)
}

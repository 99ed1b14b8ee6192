package present

import (
	"fmt"

	"github.com/dbsmedya/gsread/internal/types"
	"github.com/dbsmedya/gsread/internal/workflow"
)

// PageProgress reports paginated fetches, one line per request and result.
// It implements gainsight.PageObserver.
type PageProgress struct {
	p    *Printer
	noun string
}

// NewPageProgress creates a PageProgress for records called noun.
func (p *Printer) NewPageProgress(noun string) *PageProgress {
	return &PageProgress{p: p, noun: noun}
}

func (pp *PageProgress) PageRequested(offset, limit int) {
	pp.p.Line("🔍 Querying %s (offset: %d, limit: %d)...", pp.noun, offset, limit)
}

func (pp *PageProgress) PageReceived(offset, count int) {
	pp.p.Line("   📋 Found %d %s in this batch", count, pp.noun)
}

// DashboardProgress prints the dashboard's step log. It implements
// workflow.Reporter.
type DashboardProgress struct {
	p *Printer
}

// NewDashboardProgress creates a DashboardProgress.
func (p *Printer) NewDashboardProgress() *DashboardProgress {
	return &DashboardProgress{p: p}
}

func (d *DashboardProgress) Step(n int, title string) {
	d.p.Section(fmt.Sprintf("🔄 STEP %d: %s", n, title))
}

func (d *DashboardProgress) TimelineFetched(activities []types.Record) {
	d.p.Line("   ✅ Found %d activities", len(activities))
	d.p.TimelineSummary(activities)
}

func (d *DashboardProgress) CompaniesFound(gsids []string) {
	d.p.Line("   🏢 Found %d unique companies", len(gsids))
}

func (d *DashboardProgress) CompanyStarted(index, total int, gsid string) {
	d.p.println()
	d.p.Line("   🔍 Processing Company %d/%d: %s", index, total, gsid)
	d.p.Line("      📋 Looking up company name...")
}

func (d *DashboardProgress) CompanyLookedUp(result workflow.CompanyResult) {
	if result.Resolved {
		d.p.Line("      ✅ Company: %s (%s)", result.Name, result.Industry)
	} else {
		d.p.Line("      ❌ Could not lookup company name")
	}
	d.p.Line("      👥 Getting top contacts...")
}

func (d *DashboardProgress) ContactsFetched(count int) {
	if count > 0 {
		d.p.Line("      ✅ Found %d contacts", count)
		return
	}
	d.p.Line("      ❌ No contacts found")
}

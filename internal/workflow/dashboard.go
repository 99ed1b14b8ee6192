// Package workflow chains timeline, company and contact queries into the
// per-user dashboard.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dbsmedya/gsread/internal/aggregate"
	"github.com/dbsmedya/gsread/internal/gainsight"
	"github.com/dbsmedya/gsread/internal/logger"
	"github.com/dbsmedya/gsread/internal/query"
	"github.com/dbsmedya/gsread/internal/types"
)

// ErrNoActivities is returned when the user has no timeline activities, so
// there are no companies to report on.
var ErrNoActivities = errors.New("no timeline activities found")

// Fallbacks used when a company cannot be resolved.
const (
	UnknownIndustry = "Unknown Industry"
	UnknownDomain   = "Unknown"
	companyIDPrefix = 20
)

// Options configures a dashboard run.
type Options struct {
	UserEmail     string
	TimelineLimit int
	ContactsLimit int
	Timeout       time.Duration // timeline step
	LookupTimeout time.Duration // company and contact lookups
}

// CompanyResult is the dashboard entry for one company.
type CompanyResult struct {
	Gsid          string
	Name          string
	Industry      string
	Resolved      bool
	Contacts      []types.Record
	Domains       *aggregate.Counts
	PrimaryDomain string
}

// Result holds everything the dashboard gathered.
type Result struct {
	Activities []types.Record
	Companies  []CompanyResult
}

// Reporter receives progress while the dashboard runs.
type Reporter interface {
	Step(n int, title string)
	TimelineFetched(activities []types.Record)
	CompaniesFound(gsids []string)
	CompanyStarted(index, total int, gsid string)
	CompanyLookedUp(result CompanyResult)
	ContactsFetched(count int)
}

type nopReporter struct{}

func (nopReporter) Step(int, string) {}
func (nopReporter) TimelineFetched([]types.Record) {}
func (nopReporter) CompaniesFound([]string) {}
func (nopReporter) CompanyStarted(int, int, string) {}
func (nopReporter) CompanyLookedUp(CompanyResult) {}
func (nopReporter) ContactsFetched(int) {}

// Dashboard runs the timeline -> companies -> contacts chain, one request at
// a time.
type Dashboard struct {
	querier  gainsight.Querier
	opts     Options
	reporter Reporter
	log      *logger.Logger
}

// New creates a Dashboard.
func New(querier gainsight.Querier, opts Options, log *logger.Logger) *Dashboard {
	if log == nil {
		log = logger.NewNop()
	}
	return &Dashboard{
		querier:  querier,
		opts:     opts,
		reporter: nopReporter{},
		log:      log,
	}
}

// Report registers a Reporter and returns the Dashboard.
func (d *Dashboard) Report(r Reporter) *Dashboard {
	if r != nil {
		d.reporter = r
	}
	return d
}

// Run executes the workflow. Only a failed or empty timeline step is an
// error; company and contact lookups degrade to placeholder values.
func (d *Dashboard) Run(ctx context.Context) (*Result, error) {
	d.reporter.Step(1, "Getting recent timeline activities...")
	activities, err := d.timeline(ctx)
	if err != nil {
		return nil, err
	}
	d.reporter.TimelineFetched(activities)

	d.reporter.Step(2, "Extracting company GSIDs...")
	gsids := aggregate.UniqueValues(activities, "GsCompanyId")
	d.reporter.CompaniesFound(gsids)

	d.reporter.Step(3, "Processing each company...")
	result := &Result{
		Activities: activities,
		Companies:  make([]CompanyResult, 0, len(gsids)),
	}
	for i, gsid := range gsids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d.reporter.CompanyStarted(i+1, len(gsids), gsid)
		result.Companies = append(result.Companies, d.company(ctx, gsid))
	}

	return result, nil
}

func (d *Dashboard) timeline(ctx context.Context) ([]types.Record, error) {
	q, err := query.TimelineByAuthor(d.opts.UserEmail, d.opts.TimelineLimit)
	if err != nil {
		return nil, fmt.Errorf("build timeline query: %w", err)
	}

	page, err := d.query(ctx, d.opts.Timeout, query.CollectionTimeline, q)
	if err != nil {
		return nil, fmt.Errorf("timeline: %w", err)
	}
	if len(page.Records) == 0 {
		return nil, ErrNoActivities
	}
	return page.Records, nil
}

func (d *Dashboard) company(ctx context.Context, gsid string) CompanyResult {
	log := d.log.WithCompany(gsid)

	result := CompanyResult{
		Gsid:          gsid,
		Name:          unknownCompany(gsid),
		Industry:      UnknownIndustry,
		Contacts:      []types.Record{},
		Domains:       aggregate.NewCounts(),
		PrimaryDomain: UnknownDomain,
	}

	if company, err := d.lookupCompany(ctx, gsid); err != nil {
		log.Debugw("company lookup failed", "error", err)
	} else if company != nil {
		result.Resolved = true
		result.Name = company.StringOr("Name", "Unknown Company")
		result.Industry = company.StringOr("Industry", UnknownIndustry)
	}
	d.reporter.CompanyLookedUp(result)

	contacts, err := d.contacts(ctx, gsid)
	if err != nil {
		log.Debugw("contact lookup failed", "error", err)
		contacts = nil
	}
	d.reporter.ContactsFetched(len(contacts))

	if len(contacts) > 0 {
		result.Contacts = contacts
		result.Domains = aggregate.Count(contacts, aggregate.EmailDomain(query.FieldPersonEmail))
		if top, ok := result.Domains.Top(); ok {
			result.PrimaryDomain = top
		}
		log.Debugw("email domains counted", "domains", result.Domains.Map(), "primary", result.PrimaryDomain)
	}

	return result
}

// lookupCompany returns nil, nil when the company does not exist.
func (d *Dashboard) lookupCompany(ctx context.Context, gsid string) (types.Record, error) {
	q, err := query.CompanyByID(gsid, query.CompanySummaryFields)
	if err != nil {
		return nil, err
	}
	page, err := d.query(ctx, d.opts.LookupTimeout, query.CollectionCompany, q)
	if err != nil {
		return nil, err
	}
	if len(page.Records) == 0 {
		return nil, nil
	}
	return page.Records[0], nil
}

func (d *Dashboard) contacts(ctx context.Context, gsid string) ([]types.Record, error) {
	q, err := query.ContactsByCompany(gsid, query.ContactSummaryFields, d.opts.ContactsLimit)
	if err != nil {
		return nil, err
	}
	page, err := d.query(ctx, d.opts.LookupTimeout, query.CollectionCompanyPerson, q)
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

func (d *Dashboard) query(ctx context.Context, timeout time.Duration, collection string, q query.Query) (*types.Page, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return d.querier.Query(ctx, collection, q)
}

func unknownCompany(gsid string) string {
	r := []rune(gsid)
	if len(r) > companyIDPrefix {
		r = r[:companyIDPrefix]
	}
	return fmt.Sprintf("Unknown Company (%s...)", string(r))
}

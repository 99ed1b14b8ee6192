package gainsight

import (
	"context"
	"fmt"

	"github.com/dbsmedya/gsread/internal/logger"
	"github.com/dbsmedya/gsread/internal/query"
	"github.com/dbsmedya/gsread/internal/types"
)

// Querier runs a single query. *Client implements it.
type Querier interface {
	Query(ctx context.Context, collection string, q query.Query) (*types.Page, error)
}

// PageObserver is told about each page as the Paginator walks a collection.
type PageObserver interface {
	PageRequested(offset, limit int)
	PageReceived(offset, count int)
}

// Paginator walks a collection with an offset/limit cursor.
type Paginator struct {
	querier    Querier
	collection string
	template   query.Query
	pageSize   int
	observer   PageObserver
	log        *logger.Logger
}

// NewPaginator creates a Paginator over collection. The template's limit is
// replaced by pageSize and its offset by the cursor.
func NewPaginator(querier Querier, collection string, template query.Query, pageSize int, log *logger.Logger) *Paginator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Paginator{
		querier:    querier,
		collection: collection,
		template:   template,
		pageSize:   pageSize,
		log:        log.WithCollection(collection),
	}
}

// Observe registers a PageObserver and returns the Paginator.
func (p *Paginator) Observe(o PageObserver) *Paginator {
	p.observer = o
	return p
}

// FetchAll requests pages at offsets 0, pageSize, 2*pageSize ... until a page
// holds fewer than pageSize records, and returns every record in retrieval
// order. A failed page aborts the walk and nothing is returned. There are no
// retries.
func (p *Paginator) FetchAll(ctx context.Context) ([]types.Record, error) {
	if p.pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", p.pageSize)
	}

	all := make([]types.Record, 0)
	offset := 0
	pages := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		q := p.template.WithLimit(p.pageSize).WithOffset(offset)
		if p.observer != nil {
			p.observer.PageRequested(offset, p.pageSize)
		}

		page, err := p.querier.Query(ctx, p.collection, q)
		if err != nil {
			p.log.WithOffset(offset).Debugw("page failed", "error", err)
			return nil, fmt.Errorf("fetch %s at offset %d: %w", p.collection, offset, err)
		}
		pages++

		count := len(page.Records)
		all = append(all, page.Records...)
		if p.observer != nil {
			p.observer.PageReceived(offset, count)
		}

		if count < p.pageSize {
			break
		}
		offset += p.pageSize
	}

	p.log.Debugw("collection fetched", "pages", pages, "records", len(all))
	return all, nil
}

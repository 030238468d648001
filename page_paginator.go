package paginator

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// defaultPageSort orders page-number results by document creation time,
// newest first, when the caller brings no sort of their own.
var defaultPageSort = bson.D{{Key: "createdAt", Value: SortDesc}}

// PagePaginator pages through a collection by 1-based page index. Every
// Paginate call issues the bounded find and the unbounded count concurrently
// and derives lastPage/prev/next from the joined results.
type PagePaginator[T any] struct {
	Base[T]
	page  int
	limit int
}

// NewPagePaginator creates a page-number strategy over coll. The page
// defaults to DefaultPage and the limit to DefaultLimit.
func NewPagePaginator[T any](coll Collection, args Options) *PagePaginator[T] {
	return &PagePaginator[T]{
		Base:  Base[T]{coll: coll, args: args},
		page:  DefaultPage,
		limit: DefaultLimit,
	}
}

// SetPage sets the 1-based page index.
func (p *PagePaginator[T]) SetPage(page int) *PagePaginator[T] {
	p.page = page
	return p
}

// SetLimit sets the page size.
func (p *PagePaginator[T]) SetLimit(limit int) *PagePaginator[T] {
	p.limit = limit
	return p
}

// SetArgs replaces the query options.
func (p *PagePaginator[T]) SetArgs(args Options) *PagePaginator[T] {
	p.args = args
	return p
}

// Paginate - implements Paginator. Requesting a page past the last one
// returns empty data with Next unset; Prev is still derived from the
// requested page.
func (p *PagePaginator[T]) Paginate(ctx context.Context) (*Result[T], error) {
	if p.limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d: %w", p.limit, ErrInvalidArgument)
	}
	if p.page < 1 {
		return nil, fmt.Errorf("page must be positive, got %d: %w", p.page, ErrInvalidArgument)
	}

	sort := p.args.Sort
	if len(sort) == 0 {
		sort = defaultPageSort
	}

	skip := int64(p.page-1) * int64(p.limit)

	var (
		rows  []bson.Raw
		total int64
	)

	// The find and the count are independent, run both concurrently and
	// join before deriving the page metadata.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = buildFind(p.coll, p.args.Filter, sort, p.args).
			Skip(skip).
			Limit(int64(p.limit)).
			All(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		total, err = p.coll.Count(gctx, p.args.Filter)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data, err := decodeRows[T](rows)
	if err != nil {
		return nil, err
	}

	return &Result[T]{
		Data: data,
		Meta: pageMeta(total, p.page, p.limit),
	}, nil
}

var _ Paginator[bson.M] = (*PagePaginator[bson.M])(nil)

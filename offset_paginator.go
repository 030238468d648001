package paginator

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// OffsetPaginator pages through a collection by raw skip value. It reports
// the same page-indexed metadata as PagePaginator by treating the offset as
// a page boundary: currentPage = offset/limit + 1. Misaligned offsets are
// rejected instead of producing an incoherent page number.
//
// Unlike the page-number strategy there is no sort fallback: offset callers
// either bring their own sort or accept store-natural order.
type OffsetPaginator[T any] struct {
	Base[T]
	offset int
	limit  int
}

// NewOffsetPaginator creates an offset strategy over coll. Offset and limit
// have no defaults and are validated eagerly.
func NewOffsetPaginator[T any](coll Collection, offset, limit int, args Options) (*OffsetPaginator[T], error) {
	if err := validateOffset(offset, limit); err != nil {
		return nil, err
	}

	return &OffsetPaginator[T]{
		Base:   Base[T]{coll: coll, args: args},
		offset: offset,
		limit:  limit,
	}, nil
}

func validateOffset(offset, limit int) error {
	if limit < 1 {
		return fmt.Errorf("limit must be positive, got %d: %w", limit, ErrInvalidArgument)
	}
	if offset < 0 {
		return fmt.Errorf("offset must be non-negative, got %d: %w", offset, ErrInvalidArgument)
	}
	if offset%limit != 0 {
		return fmt.Errorf("offset %d is not a multiple of limit %d: %w", offset, limit, ErrInvalidArgument)
	}

	return nil
}

// SetOffset sets the raw skip value.
func (p *OffsetPaginator[T]) SetOffset(offset int) *OffsetPaginator[T] {
	p.offset = offset
	return p
}

// SetLimit sets the page size.
func (p *OffsetPaginator[T]) SetLimit(limit int) *OffsetPaginator[T] {
	p.limit = limit
	return p
}

// SetArgs replaces the query options.
func (p *OffsetPaginator[T]) SetArgs(args Options) *OffsetPaginator[T] {
	p.args = args
	return p
}

// Paginate - implements Paginator.
func (p *OffsetPaginator[T]) Paginate(ctx context.Context) (*Result[T], error) {
	// Setters can break the construction-time invariant, recheck before
	// touching the collection.
	if err := validateOffset(p.offset, p.limit); err != nil {
		return nil, err
	}

	var (
		rows  []bson.Raw
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = buildFind(p.coll, p.args.Filter, p.args.Sort, p.args).
			Skip(int64(p.offset)).
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

	currentPage := p.offset/p.limit + 1

	return &Result[T]{
		Data: data,
		Meta: pageMeta(total, currentPage, p.limit),
	}, nil
}

var _ Paginator[bson.M] = (*OffsetPaginator[bson.M])(nil)

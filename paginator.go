package paginator

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Paginator is the contract every strategy satisfies: execute the configured
// query (or queries) against the collection and return one page of rows plus
// navigation metadata.
//
// A strategy value is safe for concurrent Paginate calls as long as its
// configuration is stable; the chainable setters are not synchronized with
// in-flight calls.
type Paginator[T any] interface {
	Paginate(ctx context.Context) (*Result[T], error)
}

// Base carries what all strategies share: the collection handle and the
// query options. It satisfies Paginator so strategies stay interchangeable,
// but it deliberately implements no pagination of its own.
type Base[T any] struct {
	coll Collection
	args Options
}

func NewBase[T any](coll Collection) *Base[T] {
	return &Base[T]{
		coll: coll,
	}
}

// SetArgs replaces the query options.
func (b *Base[T]) SetArgs(args Options) *Base[T] {
	b.args = args
	return b
}

// GetArgs returns the query options as they are stored.
func (b *Base[T]) GetArgs() Options {
	return b.args
}

// Paginate - implements Paginator. Always fails: pagination semantics live
// in the concrete strategies.
func (b *Base[T]) Paginate(_ context.Context) (*Result[T], error) {
	return nil, fmt.Errorf("base paginator cannot paginate, use a concrete strategy: %w", ErrNotImplemented)
}

var _ Paginator[bson.M] = (*Base[bson.M])(nil)

// buildFind shapes a strategy's find query from the shared options. The
// filter comes in separately because the cursor strategy augments it.
func buildFind(coll Collection, filter bson.M, sort bson.D, args Options) FindQuery {
	q := coll.Find(filter, sort)
	if args.Projection != nil {
		q = q.Select(args.Projection)
	}
	if len(args.Populate) > 0 {
		q = q.Populate(args.Populate...)
	}
	if args.Lean {
		q = q.Lean(true)
	}

	return q
}

// decodeRows unmarshals raw result rows into the caller's row type.
func decodeRows[T any](rows []bson.Raw) ([]T, error) {
	data := make([]T, 0, len(rows))
	for _, row := range rows {
		var v T
		if err := bson.Unmarshal(row, &v); err != nil {
			return nil, fmt.Errorf("cannot decode result row: %w", err)
		}

		data = append(data, v)
	}

	return data, nil
}

package paginator

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
)

// CursorPaginator resumes iteration from an opaque token anchored at the
// last row of the previous page. Skip-based pagination degrades as the skip
// grows and shifts under concurrent writes; the cursor strategy instead asks
// for rows strictly past the last seen cursor-field value, which an index on
// that field serves directly.
//
// The cursor field is the first entry of Options.Sort, ascending _id when
// unset. Supported cursor-field types are ObjectID, datetime and string
// (numeric values encode into tokens but decode back as text, inherited
// behavior of the schema-less token format). The projection must keep the
// cursor field in the rows, otherwise the next token cannot be derived.
//
// A full page yields the token of its last row; a short or empty page
// yields no token, meaning the sequence is exhausted and not restartable.
type CursorPaginator[T any] struct {
	Base[T]
	cursor string
	limit  int
}

// NewCursorPaginator creates a cursor strategy over coll, positioned at the
// start of the sequence with the limit set to DefaultLimit.
func NewCursorPaginator[T any](coll Collection, args Options) *CursorPaginator[T] {
	return &CursorPaginator[T]{
		Base:  Base[T]{coll: coll, args: args},
		limit: DefaultLimit,
	}
}

// SetCursor sets the position token. An empty token restarts from the
// beginning of the sequence.
func (p *CursorPaginator[T]) SetCursor(cursor string) *CursorPaginator[T] {
	p.cursor = cursor
	return p
}

// SetLimit sets the page size.
func (p *CursorPaginator[T]) SetLimit(limit int) *CursorPaginator[T] {
	p.limit = limit
	return p
}

// SetArgs replaces the query options.
func (p *CursorPaginator[T]) SetArgs(args Options) *CursorPaginator[T] {
	p.args = args
	return p
}

// Paginate - implements Paginator. Issues exactly one query; cursor
// pagination never reports a total.
func (p *CursorPaginator[T]) Paginate(ctx context.Context) (*Result[T], error) {
	if p.limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d: %w", p.limit, ErrInvalidArgument)
	}

	field, descending, err := cursorSort(p.args.Sort)
	if err != nil {
		return nil, err
	}

	filter := p.args.Filter
	if p.cursor != "" {
		value, err := decodeCursor(field, p.cursor)
		if err != nil {
			return nil, err
		}

		filter = withRangeClause(filter, field, descending, value)
	}

	sort := bson.D{{Key: field, Value: lo.Ternary(descending, SortDesc, SortAsc)}}

	rows, err := buildFind(p.coll, filter, sort, p.args).
		Limit(int64(p.limit)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeRows[T](rows)
	if err != nil {
		return nil, err
	}

	var next *string
	if len(rows) == p.limit {
		// A full page may have more rows behind it; a short one is the last
		// page and ends the sequence.
		value, err := rows[len(rows)-1].LookupErr(strings.Split(field, ".")...)
		if err != nil {
			return nil, fmt.Errorf("cursor field '%s' is missing from the result row, check the projection: %w", field, err)
		}

		token, err := encodeCursor(value)
		if err != nil {
			return nil, err
		}

		next = &token
	}

	return &Result[T]{
		Data: data,
		Meta: Meta{NextCursor: next},
	}, nil
}

var _ Paginator[bson.M] = (*CursorPaginator[bson.M])(nil)

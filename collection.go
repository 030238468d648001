package paginator

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection is the capability the strategies consume: find documents
// matching a predicate in a given order, and count documents matching a
// predicate. Implementations own query execution, connections and timeouts;
// strategies only shape the query.
type Collection interface {
	Find(filter any, sort bson.D) FindQuery
	Count(ctx context.Context, filter any) (int64, error)
}

// FindQuery is a find in progress. Constraint methods return the receiver
// for chaining; All executes the query and yields the matching rows in order
// as raw BSON documents.
type FindQuery interface {
	Skip(n int64) FindQuery
	Limit(n int64) FindQuery
	Select(projection any) FindQuery
	Populate(relations ...Relation) FindQuery
	Lean(lean bool) FindQuery
	All(ctx context.Context) ([]bson.Raw, error)
}

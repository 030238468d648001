package paginator

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection adapts a mongo-driver collection to the Collection
// interface. Plain finds go through Collection.Find; as soon as a populate
// is requested the query is rebuilt as an aggregation pipeline, since
// $lookup only exists there.
type MongoCollection struct {
	coll *mongo.Collection
}

func NewMongoCollection(coll *mongo.Collection) *MongoCollection {
	return &MongoCollection{
		coll: coll,
	}
}

// Find - implements Collection.
func (c *MongoCollection) Find(filter any, sort bson.D) FindQuery {
	return &mongoFindQuery{
		coll:   c.coll,
		filter: orMatchAll(filter),
		sort:   sort,
	}
}

// Count - implements Collection.
func (c *MongoCollection) Count(ctx context.Context, filter any) (int64, error) {
	return c.coll.CountDocuments(ctx, orMatchAll(filter))
}

var _ Collection = (*MongoCollection)(nil)

// orMatchAll substitutes an empty document for nil predicates. The driver
// rejects nil filters outright.
func orMatchAll(filter any) any {
	if filter == nil {
		return bson.D{}
	}
	if m, ok := filter.(bson.M); ok && m == nil {
		return bson.D{}
	}

	return filter
}

type mongoFindQuery struct {
	coll       *mongo.Collection
	filter     any
	sort       bson.D
	skip       *int64
	limit      *int64
	projection any
	populate   []Relation
	lean       bool
}

// Skip - implements FindQuery.
func (q *mongoFindQuery) Skip(n int64) FindQuery {
	q.skip = &n
	return q
}

// Limit - implements FindQuery.
func (q *mongoFindQuery) Limit(n int64) FindQuery {
	q.limit = &n
	return q
}

// Select - implements FindQuery.
func (q *mongoFindQuery) Select(projection any) FindQuery {
	q.projection = projection
	return q
}

// Populate - implements FindQuery.
func (q *mongoFindQuery) Populate(relations ...Relation) FindQuery {
	q.populate = append(q.populate, relations...)
	return q
}

// Lean - implements FindQuery. Raw BSON rows are already plain data, the
// flag is recorded for interface symmetry only.
func (q *mongoFindQuery) Lean(lean bool) FindQuery {
	q.lean = lean
	return q
}

// All - implements FindQuery.
func (q *mongoFindQuery) All(ctx context.Context) ([]bson.Raw, error) {
	if len(q.populate) > 0 {
		return q.aggregate(ctx)
	}

	opts := options.Find()
	if len(q.sort) > 0 {
		opts.SetSort(q.sort)
	}
	if q.skip != nil {
		opts.SetSkip(*q.skip)
	}
	if q.limit != nil {
		opts.SetLimit(*q.limit)
	}
	if q.projection != nil {
		opts.SetProjection(q.projection)
	}

	cur, err := q.coll.Find(ctx, q.filter, opts)
	if err != nil {
		return nil, err
	}

	var rows []bson.Raw
	if err = cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// aggregate executes the query as a pipeline. Lookups come after the
// bounding stages so only the returned page is expanded.
func (q *mongoFindQuery) aggregate(ctx context.Context) ([]bson.Raw, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: q.filter}},
	}
	if len(q.sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: q.sort}})
	}
	if q.skip != nil {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: *q.skip}})
	}
	if q.limit != nil {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: *q.limit}})
	}
	for _, relation := range q.populate {
		pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: relation.From},
			{Key: "localField", Value: relation.LocalField},
			{Key: "foreignField", Value: relation.foreignField()},
			{Key: "as", Value: relation.as()},
		}}})
	}
	if q.projection != nil {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: q.projection}})
	}

	cur, err := q.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []bson.Raw
	if err = cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

var _ FindQuery = (*mongoFindQuery)(nil)

package paginator

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memCollection is an in-memory Collection used to exercise the strategies
// without a running server. It evaluates the filter subset the strategies
// emit: top-level equality plus $gt/$gte/$lt/$lte operator documents.
type memCollection struct {
	docs []bson.M

	mu         sync.Mutex
	findCalls  int
	countCalls int
}

// Find - implements Collection.
func (c *memCollection) Find(filter any, sortSpec bson.D) FindQuery {
	c.mu.Lock()
	c.findCalls++
	c.mu.Unlock()

	return &memFindQuery{
		coll:   c,
		filter: filter,
		sort:   sortSpec,
	}
}

// Count - implements Collection.
func (c *memCollection) Count(_ context.Context, filter any) (int64, error) {
	c.mu.Lock()
	c.countCalls++
	c.mu.Unlock()

	return int64(len(c.matching(filter))), nil
}

func (c *memCollection) matching(filter any) []bson.M {
	ret := make([]bson.M, 0, len(c.docs))
	for _, doc := range c.docs {
		if matchesFilter(doc, filter) {
			ret = append(ret, doc)
		}
	}

	return ret
}

var _ Collection = (*memCollection)(nil)

type memFindQuery struct {
	coll       *memCollection
	filter     any
	sort       bson.D
	skip       int64
	limit      int64
	hasLimit   bool
	projection any
	populate   []Relation
	lean       bool
}

func (q *memFindQuery) Skip(n int64) FindQuery {
	q.skip = n
	return q
}

func (q *memFindQuery) Limit(n int64) FindQuery {
	q.limit = n
	q.hasLimit = true
	return q
}

func (q *memFindQuery) Select(projection any) FindQuery {
	q.projection = projection
	return q
}

func (q *memFindQuery) Populate(relations ...Relation) FindQuery {
	q.populate = append(q.populate, relations...)
	return q
}

func (q *memFindQuery) Lean(lean bool) FindQuery {
	q.lean = lean
	return q
}

func (q *memFindQuery) All(_ context.Context) ([]bson.Raw, error) {
	matched := q.coll.matching(q.filter)

	if len(q.sort) > 0 {
		field := q.sort[0].Key
		descending := sortDirection(q.sort[0].Value) == SortDesc
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i][field], matched[j][field])
			if descending {
				return cmp > 0
			}

			return cmp < 0
		})
	}

	if q.skip > 0 {
		if q.skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[q.skip:]
		}
	}
	if q.hasLimit && int64(len(matched)) > q.limit {
		matched = matched[:q.limit]
	}

	rows := make([]bson.Raw, 0, len(matched))
	for _, doc := range matched {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}

		rows = append(rows, bson.Raw(raw))
	}

	return rows, nil
}

var _ FindQuery = (*memFindQuery)(nil)

func matchesFilter(doc bson.M, filter any) bool {
	m, ok := filter.(bson.M)
	if !ok || len(m) == 0 {
		return true
	}

	for field, cond := range m {
		val := doc[field]
		operators, isOperatorDoc := cond.(bson.M)
		if !isOperatorDoc {
			if compareValues(val, cond) != 0 {
				return false
			}
			continue
		}

		for op, operand := range operators {
			cmp := compareValues(val, operand)
			switch op {
			case "$gt":
				if cmp <= 0 {
					return false
				}
			case "$gte":
				if cmp < 0 {
					return false
				}
			case "$lt":
				if cmp >= 0 {
					return false
				}
			case "$lte":
				if cmp > 0 {
					return false
				}
			default:
				panic(fmt.Sprintf("memCollection: unsupported operator '%s'", op))
			}
		}
	}

	return true
}

func compareValues(a, b any) int {
	if av, ok := a.(primitive.ObjectID); ok {
		bv := b.(primitive.ObjectID)
		return bytes.Compare(av[:], bv[:])
	}
	if av, ok := a.(time.Time); ok {
		return av.Compare(b.(time.Time))
	}
	if av, ok := a.(string); ok {
		return strings.Compare(av, b.(string))
	}

	af, bf := toFloat(a), toFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		panic(fmt.Sprintf("memCollection: cannot compare value of type %T", v))
	}
}

// seedUsers builds n documents with strictly increasing _id and createdAt
// values and a stable name ordering (user-001, user-002, ...).
func seedUsers(n int) []bson.M {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	docs := make([]bson.M, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		docs = append(docs, bson.M{
			"_id":       primitive.NewObjectIDFromTimestamp(ts),
			"name":      fmt.Sprintf("user-%03d", i+1),
			"age":       18 + i%40,
			"createdAt": ts,
		})
	}

	return docs
}

type user struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Age       int                `bson:"age"`
	CreatedAt time.Time          `bson:"createdAt"`
}

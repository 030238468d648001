package paginator

import "go.mongodb.org/mongo-driver/bson"

// Options carries the query shaping shared by every strategy. All fields are
// optional; the zero value matches the whole collection.
type Options struct {
	// Filter is the match predicate. A nil map matches every document.
	// Strategies never mutate it; the cursor strategy clones it before
	// merging its range clause in.
	Filter bson.M
	// Sort is an ordered field-to-direction mapping (SortAsc or SortDesc).
	// For the cursor strategy only the first entry is significant: it names
	// the cursor field.
	Sort bson.D
	// Projection selects the fields of the returned rows. Passed through to
	// the collection untouched.
	Projection any
	// Populate lists relation expansions resolved by the collection. The
	// Mongo adapter turns each into a $lookup stage.
	Populate []Relation
	// Lean asks the collection for inert plain-data rows instead of live
	// document objects. The Mongo adapter already yields plain data and only
	// records the flag; other adapters may attach behavior to it.
	Lean bool
}

// Relation describes a single relation expansion: documents from the From
// collection whose ForeignField matches LocalField are attached under As.
type Relation struct {
	From         string
	LocalField   string
	ForeignField string // defaults to "_id"
	As           string // defaults to LocalField
}

func (r Relation) foreignField() string {
	if r.ForeignField == "" {
		return "_id"
	}

	return r.ForeignField
}

func (r Relation) as() string {
	if r.As == "" {
		return r.LocalField
	}

	return r.As
}

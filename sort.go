package paginator

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
)

// Sort direction values as they appear in a bson.D sort spec.
const (
	SortAsc  = 1
	SortDesc = -1
)

// defaultCursorField anchors cursor pagination when no sort is supplied.
const defaultCursorField = "_id"

type (
	FieldAlias = string

	// FieldMapping maps external field aliases to stored document field
	// names. Use it to keep wire-facing sort names decoupled from the
	// persisted schema.
	FieldMapping = map[FieldAlias]string
)

var _availableFieldNameSymbols = append([]rune("_."), lo.AlphanumericCharset...)

// cursorSort extracts the cursor field and direction from a sort spec. Only
// the first entry is significant; an absent or empty spec falls back to
// ascending _id.
func cursorSort(sort bson.D) (field string, descending bool, err error) {
	if len(sort) == 0 {
		return defaultCursorField, false, nil
	}

	first := sort[0]
	if err = validateSortField(first.Key); err != nil {
		return "", false, err
	}

	return first.Key, sortDirection(first.Value) == SortDesc, nil
}

// sortDirection normalizes the direction value of a bson.D sort entry.
// Anything negative means descending, everything else ascending.
func sortDirection(v any) int {
	var n float64
	switch vt := v.(type) {
	case int:
		n = float64(vt)
	case int32:
		n = float64(vt)
	case int64:
		n = float64(vt)
	case float64:
		n = vt
	default:
		n = SortAsc
	}

	return lo.Ternary(n < 0, SortDesc, SortAsc)
}

func validateSortField(field string) error {
	if field == "" {
		return fmt.Errorf("empty sort field name: %w", ErrInvalidArgument)
	}

	// Guard against operator injection by restricting allowed characters in
	// field names.
	if !lo.Every(_availableFieldNameSymbols, []rune(field)) {
		return fmt.Errorf("sort field name '%s' contains forbidden symbols: %w", field, ErrInvalidArgument)
	}

	return nil
}

// ParseSort builds a sort spec from a list of strings in the format
// "field asc|desc". Field aliases are resolved via FieldMapping. Returns an
// error naming the closest known alias when one is not found in the mapping.
func ParseSort(stringSorts []string, mapping FieldMapping) (bson.D, error) {
	ret := make(bson.D, 0, len(stringSorts))
	aliases := lo.Keys(mapping)

	for _, stringSort := range stringSorts {
		cutStringSort := strings.Split(strings.TrimSpace(stringSort), " ")
		if len(cutStringSort) != 2 {
			return nil, fmt.Errorf("invalid sort string format '%s': %w", stringSort, ErrInvalidArgument)
		}

		fieldAlias := cutStringSort[0]
		fieldName := mapping[fieldAlias]
		if fieldName == "" {
			return nil, fmt.Errorf("invalid sort field alias. closest: '%s': %w", closestAlias(fieldAlias, aliases), ErrInvalidArgument)
		}

		var direction int
		switch strings.ToLower(cutStringSort[1]) {
		case "asc":
			direction = SortAsc
		case "desc":
			direction = SortDesc
		default:
			return nil, fmt.Errorf("invalid sort direction '%s': %w", cutStringSort[1], ErrInvalidArgument)
		}

		ret = append(ret, bson.E{Key: fieldName, Value: direction})
	}

	return ret, nil
}

func closestAlias(input FieldAlias, dataSet []FieldAlias) FieldAlias {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := levenshtein([]rune(dataSetAlias), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}

package paginator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// rangeOperator maps a sort direction to the comparison operator of the
// cursor range clause: an ascending sequence continues strictly past the
// cursor with $gt, a descending one with $lt.
func rangeOperator(descending bool) string {
	return lo.Ternary(descending, "$lt", "$gt")
}

// decodeCursor parses an opaque cursor token into the native comparable
// value of the cursor field, symmetric with encodeCursor:
//
//   - the identity field must hold a 24-hex-character ObjectID;
//   - an RFC 3339 timestamp decodes back to the instant it encodes;
//   - anything else is compared as the literal string.
func decodeCursor(field, token string) (any, error) {
	if field == defaultCursorField {
		id, err := primitive.ObjectIDFromHex(token)
		if err != nil {
			return nil, fmt.Errorf("malformed cursor '%s' for field '%s': %w", token, field, ErrInvalidArgument)
		}

		return id, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, token); err == nil {
		return t, nil
	}

	return token, nil
}

// encodeCursor derives the next-page token from the cursor-field value of a
// raw result row. Timestamps encode as RFC 3339 in UTC so the token stays
// parseable back into the same instant.
func encodeCursor(value bson.RawValue) (string, error) {
	switch value.Type {
	case bsontype.ObjectID:
		return value.ObjectID().Hex(), nil
	case bsontype.DateTime:
		return value.Time().UTC().Format(time.RFC3339Nano), nil
	case bsontype.String:
		return value.StringValue(), nil
	case bsontype.Int32:
		return strconv.FormatInt(int64(value.Int32()), 10), nil
	case bsontype.Int64:
		return strconv.FormatInt(value.Int64(), 10), nil
	case bsontype.Double:
		return strconv.FormatFloat(value.Double(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cursor field value of type %s cannot be encoded into a token", value.Type)
	}
}

// withRangeClause returns a copy of the caller's filter with the cursor
// range clause merged in. The original filter is never touched. An existing
// operator document on the cursor field is extended, any other existing
// clause on it is replaced.
func withRangeClause(filter bson.M, field string, descending bool, value any) bson.M {
	cloned := lo.Assign(bson.M{}, filter)

	operator := rangeOperator(descending)
	if existing, ok := cloned[field].(bson.M); ok {
		existing = lo.Assign(bson.M{}, existing)
		existing[operator] = value
		cloned[field] = existing
	} else {
		cloned[field] = bson.M{operator: value}
	}

	return cloned
}

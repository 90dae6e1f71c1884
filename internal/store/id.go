package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	appErrors "github.com/eedept/dms-api/pkg/errors"
)

// ParseID converts an externally supplied identifier string into an
// ObjectID. Every path- or body-supplied id must pass through here before it
// is used in a lookup or update.
func ParseID(text string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(text)
	if err != nil {
		return primitive.NilObjectID, appErrors.Wrap(err, appErrors.ErrInvalidID.Code, appErrors.ErrInvalidID.Status, "invalid id")
	}
	return oid, nil
}

// Package repository provides typed collection access on top of the
// document store adapter. Each repository owns one collection and builds the
// exact-match conjunction filters used by the list endpoints: every supplied
// parameter narrows the filter, absent parameters impose no constraint.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentStore is the persistence contract repositories consume. It is
// satisfied by store.Store and by the in-memory store used in tests.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Find(ctx context.Context, collection string, filter bson.M, dest interface{}) error
	Exists(ctx context.Context, collection string, filter bson.M) (bool, error)
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (int64, error)
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeDocStore records the calls repositories make and plays back canned
// results, so filter construction can be asserted without a live database.
type fakeDocStore struct {
	insertColl string
	insertDoc  interface{}
	insertID   string
	insertErr  error

	findColl   string
	findFilter bson.M
	onFind     func(dest interface{}) error
	findErr    error

	existsColl   string
	existsFilter bson.M
	existsResult bool
	existsErr    error

	updateColl    string
	updateID      primitive.ObjectID
	updateSet     bson.M
	updateMatched int64
	updateErr     error
}

func (f *fakeDocStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	f.insertColl = collection
	f.insertDoc = doc
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.insertID == "" {
		return primitive.NewObjectID().Hex(), nil
	}
	return f.insertID, nil
}

func (f *fakeDocStore) Find(ctx context.Context, collection string, filter bson.M, dest interface{}) error {
	f.findColl = collection
	f.findFilter = filter
	if f.findErr != nil {
		return f.findErr
	}
	if f.onFind != nil {
		return f.onFind(dest)
	}
	return nil
}

func (f *fakeDocStore) Exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	f.existsColl = collection
	f.existsFilter = filter
	return f.existsResult, f.existsErr
}

func (f *fakeDocStore) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (int64, error) {
	f.updateColl = collection
	f.updateID = id
	f.updateSet = set
	return f.updateMatched, f.updateErr
}

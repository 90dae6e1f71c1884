package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Store adapts a MongoDB database handle to the narrow surface the
// repositories need: insert one document, query by exact-match conjunction
// filter, and $set updates addressed by _id. The handle is shared by all
// request goroutines; the driver manages pooling underneath.
type Store struct {
	db      *mongo.Database
	logger  *zap.Logger
	observe func(op string, d time.Duration)
}

// New constructs a store over the given database handle.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// SetQueryObserver installs a callback invoked with the duration of every
// store operation, used to feed query metrics.
func (s *Store) SetQueryObserver(fn func(op string, d time.Duration)) {
	s.observe = fn
}

func (s *Store) observed(op string, start time.Time) {
	if s.observe != nil {
		s.observe(op, time.Since(start))
	}
}

// Insert persists one document into the named collection and returns the
// generated identifier in hex form.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	defer s.observed(collection+".insert", time.Now())

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}

	s.logger.Debug("document inserted", zap.String("collection", collection), zap.String("id", oid.Hex()))
	return oid.Hex(), nil
}

// Find decodes every document matching the filter into dest, which must be a
// pointer to a slice. An empty filter returns the whole collection; order is
// store-defined.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, dest interface{}) error {
	defer s.observed(collection+".find", time.Now())

	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// Exists reports whether any document matches the filter.
func (s *Store) Exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	defer s.observed(collection+".exists", time.Now())

	err := s.db.Collection(collection).FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup in %s: %w", collection, err)
	}
	return true, nil
}

// UpdateByID applies a $set update to the document with the given id and
// returns the matched count. A matched count of zero means the document does
// not exist: Mongo counts a document as matched even when the $set leaves
// every value unchanged, so callers rely on this for not-found detection.
func (s *Store) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (int64, error) {
	defer s.observed(collection+".update", time.Now())

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update %s/%s: %w", collection, id.Hex(), err)
	}
	return res.MatchedCount, nil
}

// Ping verifies connectivity to the deployment.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// DatabaseName returns the name of the underlying database.
func (s *Store) DatabaseName() string {
	return s.db.Name()
}

// CollectionNames lists the collections currently present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eedept/dms-api/internal/models"
)

const userCollection = "user"

// UserRepository persists account documents.
type UserRepository struct {
	store DocumentStore
}

// NewUserRepository constructs the repository.
func NewUserRepository(store DocumentStore) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts the user and returns the generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	user.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, userCollection, user)
}

// List returns users matching the filter.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query := bson.M{}
	if filter.Role != nil {
		query["role"] = *filter.Role
	}
	if filter.Approved != nil {
		query["approved"] = *filter.Approved
	}

	var users []models.User
	if err := r.store.Find(ctx, userCollection, query, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// EmailExists reports whether a user document with the exact email exists.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.store.Exists(ctx, userCollection, bson.M{"email": email})
}

// SetApproved flips the approved flag and returns the matched count.
func (r *UserRepository) SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) (int64, error) {
	return r.store.UpdateByID(ctx, userCollection, id, bson.M{"approved": approved})
}

// SetSection assigns a section to the user and returns the matched count.
func (r *UserRepository) SetSection(ctx context.Context, id primitive.ObjectID, sectionID string) (int64, error) {
	return r.store.UpdateByID(ctx, userCollection, id, bson.M{"section_id": sectionID})
}

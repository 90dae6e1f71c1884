package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eedept/dms-api/internal/models"
)

const bookingCollection = "roombooking"

// BookingRepository persists room booking documents.
type BookingRepository struct {
	store DocumentStore
}

// NewBookingRepository constructs the repository.
func NewBookingRepository(store DocumentStore) *BookingRepository {
	return &BookingRepository{store: store}
}

// Create inserts the booking and returns the generated id.
func (r *BookingRepository) Create(ctx context.Context, rb *models.RoomBooking) (string, error) {
	rb.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, bookingCollection, rb)
}

// List returns bookings matching the filter.
func (r *BookingRepository) List(ctx context.Context, filter models.BookingFilter) ([]models.RoomBooking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	var bookings []models.RoomBooking
	if err := r.store.Find(ctx, bookingCollection, query, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.RoomBooking{}
	}
	return bookings, nil
}

// SetStatus updates the booking status and returns the matched count.
func (r *BookingRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) (int64, error) {
	return r.store.UpdateByID(ctx, bookingCollection, id, bson.M{"status": status})
}

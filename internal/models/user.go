package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole enumerates the roles a department account can hold.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User represents an account document in the user collection. Accounts are
// created unapproved and flipped by an admin; students additionally get a
// section assigned after approval.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"full_name" json:"full_name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password"`
	Role      UserRole           `bson:"role" json:"role"`
	Approved  bool               `bson:"approved" json:"approved"`
	SectionID *string            `bson:"section_id" json:"section_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// UserFilter captures the optional query parameters of the user list
// endpoint. Nil fields impose no constraint.
type UserFilter struct {
	Role     *UserRole
	Approved *bool
}

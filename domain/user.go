package domain

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User mirrors a profile owned by the external identity provider.
// The catalog only ever creates or reads it, never authenticates it.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ExternalID string             `bson:"external_id" json:"externalId"`
	FullName   string             `bson:"full_name" json:"fullName"`
	ImageURL   string             `bson:"image_url" json:"imageUrl"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (u *User) Validate() error {
	var fields []string

	if strings.TrimSpace(u.ExternalID) == "" {
		fields = append(fields, "externalId")
	}
	name := strings.TrimSpace(u.FullName)
	if len(name) < 2 || len(name) > 100 {
		fields = append(fields, "fullName")
	}
	if !imageURLPattern.MatchString(u.ImageURL) {
		fields = append(fields, "imageUrl")
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

type UserRepository interface {
	Upsert(ctx context.Context, user *User) error
	GetAllExcept(ctx context.Context, externalID string) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type UserUsecase interface {
	SyncFromProvider(ctx context.Context, externalID, fullName, imageURL string) error
	ListOthers(ctx context.Context, callerExternalID string) ([]User, error)
}

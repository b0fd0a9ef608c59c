package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"collabwish/internal/domain/entity"
	"collabwish/internal/domain/repository"
	"collabwish/pkg/errors"
	"collabwish/pkg/logger"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User not found", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User not found", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query user by email", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Save(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		logger.Error("Firestore save error for user %s: %v", user.ID, err)
		return errors.Internal("Failed to save user", err)
	}
	return nil
}

// SaveSharePair writes both sides of a share in one transaction.
// Mirrored grant records either land together or not at all.
func (r *firestoreUserRepository) SaveSharePair(ctx context.Context, owner, grantee *entity.User) error {
	now := time.Now()
	owner.UpdatedAt = now
	grantee.UpdatedAt = now

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ownerRef := r.client.Collection("users").Doc(owner.ID)
		granteeRef := r.client.Collection("users").Doc(grantee.ID)

		if err := tx.Set(ownerRef, owner); err != nil {
			return err
		}
		return tx.Set(granteeRef, grantee)
	})

	if err != nil {
		logger.LogShareError(owner.ID, grantee.Email, err)
		return errors.Internal("Failed to save share", err)
	}
	return nil
}

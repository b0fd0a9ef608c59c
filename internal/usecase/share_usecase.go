package usecase

import (
	"context"

	"collabwish/internal/domain/entity"
	"collabwish/internal/domain/repository"
	"collabwish/pkg/errors"
	"collabwish/pkg/logger"
)

type ShareUseCase struct {
	userRepo repository.UserRepository
}

func NewShareUseCase(userRepo repository.UserRepository) *ShareUseCase {
	return &ShareUseCase{
		userRepo: userRepo,
	}
}

type ShareResult struct {
	Sender    *entity.User `json:"sender"`
	Recipient *entity.User `json:"recipient"`
}

// SharedWishlist is one entry of a grantee's shared view. A grant whose
// wishlist can no longer be found (renamed or owner gone) is returned
// with Resolved false instead of being silently dropped.
type SharedWishlist struct {
	Owner       string            `json:"owner"`
	WName       string            `json:"wName"`
	Resolved    bool              `json:"resolved"`
	List        []entity.WishItem `json:"list,omitempty"`
	HasAccessTo []string          `json:"hasAccessTo,omitempty"`
}

// Share grants the recipient read access to the owner's named wishlist.
// Both sides get an idempotent set-insert: the recipient's email on the
// wishlist's grant list, and an {ownerEmail, listName} record on the
// recipient's document. The two documents are written in one
// transaction.
func (uc *ShareUseCase) Share(ctx context.Context, ownerID, listName, toEmail string) (*ShareResult, error) {
	sender, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("Sender not found", nil)
		}
		return nil, err
	}

	wishlist := sender.FindWishlist(listName)
	if wishlist == nil {
		return nil, errors.NotFound("Wishlist not found", nil)
	}

	// Sharing with yourself aliases both sides to one document. Apply
	// both set-inserts to the same struct and save it once, otherwise
	// the second write would overwrite the first.
	if toEmail == sender.Email {
		if !wishlist.HasGrantFor(toEmail) {
			wishlist.HasAccessTo = append(wishlist.HasAccessTo, toEmail)
		}
		if !sender.HasGrantFrom(sender.Email, listName) {
			sender.HasAccessTo = append(sender.HasAccessTo, entity.AccessGrant{
				Email:    sender.Email,
				ListName: listName,
			})
		}

		if err := uc.userRepo.Save(ctx, sender); err != nil {
			return nil, err
		}

		logger.Info("Shared wishlist %q from %s to self", listName, sender.Email)
		return &ShareResult{Sender: sender, Recipient: sender}, nil
	}

	recipient, err := uc.userRepo.GetByEmail(ctx, toEmail)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.NotFound("Recipient not found", nil)
		}
		return nil, err
	}

	if !wishlist.HasGrantFor(toEmail) {
		wishlist.HasAccessTo = append(wishlist.HasAccessTo, toEmail)
	}
	if !recipient.HasGrantFrom(sender.Email, listName) {
		recipient.HasAccessTo = append(recipient.HasAccessTo, entity.AccessGrant{
			Email:    sender.Email,
			ListName: listName,
		})
	}

	if err := uc.userRepo.SaveSharePair(ctx, sender, recipient); err != nil {
		return nil, err
	}

	logger.Info("Shared wishlist %q from %s to %s", listName, sender.Email, toEmail)
	return &ShareResult{Sender: sender, Recipient: recipient}, nil
}

// ResolveShared re-fetches each granting owner fresh and re-scans for
// the named wishlist. Grants are weak references; rename does not
// update them, so a grant can go permanently unresolvable.
func (uc *ShareUseCase) ResolveShared(ctx context.Context, user *entity.User) ([]SharedWishlist, error) {
	shared := []SharedWishlist{}

	for _, grant := range user.HasAccessTo {
		owner, err := uc.userRepo.GetByEmail(ctx, grant.Email)
		if err != nil {
			if errors.Is(err, errors.CodeNotFound) {
				shared = append(shared, SharedWishlist{
					Owner: grant.Email,
					WName: grant.ListName,
				})
				continue
			}
			return nil, err
		}

		wishlist := owner.FindWishlist(grant.ListName)
		if wishlist == nil {
			shared = append(shared, SharedWishlist{
				Owner: grant.Email,
				WName: grant.ListName,
			})
			continue
		}

		shared = append(shared, SharedWishlist{
			Owner:       grant.Email,
			WName:       grant.ListName,
			Resolved:    true,
			List:        wishlist.List,
			HasAccessTo: wishlist.HasAccessTo,
		})
	}

	return shared, nil
}

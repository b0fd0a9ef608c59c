package usecase

import (
	"context"
	"time"

	"collabwish/internal/domain/entity"
	"collabwish/internal/domain/repository"
	"collabwish/pkg/errors"
)

type ReactionUseCase struct {
	userRepo repository.UserRepository
}

func NewReactionUseCase(userRepo repository.UserRepository) *ReactionUseCase {
	return &ReactionUseCase{
		userRepo: userRepo,
	}
}

type AddCommentInput struct {
	Email       string
	ListName    string
	ProductName string
	AuthorName  string
	Text        string
}

// AddEmoji appends the glyph to the item's emoji list. No dedup:
// grouping and counting are the client's concern.
func (uc *ReactionUseCase) AddEmoji(ctx context.Context, email, listName, productName, emoji string) (*entity.User, error) {
	user, item, err := uc.findItem(ctx, email, listName, productName)
	if err != nil {
		return nil, err
	}

	item.Emoji = append(item.Emoji, emoji)
	item.UpdatedAt = time.Now()

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// AddComment appends a comment record to the item. When the caller
// omits the author name it falls back to the list owner's stored name,
// matching the behavior existing clients depend on.
func (uc *ReactionUseCase) AddComment(ctx context.Context, input AddCommentInput) (*entity.User, error) {
	user, item, err := uc.findItem(ctx, input.Email, input.ListName, input.ProductName)
	if err != nil {
		return nil, err
	}

	authorName := input.AuthorName
	if authorName == "" {
		authorName = user.Name
	}

	item.Comment = append(item.Comment, entity.Comment{
		Name:      authorName,
		Email:     input.Email,
		Text:      input.Text,
		CreatedAt: time.Now(),
	})
	item.UpdatedAt = time.Now()

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *ReactionUseCase) findItem(ctx context.Context, email, listName, productName string) (*entity.User, *entity.WishItem, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	wishlist := user.FindWishlist(listName)
	if wishlist == nil {
		return nil, nil, errors.NotFound("Wishlist not found", nil)
	}

	item := wishlist.FindItem(productName)
	if item == nil {
		return nil, nil, errors.NotFound("Product not found in wishlist", nil)
	}

	return user, item, nil
}

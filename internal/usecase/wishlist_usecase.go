package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"collabwish/internal/domain/entity"
	"collabwish/internal/domain/repository"
	"collabwish/pkg/errors"
	"collabwish/pkg/logger"
)

type WishlistUseCase struct {
	userRepo repository.UserRepository
}

func NewWishlistUseCase(userRepo repository.UserRepository) *WishlistUseCase {
	return &WishlistUseCase{
		userRepo: userRepo,
	}
}

type EditItemInput struct {
	Email       string
	ListName    string
	OldName     string
	Product     entity.Product
	NewListName string
}

// CreateWishlist appends an empty wishlist to the owner's document.
// Name uniqueness is enforced by scan-before-insert only.
func (uc *WishlistUseCase) CreateWishlist(ctx context.Context, ownerID, name string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if user.FindWishlist(name) != nil {
		return nil, errors.Conflict("Wishlist already exists")
	}

	user.Wishlist = append(user.Wishlist, newWishlist(name))

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created wishlist %q for user %s", name, ownerID)
	return user, nil
}

// AddItem appends an item to the named wishlist, creating the wishlist
// on first add if it does not exist yet.
func (uc *WishlistUseCase) AddItem(ctx context.Context, ownerID, listName string, product entity.Product) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	wishlist := user.FindWishlist(listName)
	if wishlist == nil {
		user.Wishlist = append(user.Wishlist, newWishlist(listName))
		wishlist = &user.Wishlist[len(user.Wishlist)-1]
	}

	wishlist.List = append(wishlist.List, newWishItem(product))
	wishlist.UpdatedAt = time.Now()

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// EditItem updates an item's product fields in place, or moves the item
// to another wishlist when a different target list name is supplied.
// The move detaches the item from the source list and appends it to the
// target (created if absent); emoji and comments travel with it.
func (uc *WishlistUseCase) EditItem(ctx context.Context, input EditItemInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	wishlist := user.FindWishlist(input.ListName)
	if wishlist == nil {
		return nil, errors.NotFound("Wishlist not found", nil)
	}

	idx := -1
	for i := range wishlist.List {
		if wishlist.List[i].Product.Name == input.OldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.NotFound("Product not found in wishlist", nil)
	}

	now := time.Now()

	if input.NewListName != "" && input.NewListName != input.ListName {
		item := wishlist.List[idx]
		item.Product = input.Product
		item.UpdatedAt = now

		wishlist.List = append(wishlist.List[:idx], wishlist.List[idx+1:]...)
		wishlist.UpdatedAt = now

		target := user.FindWishlist(input.NewListName)
		if target == nil {
			user.Wishlist = append(user.Wishlist, newWishlist(input.NewListName))
			target = &user.Wishlist[len(user.Wishlist)-1]
		}
		target.List = append(target.List, item)
		target.UpdatedAt = now
	} else {
		wishlist.List[idx].Product = input.Product
		wishlist.List[idx].UpdatedAt = now
		wishlist.UpdatedAt = now
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RenameWishlist replaces the wishlist wholesale: the item and grant
// lists are deep-copied with persistence timestamps stripped, the old
// entry is deleted and a wishlist under the new name is appended.
// Outstanding grants issued against the old name are not updated.
func (uc *WishlistUseCase) RenameWishlist(ctx context.Context, email, oldName, newName string) (*entity.User, error) {
	if oldName == newName {
		return nil, errors.NoOp("Wishlist already has that name")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.FindWishlist(newName) != nil {
		return nil, errors.Conflict("Wishlist already exists")
	}

	idx := -1
	for i := range user.Wishlist {
		if user.Wishlist[i].WName == oldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.NotFound("Wishlist not found", nil)
	}

	old := user.Wishlist[idx]

	renamed := newWishlist(newName)
	renamed.List = cloneItems(old.List)
	renamed.HasAccessTo = append([]string{}, old.HasAccessTo...)

	user.Wishlist = append(user.Wishlist[:idx], user.Wishlist[idx+1:]...)
	user.Wishlist = append(user.Wishlist, renamed)

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Renamed wishlist %q to %q for %s", oldName, newName, email)
	return user, nil
}

func newWishlist(name string) entity.Wishlist {
	now := time.Now()
	return entity.Wishlist{
		ID:          uuid.New().String(),
		WName:       name,
		List:        []entity.WishItem{},
		HasAccessTo: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newWishItem(product entity.Product) entity.WishItem {
	now := time.Now()
	return entity.WishItem{
		ID:        uuid.New().String(),
		Product:   product,
		Emoji:     []string{},
		Comment:   []entity.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// cloneItems deep-copies a wishlist's items with timestamp fields
// stripped, so the rewritten document passes strict schema validation
// on nested writes.
func cloneItems(items []entity.WishItem) []entity.WishItem {
	cloned := make([]entity.WishItem, 0, len(items))
	for _, item := range items {
		comments := make([]entity.Comment, 0, len(item.Comment))
		for _, c := range item.Comment {
			comments = append(comments, entity.Comment{
				Name:  c.Name,
				Email: c.Email,
				Text:  c.Text,
			})
		}

		cloned = append(cloned, entity.WishItem{
			ID:      item.ID,
			Product: item.Product,
			Emoji:   append([]string{}, item.Emoji...),
			Comment: comments,
		})
	}
	return cloned
}

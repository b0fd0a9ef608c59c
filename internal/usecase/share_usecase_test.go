package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabwish/internal/domain/entity"
	"collabwish/pkg/errors"
)

func TestShareGrantsBothSides(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "Alice", "a@x.com")
	seedUser(repo, "u2", "Bob", "b@x.com")
	wishlistUC := NewWishlistUseCase(repo)
	shareUC := NewShareUseCase(repo)

	_, err := wishlistUC.CreateWishlist(context.Background(), "u1", "Birthday")
	require.NoError(t, err)

	result, err := shareUC.Share(context.Background(), "u1", "Birthday", "b@x.com")
	require.NoError(t, err)

	senderList := result.Sender.FindWishlist("Birthday")
	require.NotNil(t, senderList)
	assert.Equal(t, []string{"b@x.com"}, senderList.HasAccessTo)

	require.Len(t, result.Recipient.HasAccessTo, 1)
	assert.Equal(t, entity.AccessGrant{Email: "a@x.com", ListName: "Birthday"}, result.Recipient.HasAccessTo[0])

	// Both documents persisted.
	assert.Equal(t, []string{"b@x.com"}, repo.mustGet("u1").FindWishlist("Birthday").HasAccessTo)
	assert.Len(t, repo.mustGet("u2").HasAccessTo, 1)
}

func TestShareTwiceIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "Alice", "a@x.com")
	seedUser(repo, "u2", "Bob", "b@x.com")
	wishlistUC := NewWishlistUseCase(repo)
	shareUC := NewShareUseCase(repo)

	_, err := wishlistUC.CreateWishlist(context.Background(), "u1", "Birthday")
	require.NoError(t, err)

	_, err = shareUC.Share(context.Background(), "u1", "Birthday", "b@x.com")
	require.NoError(t, err)
	_, err = shareUC.Share(context.Background(), "u1", "Birthday", "b@x.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"b@x.com"}, repo.mustGet("u1").FindWishlist("Birthday").HasAccessTo)
	assert.Len(t, repo.mustGet("u2").HasAccessTo, 1)
}

func TestShareWithSelfKeepsBothSides(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "Alice", "a@x.com")
	wishlistUC := NewWishlistUseCase(repo)
	shareUC := NewShareUseCase(repo)

	_, err := wishlistUC.CreateWishlist(context.Background(), "u1", "Birthday")
	require.NoError(t, err)

	// Owner and grantee are the same document; both grant records must
	// survive the single save.
	result, err := shareUC.Share(context.Background(), "u1", "Birthday", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, result.Sender, result.Recipient)

	stored := repo.mustGet("u1")
	assert.Equal(t, []string{"a@x.com"}, stored.FindWishlist("Birthday").HasAccessTo)
	require.Len(t, stored.HasAccessTo, 1)
	assert.Equal(t, entity.AccessGrant{Email: "a@x.com", ListName: "Birthday"}, stored.HasAccessTo[0])

	// And it stays idempotent.
	_, err = shareUC.Share(context.Background(), "u1", "Birthday", "a@x.com")
	require.NoError(t, err)
	stored = repo.mustGet("u1")
	assert.Equal(t, []string{"a@x.com"}, stored.FindWishlist("Birthday").HasAccessTo)
	assert.Len(t, stored.HasAccessTo, 1)
}

func TestShareMissingParties(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "Alice", "a@x.com")
	wishlistUC := NewWishlistUseCase(repo)
	shareUC := NewShareUseCase(repo)

	_, err := shareUC.Share(context.Background(), "ghost", "Birthday", "b@x.com")
	require.Error(t, err)
	assert.Equal(t, "Sender not found", err.(*errors.AppError).Message)

	_, err = shareUC.Share(context.Background(), "u1", "Birthday", "b@x.com")
	require.Error(t, err)
	assert.Equal(t, "Wishlist not found", err.(*errors.AppError).Message)

	_, err = wishlistUC.CreateWishlist(context.Background(), "u1", "Birthday")
	require.NoError(t, err)

	_, err = shareUC.Share(context.Background(), "u1", "Birthday", "ghost@x.com")
	require.Error(t, err)
	assert.Equal(t, "Recipient not found", err.(*errors.AppError).Message)
}

func TestShareAndResolveScenario(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "Alice", "a@x.com")
	seedUser(repo, "u2", "Bob", "b@x.com")
	wishlistUC := NewWishlistUseCase(repo)
	shareUC := NewShareUseCase(repo)

	_, err := wishlistUC.CreateWishlist(context.Background(), "u1", "Birthday")
	require.NoError(t, err)
	_, err = wishlistUC.AddItem(context.Background(), "u1", "Birthday", entity.Product{
		Name:     "Book",
		ImageURL: "http://i/1.png",
		Price:    "10",
	})
	require.NoError(t, err)
	_, err = shareUC.Share(context.Background(), "u1", "Birthday", "b@x.com")
	require.NoError(t, err)

	grantee := repo.mustGet("u2")
	shared, err := shareUC.ResolveShared(context.Background(), grantee)
	require.NoError(t, err)

	require.Len(t, shared, 1)
	assert.Equal(t, "a@x.com", shared[0].Owner)
	assert.Equal(t, "Birthday", shared[0].WName)
	assert.True(t, shared[0].Resolved)
	require.Len(t, shared[0].List, 1)
	assert.Equal(t, "Book", shared[0].List[0].Product.Name)
	assert.Equal(t, "http://i/1.png", shared[0].List[0].Product.ImageURL)
}

func TestResolveSharedStaleGrant(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "Alice", "a@x.com")
	seedUser(repo, "u2", "Bob", "b@x.com")
	wishlistUC := NewWishlistUseCase(repo)
	shareUC := NewShareUseCase(repo)

	_, err := wishlistUC.CreateWishlist(context.Background(), "u1", "Birthday")
	require.NoError(t, err)
	_, err = shareUC.Share(context.Background(), "u1", "Birthday", "b@x.com")
	require.NoError(t, err)

	// Rename invalidates the outstanding grant: it still points at the
	// old name and must surface as unresolved, not vanish.
	_, err = wishlistUC.RenameWishlist(context.Background(), "a@x.com", "Birthday", "Bday")
	require.NoError(t, err)

	grantee := repo.mustGet("u2")
	shared, err := shareUC.ResolveShared(context.Background(), grantee)
	require.NoError(t, err)

	require.Len(t, shared, 1)
	assert.Equal(t, "a@x.com", shared[0].Owner)
	assert.Equal(t, "Birthday", shared[0].WName)
	assert.False(t, shared[0].Resolved)
	assert.Empty(t, shared[0].List)
}

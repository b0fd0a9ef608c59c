package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCreates(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	user, created, err := uc.RegisterUser(context.Background(), RegisterUserInput{
		Name:     "Alice",
		Email:    "a@x.com",
		ImageURL: "http://i/a.png",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Empty(t, user.Wishlist)
	assert.Empty(t, user.HasAccessTo)
}

func TestRegisterUserIsIdempotentByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	first, created, err := uc.RegisterUser(context.Background(), RegisterUserInput{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)
	require.True(t, created)

	// Second contact returns the existing record untouched, even with
	// a different display name.
	second, created, err := uc.RegisterUser(context.Background(), RegisterUserInput{Name: "Alicia", Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice", second.Name)
}

func TestRegisterUserEmailIsCaseSensitive(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	_, created, err := uc.RegisterUser(context.Background(), RegisterUserInput{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)
	require.True(t, created)

	// Emails match exactly as stored; a different casing is a new user.
	_, created, err = uc.RegisterUser(context.Background(), RegisterUserInput{Name: "Alice", Email: "A@x.com"})
	require.NoError(t, err)
	assert.True(t, created)
}

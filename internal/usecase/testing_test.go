package usecase

import (
	"context"
	"encoding/json"
	"time"

	"collabwish/internal/domain/entity"
	"collabwish/pkg/errors"
)

// fakeUserRepo is an in-memory UserRepository. Reads hand out deep
// copies so unsaved mutations cannot leak into the store, mirroring
// the read-modify-write contract of the Firestore implementation.
type fakeUserRepo struct {
	users     map[string]*entity.User
	saveCount int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*entity.User),
	}
}

func cloneUser(u *entity.User) *entity.User {
	data, err := json.Marshal(u)
	if err != nil {
		panic(err)
	}
	var cloned entity.User
	if err := json.Unmarshal(data, &cloned); err != nil {
		panic(err)
	}
	return &cloned
}

func (f *fakeUserRepo) seed(u *entity.User) {
	f.users[u.ID] = cloneUser(u)
}

func (f *fakeUserRepo) mustGet(id string) *entity.User {
	u, ok := f.users[id]
	if !ok {
		panic("user not seeded: " + id)
	}
	return cloneUser(u)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = cloneUser(user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User not found", nil)
	}
	return cloneUser(u), nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, errors.NotFound("User not found", nil)
}

func (f *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	f.users[user.ID] = cloneUser(user)
	f.saveCount++
	return nil
}

func (f *fakeUserRepo) SaveSharePair(ctx context.Context, owner, grantee *entity.User) error {
	now := time.Now()
	owner.UpdatedAt = now
	grantee.UpdatedAt = now
	f.users[owner.ID] = cloneUser(owner)
	f.users[grantee.ID] = cloneUser(grantee)
	f.saveCount++
	return nil
}

func seedUser(repo *fakeUserRepo, id, name, email string) *entity.User {
	u := &entity.User{
		ID:          id,
		Name:        name,
		Email:       email,
		Wishlist:    []entity.Wishlist{},
		HasAccessTo: []entity.AccessGrant{},
	}
	repo.seed(u)
	return u
}

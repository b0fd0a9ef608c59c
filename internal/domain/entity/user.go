package entity

import (
	"time"
)

// User is stored as a single document: the owned wishlists and the
// grants received from other users are embedded by value, mirroring
// the original document layout the web client was built against.
type User struct {
	ID          string        `json:"_id" firestore:"id"`
	Name        string        `json:"name" firestore:"name"`
	Email       string        `json:"email" firestore:"email"`
	ImageURL    string        `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	Wishlist    []Wishlist    `json:"wishlist" firestore:"wishlist"`
	HasAccessTo []AccessGrant `json:"hasAccessTo" firestore:"hasAccessTo"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Wishlist name (WName) is the API lookup key and must be unique per
// owner; uniqueness is enforced by scan-before-insert only. ID is
// generated at creation; rename is delete-then-reinsert, so a renamed
// wishlist gets a fresh ID.
type Wishlist struct {
	ID          string     `json:"id" firestore:"id"`
	WName       string     `json:"wName" firestore:"wName"`
	List        []WishItem `json:"list" firestore:"list"`
	HasAccessTo []string   `json:"hasAccessTo" firestore:"hasAccessTo"`

	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// WishItem embeds the product fields directly; Product.Name acts as
// the de facto item key within a list. Emoji is a multiset in
// insertion order, no dedup.
type WishItem struct {
	ID      string    `json:"id" firestore:"id"`
	Product Product   `json:"product" firestore:"product"`
	Emoji   []string  `json:"emoji" firestore:"emoji"`
	Comment []Comment `json:"comment" firestore:"comment"`

	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

type Comment struct {
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
	Text  string `json:"text" firestore:"text"`

	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}

// AccessGrant is the grantee-side record of a share: a weak reference
// to an owner's wishlist by (owner email, list name). Resolving it
// requires a fresh lookup of the owner document.
type AccessGrant struct {
	Email    string `json:"email" firestore:"email"`
	ListName string `json:"listName" firestore:"listName"`
}

// FindWishlist returns the first wishlist with the given name, or nil.
func (u *User) FindWishlist(name string) *Wishlist {
	for i := range u.Wishlist {
		if u.Wishlist[i].WName == name {
			return &u.Wishlist[i]
		}
	}
	return nil
}

// FindItem returns the first item whose product name matches, or nil.
// Duplicate product names within one list bind to the first match.
func (w *Wishlist) FindItem(productName string) *WishItem {
	for i := range w.List {
		if w.List[i].Product.Name == productName {
			return &w.List[i]
		}
	}
	return nil
}

// HasGrantFor reports whether the grantee email is already on the
// wishlist's grant list.
func (w *Wishlist) HasGrantFor(email string) bool {
	for _, e := range w.HasAccessTo {
		if e == email {
			return true
		}
	}
	return false
}

// HasGrantFrom reports whether the user already holds a grant for the
// given owner email and list name.
func (u *User) HasGrantFrom(ownerEmail, listName string) bool {
	for _, g := range u.HasAccessTo {
		if g.Email == ownerEmail && g.ListName == listName {
			return true
		}
	}
	return false
}

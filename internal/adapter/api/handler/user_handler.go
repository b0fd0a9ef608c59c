package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"collabwish/internal/domain/entity"
	"collabwish/internal/usecase"
	"collabwish/pkg/response"
)

type UserHandler struct {
	userUseCase  *usecase.UserUseCase
	shareUseCase *usecase.ShareUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, shareUseCase *usecase.ShareUseCase) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		shareUseCase: shareUseCase,
	}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

// getWishResponse carries the combined own/shared view; it is the one
// endpoint whose envelope is not {message, payload}.
type getWishResponse struct {
	Message         string                   `json:"message"`
	OwnWishlists    []entity.Wishlist        `json:"ownWishlists"`
	SharedWishlists []usecase.SharedWishlist `json:"sharedWishlists"`
}

// CreateUser is the lazy upsert the front end calls after sign-in:
// 200 with the existing record, or 201 with a fresh one.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, created, err := h.userUseCase.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if created {
		return response.Created(c, user.Name, user)
	}
	return response.OK(c, user.Name, user)
}

// GetWishboards returns the user's own wishlists plus every shared
// wishlist their grants resolve to.
func (h *UserHandler) GetWishboards(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.DataInsufficient(c)
	}

	user, err := h.userUseCase.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	shared, err := h.shareUseCase.ResolveShared(c.Request().Context(), user)
	if err != nil {
		return response.Error(c, err)
	}

	own := user.Wishlist
	if own == nil {
		own = []entity.Wishlist{}
	}

	return c.JSON(http.StatusOK, getWishResponse{
		Message:         "ok",
		OwnWishlists:    own,
		SharedWishlists: shared,
	})
}

package handler

import (
	"github.com/labstack/echo/v4"

	"collabwish/internal/domain/entity"
	"collabwish/internal/usecase"
	"collabwish/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type createWishlistRequest struct {
	BaseID string `json:"baseId" validate:"required"`
	WName  string `json:"wName" validate:"required"`
}

type addWishRequest struct {
	Name     string `json:"name" validate:"required"`
	BaseID   string `json:"baseId" validate:"required"`
	ListName string `json:"listName" validate:"required"`
	ImageURL string `json:"imageUrl"`
	Price    string `json:"price"`
}

type editWishItemRequest struct {
	Email    string `json:"email" validate:"required"`
	WName    string `json:"wName" validate:"required"`
	OldName  string `json:"oldName" validate:"required"`
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"imageUrl"`
	Price    string `json:"price"`
	NewWName string `json:"newWName"`
}

type renameWishlistRequest struct {
	Email   string `json:"email" validate:"required"`
	OldName string `json:"oldName" validate:"required"`
	NewName string `json:"newName" validate:"required"`
}

func (h *WishlistHandler) CreateWishlist(c echo.Context) error {
	var req createWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.wishlistUseCase.CreateWishlist(c.Request().Context(), req.BaseID, req.WName)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Wishlist created", user)
}

func (h *WishlistHandler) AddWish(c echo.Context) error {
	var req addWishRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.wishlistUseCase.AddItem(c.Request().Context(), req.BaseID, req.ListName, entity.Product{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Price:    req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, "Product added to wishlist", user)
}

func (h *WishlistHandler) EditWishItem(c echo.Context) error {
	var req editWishItemRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.wishlistUseCase.EditItem(c.Request().Context(), usecase.EditItemInput{
		Email:    req.Email,
		ListName: req.WName,
		OldName:  req.OldName,
		Product: entity.Product{
			Name:     req.Name,
			ImageURL: req.ImageURL,
			Price:    req.Price,
		},
		NewListName: req.NewWName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, "Wishlist item updated", user)
}

func (h *WishlistHandler) RenameWishlist(c echo.Context) error {
	var req renameWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.wishlistUseCase.RenameWishlist(c.Request().Context(), req.Email, req.OldName, req.NewName)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, "Wishlist renamed", user)
}

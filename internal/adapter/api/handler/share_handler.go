package handler

import (
	"github.com/labstack/echo/v4"

	"collabwish/internal/usecase"
	"collabwish/pkg/response"
)

type ShareHandler struct {
	shareUseCase *usecase.ShareUseCase
}

func NewShareHandler(shareUseCase *usecase.ShareUseCase) *ShareHandler {
	return &ShareHandler{
		shareUseCase: shareUseCase,
	}
}

type shareRequest struct {
	BaseID  string `json:"baseId" validate:"required"`
	Name    string `json:"name" validate:"required"`
	ToEmail string `json:"toEmail" validate:"required"`
}

func (h *ShareHandler) ShareWishlist(c echo.Context) error {
	var req shareRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.shareUseCase.Share(c.Request().Context(), req.BaseID, req.Name, req.ToEmail)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, "Wishlist shared successfully", result)
}

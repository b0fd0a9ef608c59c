package handler

import (
	"github.com/labstack/echo/v4"

	"collabwish/internal/usecase"
	"collabwish/pkg/response"
)

type ReactionHandler struct {
	reactionUseCase *usecase.ReactionUseCase
}

func NewReactionHandler(reactionUseCase *usecase.ReactionUseCase) *ReactionHandler {
	return &ReactionHandler{
		reactionUseCase: reactionUseCase,
	}
}

// name = wishlist name, pName = product name, as in the legacy API.
type addEmojiRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name" validate:"required"`
	PName string `json:"pName" validate:"required"`
	Emoji string `json:"emoji" validate:"required"`
}

type addCommentRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	PName    string `json:"pName" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
	UserName string `json:"userName"`
}

func (h *ReactionHandler) AddEmoji(c echo.Context) error {
	var req addEmojiRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.reactionUseCase.AddEmoji(c.Request().Context(), req.Email, req.Name, req.PName, req.Emoji)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, "Emoji added", user)
}

func (h *ReactionHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.DataInsufficient(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.reactionUseCase.AddComment(c.Request().Context(), usecase.AddCommentInput{
		Email:       req.Email,
		ListName:    req.Name,
		ProductName: req.PName,
		AuthorName:  req.UserName,
		Text:        req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, "Comment added", user)
}

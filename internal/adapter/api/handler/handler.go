package handler

import (
	"collabwish/internal/usecase"
)

var (
	userHandler     *UserHandler
	wishlistHandler *WishlistHandler
	shareHandler    *ShareHandler
	reactionHandler *ReactionHandler
	productHandler  *ProductHandler
	healthHandler   *HealthHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	shareUseCase *usecase.ShareUseCase,
	reactionUseCase *usecase.ReactionUseCase,
	productUseCase *usecase.ProductUseCase,
) {
	userHandler = NewUserHandler(userUseCase, shareUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	shareHandler = NewShareHandler(shareUseCase)
	reactionHandler = NewReactionHandler(reactionUseCase)
	productHandler = NewProductHandler(productUseCase)
	healthHandler = NewHealthHandler()
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetShareHandler() *ShareHandler {
	return shareHandler
}

func GetReactionHandler() *ReactionHandler {
	return reactionHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

package router

import (
	"github.com/labstack/echo/v4"

	"collabwish/internal/adapter/api/handler"
	"collabwish/internal/adapter/api/middleware"
)

// SetupUserRouter mounts the legacy /user surface the web client was
// built against. Paths and bodies are compatibility-frozen.
func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	userHandler := handler.GetUserHandler()
	wishlistHandler := handler.GetWishlistHandler()
	shareHandler := handler.GetShareHandler()
	reactionHandler := handler.GetReactionHandler()
	productHandler := handler.GetProductHandler()

	user := e.Group("/user")
	user.Use(authMiddleware.OptionalVerify)

	user.GET("/getwish/:email", userHandler.GetWishboards)
	user.GET("/products", productHandler.ListProducts)

	mutations := user.Group("")
	mutations.Use(rateLimiter.Middleware())

	mutations.POST("/user", userHandler.CreateUser)
	mutations.POST("/createwishlist", wishlistHandler.CreateWishlist)
	mutations.POST("/wish", wishlistHandler.AddWish)
	mutations.POST("/editwishitem", wishlistHandler.EditWishItem)
	mutations.POST("/renamewishlist", wishlistHandler.RenameWishlist)
	mutations.POST("/share", shareHandler.ShareWishlist)
	mutations.POST("/emoji", reactionHandler.AddEmoji)
	mutations.POST("/comment", reactionHandler.AddComment)
}

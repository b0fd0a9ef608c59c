package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"collabwish/internal/adapter/api"
	"collabwish/internal/adapter/api/handler"
	apimiddleware "collabwish/internal/adapter/api/middleware"
	"collabwish/internal/adapter/api/router"
	"collabwish/internal/adapter/repository"
	"collabwish/internal/usecase"
	"collabwish/pkg/config"
	"collabwish/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.SetEnvironment(cfg.Environment)

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) with a
	// file-path fallback for local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)

	userUseCase := usecase.NewUserUseCase(userRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(userRepo)
	shareUseCase := usecase.NewShareUseCase(userRepo)
	reactionUseCase := usecase.NewReactionUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)

	handler.Setup(userUseCase, wishlistUseCase, shareUseCase, reactionUseCase, productUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	rateLimiter := apimiddleware.NewRateLimiter(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	router.Setup(e, authMiddleware, rateLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

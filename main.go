package main

import (
	"context"
	"log"
	"os"

	"feedgram/cmd/cli"
	authRepo "feedgram/internal/auth/repository"
	authUsecase "feedgram/internal/auth/usecase"
	feedUsecase "feedgram/internal/feed/usecase"
	"feedgram/pkg/config"
	"feedgram/pkg/feedapi"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Session store: the single owner of the persisted token/user pair.
	sessions := authRepo.NewFileSessionRepository(cfg.DataDir)

	// API client reads the token from the store on every request.
	client := feedapi.NewClient(cfg.APIBaseURL, sessions)

	// Initialize controllers (dependency injection)
	auth := authUsecase.NewAuthUsecase(client, sessions)
	feed := feedUsecase.NewPostFeed(client, auth.CurrentUser, cfg.PageSize)
	users := feedUsecase.NewUserDirectory(client, cfg.PageSize)
	mine := feedUsecase.NewMyPosts(client)
	composer := feedUsecase.NewComposer(client)

	app := cli.New(client, auth, feed, users, mine, composer, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		log.Fatal("feedgram exited:", err)
	}
}

// Copyright (c) 2025 Bizboard
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sojang/bizboard/comments"
	commentHandlers "github.com/sojang/bizboard/comments/handlers"
	commentRepository "github.com/sojang/bizboard/comments/repository"
	commentServices "github.com/sojang/bizboard/comments/services"
	"github.com/sojang/bizboard/internal/cache"
	"github.com/sojang/bizboard/internal/database/postgres"
	"github.com/sojang/bizboard/internal/middleware/requestid"
	"github.com/sojang/bizboard/internal/pkg/log"
	platformconfig "github.com/sojang/bizboard/internal/platform/config"
	"github.com/sojang/bizboard/likes"
	likeHandlers "github.com/sojang/bizboard/likes/handlers"
	likeRepository "github.com/sojang/bizboard/likes/repository"
	likeServices "github.com/sojang/bizboard/likes/services"
	"github.com/sojang/bizboard/posts"
	postHandlers "github.com/sojang/bizboard/posts/handlers"
	postRepository "github.com/sojang/bizboard/posts/repository"
	postServices "github.com/sojang/bizboard/posts/services"
	"github.com/sojang/bizboard/reports"
	reportHandlers "github.com/sojang/bizboard/reports/handlers"
	reportRepository "github.com/sojang/bizboard/reports/repository"
	reportServices "github.com/sojang/bizboard/reports/services"
	tagRepository "github.com/sojang/bizboard/tags/repository"
	tagServices "github.com/sojang/bizboard/tags/services"
)

func main() {
	config, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Database.Postgres.ConnectTimeout)
	defer cancel()

	dbClient, err := postgres.NewClient(ctx, &config.Database.Postgres)
	if err != nil {
		log.Error("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	appCache, err := cache.New(&config.Cache)
	if err != nil {
		log.Error("failed to initialize cache: %v", err)
		os.Exit(1)
	}
	defer appCache.Close()

	// Repositories
	postRepo := postRepository.NewPostgresPostRepository(dbClient)
	likeRepo := likeRepository.NewPostgresLikeRepository(dbClient)
	commentRepo := commentRepository.NewPostgresCommentRepository(dbClient)
	reportRepo := reportRepository.NewPostgresReportRepository(dbClient)
	tagRepo := tagRepository.NewPostgresTagRepository(dbClient)

	// Services
	tagService := tagServices.NewTagService(tagRepo)
	postService := postServices.NewPostService(
		postRepo, likeRepo, commentRepo, reportRepo, tagService,
		appCache, config.Cache.Prefix, config.Cache.TTL,
	)
	likeService := likeServices.NewLikeService(likeRepo, postRepo, appCache, config.Cache.Prefix)
	commentService := commentServices.NewCommentService(commentRepo, postRepo)
	reportService := reportServices.NewReportService(reportRepo, postRepo)

	app := fiber.New(fiber.Config{
		AppName:      "bizboard",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := dbClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	posts.RegisterRoutes(app, &posts.PostsHandlers{
		PostHandler: postHandlers.NewPostHandler(postService),
	})
	likes.RegisterRoutes(app, &likes.LikesHandlers{
		LikeHandler: likeHandlers.NewLikeHandler(likeService),
	})
	comments.RegisterRoutes(app, &comments.CommentsHandlers{
		CommentHandler: commentHandlers.NewCommentHandler(commentService),
	})
	reports.RegisterRoutes(app, &reports.ReportsHandlers{
		ReportHandler: reportHandlers.NewReportHandler(reportService),
	})

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("server shutdown failed: %v", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	log.Info("starting server on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Error("server stopped: %v", err)
		os.Exit(1)
	}
}

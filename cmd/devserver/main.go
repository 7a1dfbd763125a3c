// devserver is a local stand-in for the deployed feed API: same routes,
// same success shapes, same error wording, backed by in-memory state. It
// exists so the client can be exercised end to end without the real
// backend.
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"feedgram/pkg/config"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal("Failed to create upload dir:", err)
	}

	r := newRouter(cfg)

	log.Printf("Dev server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start dev server:", err)
	}
}

func newRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	h := newHandler(newMemoryStore(), cfg)

	r.GET("/healthcheck", h.healthcheck)
	r.POST("/users", h.register)
	r.POST("/login", h.login)
	r.GET("/users", h.listUsers)
	r.GET("/users/:id", h.getUser)
	r.GET("/posts", h.listPosts)
	r.Static("/uploads", cfg.UploadDir)

	protected := r.Group("/")
	protected.Use(authRequired(cfg.JWTSecret))
	{
		protected.GET("/my-posts", h.myPosts)
		protected.POST("/posts", h.createPost)
		protected.DELETE("/posts/:id", h.deletePost)
	}

	return r
}

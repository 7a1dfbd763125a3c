package main

import (
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authdomain "feedgram/internal/auth/domain"
	feeddomain "feedgram/internal/feed/domain"
	"feedgram/pkg/config"
)

type handler struct {
	store *memoryStore
	cfg   *config.Config
}

func newHandler(store *memoryStore, cfg *config.Config) *handler {
	return &handler{store: store, cfg: cfg}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	acc, ok := h.store.createAccount(req.Name, req.Email, string(hash))
	if !ok {
		// Wording matters: the client classifies errors by message substrings.
		c.JSON(http.StatusConflict, gin.H{"message": "A user with this email already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    toUser(acc),
	})
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	acc := h.store.findByEmail(req.Email)
	if acc == nil || bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.issueToken(acc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jwt":  token,
		"user": toUser(acc),
	})
}

func (h *handler) issueToken(acc *account) (string, error) {
	claims := jwt.MapClaims{
		"user_id": acc.ID,
		"email":   acc.Email,
		"exp":     time.Now().Add(h.cfg.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *handler) listUsers(c *gin.Context) {
	page, limit := pageParams(c)
	accounts, total := h.store.listAccounts(page, limit)
	users := make([]authdomain.User, 0, len(accounts))
	for _, acc := range accounts {
		users = append(users, toUser(acc))
	}
	c.JSON(http.StatusOK, gin.H{"count": total, "users": users})
}

func (h *handler) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}
	acc := h.store.findByID(id)
	if acc == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, toUser(acc))
}

func (h *handler) listPosts(c *gin.Context) {
	page, limit := pageParams(c)
	posts, total := h.store.listPosts(page, limit)
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": total})
}

func (h *handler) myPosts(c *gin.Context) {
	userID := c.GetInt64("userID")
	c.JSON(http.StatusOK, h.store.postsByUser(userID))
}

func (h *handler) createPost(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and content are required"})
		return
	}
	file, err := c.FormFile("foto")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "foto is required"})
		return
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store upload"})
		return
	}

	post := feeddomain.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		PhotoURL:  "/uploads/" + name,
		UserID:    strconv.FormatInt(c.GetInt64("userID"), 10),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	h.store.addPost(post)
	c.JSON(http.StatusCreated, post)
}

func (h *handler) deletePost(c *gin.Context) {
	post, ok := h.store.findPost(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	owner := strconv.FormatInt(c.GetInt64("userID"), 10)
	if post.UserID != owner {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized: you can only delete your own posts"})
		return
	}
	h.store.deletePost(post.ID)
	c.Status(http.StatusNoContent)
}

func (h *handler) healthcheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func toUser(acc *account) authdomain.User {
	return authdomain.User{
		ID:        acc.ID,
		Name:      acc.Name,
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gcamargo/vendas-app/internal/auth"
	"github.com/gcamargo/vendas-app/internal/httpx"
	"github.com/gcamargo/vendas-app/internal/models"
)

type AuthHandler struct {
	DB       *gorm.DB
	TokenTTL time.Duration
}

func NewAuthHandler(db *gorm.DB, ttl time.Duration) *AuthHandler {
	return &AuthHandler{DB: db, TokenTTL: ttl}
}

// Login: POST /api/auth/login {username,password} -> {token,username}.
// Unknown user and wrong password answer the same 401 so the response does not
// leak which usernames exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	var user models.User
	if err := h.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	token, err := auth.IssueToken(user.ID, user.Username, h.TokenTTL)
	if err != nil {
		log.Printf("login: token issue failed for %q: %v", user.Username, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"token": token, "username": user.Username})
}

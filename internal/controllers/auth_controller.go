package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fastroom/reservasi_backend/internal/models"
	"github.com/fastroom/reservasi_backend/internal/utils"
	"github.com/fastroom/reservasi_backend/internal/validation"
)

type AuthController struct {
	DB *gorm.DB
}

type registerRequest struct {
	Username string         `json:"username" form:"username"`
	Nim      FlexibleString `json:"nim" form:"nim"`
	Password string         `json:"password" form:"password"`
}

type loginRequest struct {
	Nim      FlexibleString `json:"nim" form:"nim"`
	Password string         `json:"password" form:"password"`
}

// Register handles POST /register. Only the bcrypt hash of the password is
// persisted; the response never echoes the password.
func (a *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide username, nim and password", err)
		return
	}
	missing := validation.Missing(map[string]string{
		"username": req.Username,
		"nim":      req.Nim.String(),
		"password": req.Password,
	})
	if len(missing) > 0 {
		respondError(c, http.StatusBadRequest, "Please provide username, nim and password", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Str("nim", req.Nim.String()).Msg("hash password")
		respondError(c, http.StatusInternalServerError, "Failed to register user", err)
		return
	}

	acct := models.Account{
		Username: req.Username,
		Nim:      req.Nim.String(),
		Password: hashed,
	}
	if err := a.DB.Create(&acct).Error; err != nil {
		log.Error().Err(err).Str("nim", acct.Nim).Msg("insert account")
		respondError(c, http.StatusInternalServerError, "Failed to register user", err)
		return
	}
	respondOK(c, "User registered successfully", gin.H{
		"id":       acct.ID,
		"username": acct.Username,
		"nim":      acct.Nim,
	})
}

// Login handles POST /login. The two 401 outcomes stay distinguishable:
// unknown nim answers "NIM tidak ditemukan.", a wrong password answers
// "Password salah.". No session artifact is issued.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide nim and password", err)
		return
	}
	missing := validation.Missing(map[string]string{
		"nim":      req.Nim.String(),
		"password": req.Password,
	})
	if len(missing) > 0 {
		respondError(c, http.StatusBadRequest, "Please provide nim and password", nil)
		return
	}

	var acct models.Account
	if err := a.DB.Where("nim = ?", req.Nim.String()).First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusUnauthorized, "NIM tidak ditemukan.", nil)
			return
		}
		log.Error().Err(err).Str("nim", req.Nim.String()).Msg("login query")
		respondError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	ok, err := utils.CheckPassword(acct.Password, req.Password)
	if err != nil {
		log.Error().Err(err).Str("nim", acct.Nim).Msg("verify password")
		respondError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}
	if !ok {
		respondError(c, http.StatusUnauthorized, "Password salah.", nil)
		return
	}

	respondOK(c, "Login berhasil", gin.H{
		"id":       acct.ID,
		"username": acct.Username,
		"nim":      acct.Nim,
	})
}

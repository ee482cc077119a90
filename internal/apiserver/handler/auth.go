package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/dto"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup creates a new account and its first user. The first user is
// always a SuperAdmin.
func (h *Handler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		i18n.RespondWithError(c, i18n.ErrorInvalidEmail.WithParam("Email", req.Email))
		return
	}
	accountName := strings.TrimSpace(req.AccountName)
	if accountName == "" {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", "account name is required"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	now := time.Now()
	account := &database.Account{
		ID:        uuid.NewString(),
		Name:      accountName,
		Status:    database.AccountActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &database.User{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Email:     email,
		Password:  string(hashed),
		Role:      authz.RoleSuperAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = h.db.Transaction(c.Request.Context(), func(ctx context.Context) error {
		if _, err := h.db.GetAccountByName(ctx, accountName); err == nil {
			return i18n.ErrorAccountNameTaken.WithParam("Name", accountName)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := h.db.GetUserByEmail(ctx, email); err == nil {
			return i18n.ErrorEmailExists.WithParam("Email", email)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := h.db.CreateAccount(ctx, account); err != nil {
			return err
		}
		return h.db.CreateUser(ctx, user)
	})
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	h.logger.Info("account created",
		zap.String("account_id", account.ID),
		zap.String("account_name", account.Name))

	token, err := h.jwtService.GenerateToken(user.ID, user.AccountID, user.Email, string(user.Role))
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userInfo(user),
	})
}

// Login handles user login
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
		return
	}

	account, err := h.db.GetAccount(c.Request.Context(), user.AccountID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}
	if account.Status != database.AccountActive {
		i18n.RespondWithError(c, i18n.ErrorAccountSuspended)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.AccountID, user.Email, string(user.Role))
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userInfo(user),
	})
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, userInfo(user))
}

// ChangePassword handles password change requests
func (h *Handler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return
	}

	user, err := h.currentUser(c)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidOldPassword)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	user.Password = string(hashed)
	user.UpdatedAt = time.Now()
	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	i18n.RespondOK(c, i18n.SuccessPasswordChanged, nil, nil)
}

func userInfo(u *database.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:        u.ID,
		AccountID: u.AccountID,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}

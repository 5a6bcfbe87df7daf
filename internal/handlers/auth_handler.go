package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	ucUser "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/user"
)

type AuthHandler struct {
	register *ucUser.Register
	login    *ucUser.Login
	forgot   *ucUser.ForgotPassword
	reset    *ucUser.ResetPassword
}

func NewAuthHandler(
	register *ucUser.Register,
	login *ucUser.Login,
	forgot *ucUser.ForgotPassword,
	reset *ucUser.ResetPassword,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		forgot:   forgot,
		reset:    reset,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,password"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Type            string `json:"type" binding:"required"`
	Description     string `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,password"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Type,
		Description:     req.Description,
	})
	if err != nil {
		httperr.Handle(c, err, "failed_to_register")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "User registered successfully",
		"user":    u,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Handle(c, err, "failed_to_login")
		return
	}

	httpresp.OK(c, out)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.forgot.Execute(c.Request.Context(), req.Email); err != nil {
		httperr.Handle(c, err, "failed_to_send_reset")
		return
	}

	httpresp.Message(c, http.StatusOK, "Password reset email sent")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	err := h.reset.Execute(c.Request.Context(), ucUser.ResetPasswordInput{
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		httperr.Handle(c, err, "failed_to_reset_password")
		return
	}

	httpresp.Message(c, http.StatusOK, "Password updated successfully")
}

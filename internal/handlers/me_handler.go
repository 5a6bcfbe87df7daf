package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
	ucUser "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/user"
)

// UserHandler serves public profiles and the caller's own account.
type UserHandler struct {
	get *ucUser.GetUser
}

func NewUserHandler(get *ucUser.GetUser) *UserHandler {
	return &UserHandler{get: get}
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err, "failed_to_load_user")
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	u, err := h.get.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err, "failed_to_load_user")
		return
	}
	httpresp.OK(c, gin.H{"user": u})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	ucReview "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/review"
)

type ReviewHandler struct {
	list *ucReview.ListReviews
}

func NewReviewHandler(list *ucReview.ListReviews) *ReviewHandler {
	return &ReviewHandler{list: list}
}

// Top lists the best reviews. ?limit= defaults to 5.
func (h *ReviewHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit > 50 {
		limit = 50
	}

	out, err := h.list.Top(c.Request.Context(), limit)
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_reviews")
		return
	}
	if out == nil {
		out = []dto.ReviewDTO{}
	}
	httpresp.OK(c, out)
}

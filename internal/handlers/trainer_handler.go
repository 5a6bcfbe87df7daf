package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
	ucReview "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/review"
	ucService "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/service"
	ucTrainer "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/trainer"
	ucUser "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type TrainerHandler struct {
	profile  *ucTrainer.GetProfile
	reviews  *ucReview.ListReviews
	stats    *ucTrainer.GetStatistics
	update   *ucUser.UpdateTrainerProfile
	review   *ucReview.SubmitReview
	services *ucService.ListTrainerServices
}

func NewTrainerHandler(
	profile *ucTrainer.GetProfile,
	reviews *ucReview.ListReviews,
	stats *ucTrainer.GetStatistics,
	update *ucUser.UpdateTrainerProfile,
	review *ucReview.SubmitReview,
	services *ucService.ListTrainerServices,
) *TrainerHandler {
	return &TrainerHandler{
		profile:  profile,
		reviews:  reviews,
		stats:    stats,
		update:   update,
		review:   review,
		services: services,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *TrainerHandler) Profile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var viewer *ucTrainer.Viewer
	if userID, role, ok := middleware.CurrentUser(c); ok {
		viewer = &ucTrainer.Viewer{ID: userID, Role: role}
	}

	out, err := h.profile.Execute(c.Request.Context(), id, viewer)
	if err != nil {
		httperr.Handle(c, err, "failed_to_load_trainer")
		return
	}
	httpresp.OK(c, out)
}

func (h *TrainerHandler) Reviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.reviews.ForTrainer(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_reviews")
		return
	}
	if out == nil {
		out = []dto.ReviewDTO{}
	}
	httpresp.OK(c, out)
}

// ======================================================
// OWNER
// ======================================================

func (h *TrainerHandler) Statistics(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	a := actor(c)
	out, err := h.stats.Execute(c.Request.Context(), id, ucTrainer.Viewer{ID: a.ID, Role: a.Role})
	if err != nil {
		httperr.Handle(c, err, "failed_to_load_statistics")
		return
	}
	httpresp.OK(c, out)
}

func (h *TrainerHandler) Services(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.services.Execute(c.Request.Context(), actor(c).ID, id)
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_services")
		return
	}
	httpresp.OK(c, out)
}

// UpdateProfile takes a multipart form with "description" and/or a
// "profile_picture" file.
func (h *TrainerHandler) UpdateProfile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	a := actor(c)
	in := ucUser.UpdateTrainerProfileInput{
		CallerID:   a.ID,
		CallerRole: a.Role,
		TrainerID:  id,
	}

	if desc, ok := c.GetPostForm("description"); ok {
		in.Description = &desc
	}

	if fh, err := c.FormFile("profile_picture"); err == nil {
		f, err := fh.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Could not read the uploaded picture.")
			return
		}
		defer f.Close()
		in.Picture = &ucUser.Picture{Name: fh.Filename, Body: f}
	}

	u, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Handle(c, err, "failed_to_update_profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    u,
	})
}

// ======================================================
// CLIENT
// ======================================================

func (h *TrainerHandler) SubmitReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	r, err := h.review.Execute(c.Request.Context(), ucReview.SubmitReviewInput{
		ClientID:  actor(c).ID,
		TrainerID: id,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Handle(c, err, "failed_to_submit_review")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Review submitted successfully",
		"review":  r,
	})
}

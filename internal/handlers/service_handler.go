package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	ucService "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/service"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	search *ucService.SearchServices
	detail *ucService.GetServiceDetail
	create *ucService.CreateService
	update *ucService.UpdateService
	status *ucService.SetServiceStatus
	remove *ucService.DeleteService
}

func NewServiceHandler(
	search *ucService.SearchServices,
	detail *ucService.GetServiceDetail,
	create *ucService.CreateService,
	update *ucService.UpdateService,
	status *ucService.SetServiceStatus,
	remove *ucService.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{
		search: search,
		detail: detail,
		create: create,
		update: update,
		status: status,
		remove: remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// ServiceForm is sent as multipart/form-data next to the "images" files.
type ServiceForm struct {
	Category        string   `form:"category" json:"category"`
	Description     string   `form:"description" json:"description"`
	DurationMinutes int      `form:"duration_minutes" json:"duration_minutes"`
	SessionCount    int      `form:"session_count" json:"session_count"`
	Price           float64  `form:"price" json:"price"`
	Mode            string   `form:"mode" json:"mode"`
	Zone            string   `form:"zone" json:"zone"`
	Address         string   `form:"address" json:"address"`
	Days            []string `form:"days" json:"days"`
	StartTime       string   `form:"start_time" json:"start_time" binding:"omitempty,hhmm"`
	EndTime         string   `form:"end_time" json:"end_time" binding:"omitempty,hhmm"`
	RemoveImages    []string `form:"remove_images" json:"remove_images"`
}

func (f ServiceForm) input() domain.Input {
	return domain.Input{
		Category:        f.Category,
		Description:     f.Description,
		DurationMinutes: f.DurationMinutes,
		SessionCount:    f.SessionCount,
		Price:           f.Price,
		Mode:            f.Mode,
		Zone:            f.Zone,
		Address:         f.Address,
		Days:            f.Days,
		StartTime:       f.StartTime,
		EndTime:         f.EndTime,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ServiceHandler) Search(c *gin.Context) {
	var raw domain.RawFilter
	if err := c.ShouldBindQuery(&raw); err != nil {
		httperr.BadRequest(c, "invalid_filter", "Invalid filter.")
		return
	}

	f, err := domain.ParseFilter(raw)
	if err != nil {
		httperr.Handle(c, err, "failed_to_search_services")
		return
	}

	out, err := h.search.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Handle(c, err, "failed_to_search_services")
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.detail.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err, "failed_to_load_service")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// TRAINER
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var form ServiceForm
	if err := c.ShouldBind(&form); err != nil {
		bindFailed(c, err)
		return
	}

	images, closeImages, err := formUploads(c, "images")
	if err != nil && c.ContentType() == "multipart/form-data" {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}
	defer closeImages()

	svc, err := h.create.Execute(c.Request.Context(), ucService.CreateServiceInput{
		TrainerID: actor(c).ID,
		Service:   form.input(),
		Images:    images,
	})
	if err != nil {
		httperr.Handle(c, err, "failed_to_create_service")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Service created successfully",
		"service": ucService.ToDetail(svc),
	})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var form ServiceForm
	if err := c.ShouldBind(&form); err != nil {
		bindFailed(c, err)
		return
	}

	images, closeImages, err := formUploads(c, "images")
	if err != nil && c.ContentType() == "multipart/form-data" {
		httperr.BadRequest(c, "invalid_request", "Invalid request data.")
		return
	}
	defer closeImages()

	svc, err := h.update.Execute(c.Request.Context(), ucService.UpdateServiceInput{
		TrainerID:    actor(c).ID,
		ServiceID:    id,
		Service:      form.input(),
		RemoveImages: form.RemoveImages,
		Images:       images,
	})
	if err != nil {
		httperr.Handle(c, err, "failed_to_update_service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"service": ucService.ToDetail(svc),
	})
}

func (h *ServiceHandler) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	svc, err := h.status.Execute(c.Request.Context(), actor(c).ID, id, req.Status)
	if err != nil {
		httperr.Handle(c, err, "failed_to_update_status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service status updated",
		"status":  svc.Status,
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actor(c).ID, id); err != nil {
		httperr.Handle(c, err, "failed_to_delete_service")
		return
	}
	httpresp.Message(c, http.StatusOK, "Service deleted successfully")
}

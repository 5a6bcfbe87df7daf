package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	ucContract "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/contract"
)

// ======================================================
// HANDLER
// ======================================================

type ContractHandler struct {
	list   *ucContract.ListContracts
	get    *ucContract.GetContract
	create *ucContract.CreateContract
	update *ucContract.UpdateContract
	files  *ucContract.ContractFiles
}

func NewContractHandler(
	list *ucContract.ListContracts,
	get *ucContract.GetContract,
	create *ucContract.CreateContract,
	update *ucContract.UpdateContract,
	files *ucContract.ContractFiles,
) *ContractHandler {
	return &ContractHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		files:  files,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateContractRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

// UpdateContractRequest carries a status change, a schedule, or both.
// The weekday is derived from start_date, so day_of_week is not read.
type UpdateContractRequest struct {
	Status    *string `json:"status"`
	StartDate *string `json:"start_date"`
	StartTime *string `json:"start_time"`
}

// ======================================================
// QUERIES
// ======================================================

func (h *ContractHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), actor(c))
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_contracts")
		return
	}
	httpresp.OK(c, out)
}

func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), actor(c), id)
	if err != nil {
		httperr.Handle(c, err, "failed_to_load_contract")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// COMMANDS
// ======================================================

func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.create.Execute(c.Request.Context(), actor(c).ID, req.ServiceID)
	if err != nil {
		httperr.Handle(c, err, "failed_to_create_contract")
		return
	}

	httpresp.Created(c, gin.H{
		"message":  "Contract created successfully",
		"contract": out,
	})
}

func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	out, err := h.update.Execute(c.Request.Context(), ucContract.UpdateContractInput{
		ContractID: id,
		Actor:      actor(c),
		Status:     req.Status,
		StartDate:  req.StartDate,
		StartTime:  req.StartTime,
	})
	if err != nil {
		httperr.Handle(c, err, "failed_to_update_contract")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Contract updated successfully",
		"contract": out,
	})
}

// ======================================================
// FILES
// ======================================================

func (h *ContractHandler) ListFiles(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.files.List(c.Request.Context(), actor(c), id)
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_files")
		return
	}
	httpresp.OK(c, out)
}

func (h *ContractHandler) UploadFile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file is required.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file is required.")
		return
	}
	defer f.Close()

	out, err := h.files.Upload(c.Request.Context(), actor(c), id, fh.Filename, f)
	if err != nil {
		httperr.Handle(c, err, "failed_to_upload_file")
		return
	}

	httpresp.Created(c, gin.H{
		"message": "File uploaded successfully",
		"file":    out,
	})
}

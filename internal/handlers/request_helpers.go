package handlers

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	contract "github.com/BruksfildServices01/trainer-marketplace/internal/domain/contract"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
	serviceuc "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/service"
)

// MaxMultipartMemory bounds what a multipart form keeps in memory before
// spilling to temp files.
const MaxMultipartMemory = 8 << 20

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// bindingCodes maps custom validation tags to their business error.
var bindingCodes = map[string]string{
	"hhmm":     "invalid_time",
	"weekday":  "invalid_days",
	"password": "weak_password",
}

// bindFailed answers a failed ShouldBind. Custom tags keep their own
// error code, everything else is invalid_request.
func bindFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if code, ok := bindingCodes[fe.Tag()]; ok {
				httperr.Handle(c, httperr.ErrBusiness(code), code)
				return
			}
		}
	}
	httperr.BadRequest(c, "invalid_request", "Invalid request data.")
}

// actor is only valid behind AuthMiddleware.
func actor(c *gin.Context) contract.Actor {
	id, role, _ := middleware.CurrentUser(c)
	return contract.Actor{ID: id, Role: role}
}

// formUploads opens every file sent under field. The returned func closes
// them and must always be called.
func formUploads(c *gin.Context, field string) ([]serviceuc.Upload, func(), error) {
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, err
	}

	headers := form.File[field]
	uploads := make([]serviceuc.Upload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		files = append(files, f)
		uploads = append(uploads, serviceuc.Upload{Name: fh.Filename, Body: f})
	}
	return uploads, closeAll, nil
}

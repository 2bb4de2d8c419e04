package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chasethilleman/application-tracker-api/internal/delivery/http/response"
	"github.com/chasethilleman/application-tracker-api/internal/domain"
	"github.com/chasethilleman/application-tracker-api/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.POST("", handler.Create)
		applications.GET("/stats", handler.Stats)
		applications.PATCH("/:id", handler.Update)
		applications.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List applications
// @Description  Get all job applications owned by the current user, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.ApplicationRecord
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	records, err := h.applicationUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, records)
}

// Create godoc
// @Summary      Create an application
// @Description  Validate and persist a new job application owned by the current user
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ApplicationRecord  true  "Application form values"
// @Success      201   {object}  domain.ApplicationRecord
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var payload any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	record, err := h.applicationUC.Create(c.Request.Context(), userID, payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, record)
}

// Update godoc
// @Summary      Update an application
// @Description  Full replace of the editable fields of an application owned by the current user
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Application ID"
// @Param        body  body      domain.ApplicationRecord  true  "Application form values"
// @Success      200   {object}  domain.ApplicationRecord
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	var payload any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	record, err := h.applicationUC.Update(c.Request.Context(), id, userID, payload)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, record)
}

// Delete godoc
// @Summary      Delete an application
// @Description  Delete an application owned by the current user
// @Tags         applications
// @Param        id  path  string  true  "Application ID"
// @Success      204
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	id := c.Param("id")

	if err := h.applicationUC.Delete(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats godoc
// @Summary      Application counts by status
// @Description  Get per-status application counts for the current user
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.StatusCount
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /applications/stats [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Stats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	counts, err := h.applicationUC.Stats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, counts)
}

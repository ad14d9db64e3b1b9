package property

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homeward/internal/application/property/usecases"
	"homeward/internal/interfaces/http/middleware"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
	"homeward/internal/shared/utils"
)

type PropertyHandler struct {
	createPropertyUC usecases.CreatePropertyExecutor
	updatePropertyUC usecases.UpdatePropertyExecutor
	deletePropertyUC usecases.DeletePropertyExecutor
	getPropertyUC    usecases.GetPropertyExecutor
	listPropertiesUC usecases.ListPropertiesExecutor
	logger           logger.Interface
}

func NewPropertyHandler(
	createPropertyUC usecases.CreatePropertyExecutor,
	updatePropertyUC usecases.UpdatePropertyExecutor,
	deletePropertyUC usecases.DeletePropertyExecutor,
	getPropertyUC usecases.GetPropertyExecutor,
	listPropertiesUC usecases.ListPropertiesExecutor,
	logger logger.Interface,
) *PropertyHandler {
	return &PropertyHandler{
		createPropertyUC: createPropertyUC,
		updatePropertyUC: updatePropertyUC,
		deletePropertyUC: deletePropertyUC,
		getPropertyUC:    getPropertyUC,
		listPropertiesUC: listPropertiesUC,
		logger:           logger,
	}
}

// CreateProperty handles POST /properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create property", "error", err)
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.createPropertyUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property created successfully")
}

// GetProperty handles GET /properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPropertyUC.Execute(c.Request.Context(), usecases.GetPropertyQuery{
		Actor:      actor,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProperties handles GET /properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	result, err := h.listPropertiesUC.Execute(c.Request.Context(), usecases.ListPropertiesQuery{
		Actor: actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProperty handles PATCH /properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update property", "error", err)
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.updatePropertyUC.Execute(c.Request.Context(), req.ToCommand(actor, propertyID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property updated successfully", result)
}

// DeleteProperty handles DELETE /properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	_, err = h.deletePropertyUC.Execute(c.Request.Context(), usecases.DeletePropertyCommand{
		Actor:      actor,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parsePropertyID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid property ID")
	}
	return uint(id), nil
}

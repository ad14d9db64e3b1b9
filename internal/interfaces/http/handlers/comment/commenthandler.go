package comment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homeward/internal/application/ticket/usecases"
	"homeward/internal/interfaces/http/middleware"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
	"homeward/internal/shared/utils"
)

type CommentHandler struct {
	updateCommentUC        usecases.UpdateCommentExecutor
	deleteCommentUC        usecases.DeleteCommentExecutor
	setCommentVisibilityUC usecases.SetCommentVisibilityExecutor
	logger                 logger.Interface
}

func NewCommentHandler(
	updateCommentUC usecases.UpdateCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	setCommentVisibilityUC usecases.SetCommentVisibilityExecutor,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		updateCommentUC:        updateCommentUC,
		deleteCommentUC:        deleteCommentUC,
		setCommentVisibilityUC: setCommentVisibilityUC,
		logger:                 logger,
	}
}

type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required,min=3,max=1000"`
}

type SetVisibilityRequest struct {
	IsInternal *bool `json:"is_internal" binding:"required"`
}

// UpdateComment handles PATCH /comments/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update comment", "error", err)
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.updateCommentUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		Actor:     actor,
		CommentID: commentID,
		Body:      req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", result)
}

// DeleteComment handles DELETE /comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	_, err = h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Actor:     actor,
		CommentID: commentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// SetVisibility handles PATCH /comments/:id/visibility
func (h *CommentHandler) SetVisibility(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return
	}

	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.setCommentVisibilityUC.Execute(c.Request.Context(), usecases.SetCommentVisibilityCommand{
		Actor:      actor,
		CommentID:  commentID,
		IsInternal: *req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment visibility updated successfully", result)
}

func parseCommentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid comment ID")
	}
	return uint(id), nil
}

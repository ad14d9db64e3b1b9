package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/ticket"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type UpdateCommentCommand struct {
	Actor     authorization.Actor
	CommentID uint
	Body      string
}

type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewUpdateCommentUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute replaces a comment's body. The aggregate enforces that only the
// author or an admin may edit.
func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing update comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)

	comment, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Warnw("comment not found", "comment_id", cmd.CommentID, "error", err)
		return nil, errors.NewNotFoundError("comment not found")
	}

	if err := comment.UpdateBody(cmd.Body, cmd.Actor.ID, cmd.Actor.Role); err != nil {
		uc.logger.Warnw("comment update rejected", "comment_id", cmd.CommentID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		uc.logger.Errorw("failed to update comment", "comment_id", cmd.CommentID, "error", err)
		return nil, errors.NewInternalError("failed to update comment")
	}

	uc.logger.Infow("comment updated", "comment_id", comment.ID())
	return dto.FromComment(comment), nil
}

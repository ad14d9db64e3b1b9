package usecases

import (
	"context"

	"homeward/internal/domain/ticket"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type DeleteCommentCommand struct {
	Actor     authorization.Actor
	CommentID uint
}

type DeleteCommentResult struct {
	CommentID uint `json:"comment_id"`
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)

	comment, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Warnw("comment not found", "comment_id", cmd.CommentID, "error", err)
		return nil, errors.NewNotFoundError("comment not found")
	}

	if err := comment.EnsureCanBeDeletedBy(cmd.Actor.ID, cmd.Actor.Role); err != nil {
		uc.logger.Warnw("comment deletion rejected", "comment_id", cmd.CommentID, "user_id", cmd.Actor.ID)
		return nil, err
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return nil, errors.NewInternalError("failed to delete comment")
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID)
	return &DeleteCommentResult{CommentID: cmd.CommentID}, nil
}

package usecases

import (
	"context"

	"homeward/internal/application/ticket/dto"
	"homeward/internal/domain/ticket"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

type SetCommentVisibilityCommand struct {
	Actor      authorization.Actor
	CommentID  uint
	IsInternal bool
}

type SetCommentVisibilityUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewSetCommentVisibilityUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *SetCommentVisibilityUseCase {
	return &SetCommentVisibilityUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute flips a comment between internal and public. Marking internal
// additionally requires a role that can create internal comments.
func (uc *SetCommentVisibilityUseCase) Execute(ctx context.Context, cmd SetCommentVisibilityCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing set comment visibility use case",
		"comment_id", cmd.CommentID, "is_internal", cmd.IsInternal, "user_id", cmd.Actor.ID)

	comment, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Warnw("comment not found", "comment_id", cmd.CommentID, "error", err)
		return nil, errors.NewNotFoundError("comment not found")
	}

	if cmd.IsInternal {
		err = comment.MarkAsInternal(cmd.Actor.ID, cmd.Actor.Role)
	} else {
		err = comment.MarkAsPublic(cmd.Actor.ID, cmd.Actor.Role)
	}
	if err != nil {
		uc.logger.Warnw("visibility change rejected", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		uc.logger.Errorw("failed to update comment", "comment_id", cmd.CommentID, "error", err)
		return nil, errors.NewInternalError("failed to update comment")
	}

	uc.logger.Infow("comment visibility updated", "comment_id", comment.ID(), "is_internal", comment.IsInternal())
	return dto.FromComment(comment), nil
}

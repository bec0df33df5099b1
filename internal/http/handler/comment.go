package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/dto"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListByIssue(c *gin.Context) {
	issueID, ok := pathID(c, "issueId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByIssue(c.Request.Context(), issueID)
	if err != nil {
		writeError(c, err, "failed to list comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": dto.ToCommentResponses(comments)})
}

func (h *CommentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.commentService.Create(ctx, middleware.GetUser(ctx), service.CreateCommentParams{
		IssueID:       req.IssueID,
		Text:          req.CommentText,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		writeError(c, err, "failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": dto.ToCommentWithAuthorResponse(result.Comment)})
}

func (h *CommentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	comment, err := h.commentService.Update(ctx, middleware.GetUser(ctx), commentID, req.CommentText)
	if err != nil {
		if errors.Is(err, service.ErrNotCommentAuthor) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own comments"})
			return
		}
		writeError(c, err, "failed to update comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": dto.ToCommentResponse(comment)})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(ctx, middleware.GetUser(ctx), commentID); err != nil {
		if errors.Is(err, service.ErrNotCommentAuthor) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments"})
			return
		}
		writeError(c, err, "failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

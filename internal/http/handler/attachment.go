package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/service"
)

// multipart framing on top of the file itself
const uploadOverhead = 1 << 20

type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

func (h *AttachmentHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxAttachmentSize+uploadOverhead)
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required (max 10 MiB)"})
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, err, "failed to read upload")
		return
	}
	defer file.Close()

	url, err := h.attachmentService.Upload(ctx, middleware.GetUser(ctx), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		writeError(c, err, "failed to store attachment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attachment_url": url})
}

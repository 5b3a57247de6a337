package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/paperdesk-be/service"
	"github.com/tieubaoca/paperdesk-be/types"
)

const maxUploadSize = 20 << 20

type UploadHandler struct {
	papers *service.PaperService
}

func NewUploadHandler(papers *service.PaperService) *UploadHandler {
	return &UploadHandler{
		papers: papers,
	}
}

func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "no file selected"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "file too large"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Detail: err.Error()})
		return
	}

	userID := c.Request.FormValue("user_id")

	paper, err := h.papers.Ingest(c.Request.Context(), header.Filename, data, userID)
	if err != nil {
		c.JSON(types.StatusForError(err), types.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		Message: "Paper uploaded successfully",
		Paper:   paper,
	})
}

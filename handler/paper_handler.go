package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/paperdesk-be/service"
	"github.com/tieubaoca/paperdesk-be/types"
)

type PaperHandler struct {
	papers *service.PaperService
}

func NewPaperHandler(papers *service.PaperService) *PaperHandler {
	return &PaperHandler{
		papers: papers,
	}
}

// HandleList returns the user's papers, newest first. With a title query
// parameter it becomes the multi-result title search instead.
func (h *PaperHandler) HandleList(c *gin.Context) {
	userID := c.Query("user_id")
	title := c.Query("title")

	var (
		papers []*types.Paper
		err    error
	)
	if title != "" {
		papers, err = h.papers.SearchByTitle(c.Request.Context(), title, userID)
	} else {
		papers, err = h.papers.List(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(types.StatusForError(err), types.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.ListPapersResponse{Papers: papers})
}

func (h *PaperHandler) HandleGet(c *gin.Context) {
	paper, err := h.papers.Get(c.Request.Context(), c.Param("id"), c.Query("user_id"))
	if err != nil {
		c.JSON(types.StatusForError(err), types.ErrorResponse{Detail: err.Error()})
		return
	}
	c.JSON(http.StatusOK, paper)
}

func (h *PaperHandler) HandleDelete(c *gin.Context) {
	id := c.Param("id")
	if err := h.papers.Delete(c.Request.Context(), id, c.Query("user_id")); err != nil {
		c.JSON(types.StatusForError(err), types.ErrorResponse{Detail: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{
		Message: fmt.Sprintf("Paper %s deleted", id),
	})
}

// HandleFile streams the stored PDF back to the client.
func (h *PaperHandler) HandleFile(c *gin.Context) {
	paper, data, err := h.papers.File(c.Request.Context(), c.Param("id"), c.Query("user_id"))
	if err != nil {
		c.JSON(types.StatusForError(err), types.ErrorResponse{Detail: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", paper.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/paperdesk-be/service"
	"github.com/tieubaoca/paperdesk-be/types"
)

type ChatHandler struct {
	papers *service.PaperService
}

func NewChatHandler(papers *service.PaperService) *ChatHandler {
	return &ChatHandler{
		papers: papers,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "invalid request body"})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = c.Query("user_id")
	}

	exchange, err := h.papers.Chat(c.Request.Context(), c.Param("id"), req.Question, userID)
	if err != nil {
		c.JSON(types.StatusForError(err), types.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, exchange)
}

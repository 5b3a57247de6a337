package service

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tieubaoca/paperdesk-be/types"
)

// WebSocketService streams chat answers about a stored paper chunk by
// chunk. Each chat message is an independent exchange, same as the HTTP
// route.
type WebSocketService struct {
	papers   *PaperService
	ai       AIService
	upgrader websocket.Upgrader
}

func NewWebSocketService(papers *PaperService, ai AIService) *WebSocketService {
	return &WebSocketService{
		papers: papers,
		ai:     ai,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			var payload types.WebSocketChatPayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "invalid payload")
				continue
			}
			s.streamAnswer(conn, r, payload)
		case types.TypeWebsocketPing:
			conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong})
		default:
			s.writeError(conn, "unknown message type")
		}
	}
}

func (s *WebSocketService) streamAnswer(conn *websocket.Conn, r *http.Request, payload types.WebSocketChatPayload) {
	prompt, _, err := s.papers.GroundingPrompt(r.Context(), payload.PaperID, payload.Question, payload.UserID)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	err = s.ai.ChatStream(r.Context(), prompt, func(delta string) {
		conn.WriteJSON(types.WebSocketResponse{
			Type:    types.TypeWebsocketChat,
			Payload: types.WebSocketChatChunk{Delta: delta},
		})
	})
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}
	conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketChat,
		Payload: types.WebSocketChatChunk{Done: true},
	})
}

func (s *WebSocketService) writeError(conn *websocket.Conn, msg string) {
	conn.WriteJSON(types.WebSocketResponse{
		Type:    "error",
		Payload: types.ErrorResponse{Detail: msg},
	})
}

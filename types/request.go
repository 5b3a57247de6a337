package types

type ChatRequest struct {
	Question string `json:"question"`
	UserID   string `json:"user_id,omitempty"`
}

const (
	TypeWebsocketPing = "ping"
	TypeWebsocketPong = "pong"
	TypeWebsocketChat = "chat"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketChatPayload struct {
	PaperID  string `json:"paper_id"`
	UserID   string `json:"user_id,omitempty"`
	Question string `json:"question"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketChatChunk struct {
	Delta string `json:"delta"`
	Done  bool   `json:"done"`
}

// StreamHandler receives answer fragments as the model produces them.
type StreamHandler func(response string)

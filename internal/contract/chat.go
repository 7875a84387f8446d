package contract

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat/. UserID is optional context only;
// the chat surface carries no business logic.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	UserID   string        `json:"user_id,omitempty"`
}

// ChatResponse is the body returned by POST /chat/.
type ChatResponse struct {
	Message string `json:"message"`
	Model   string `json:"model"`
}

type ChatErrorCode string

const (
	ErrChatUnavailable ChatErrorCode = "CHAT_UNAVAILABLE"
	ErrChatEmpty       ChatErrorCode = "CHAT_EMPTY"
	ErrChatUpstream    ChatErrorCode = "CHAT_UPSTREAM"
)

type ChatError struct {
	Code    ChatErrorCode
	Message string
}

func (e *ChatError) Error() string {
	return string(e.Code) + ": " + e.Message
}

package chat

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/chat-ping/internal/platform/logging"
	"github.com/janisto/chat-ping/internal/platform/metrics"
)

const (
	welcomeMessage = "Welcome to the chat server (router)!"
	replyPrefix    = "Message received: "
)

type handler struct {
	recorder metrics.Recorder
}

// Register wires the chat routes. Paths are relative to the API group
// prefix (/api in the server). recorder may be nil.
func Register(api huma.API, recorder metrics.Recorder) {
	h := &handler{recorder: recorder}

	huma.Register(api, huma.Operation{
		OperationID: "get-chat-index",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Chat API welcome message",
		Tags:        []string{"chat"},
	}, h.index)

	huma.Register(api, huma.Operation{
		OperationID: "post-chat",
		Method:      http.MethodPost,
		Path:        "/chat",
		Summary:     "Send a chat message",
		Description: "Accepts a chat message and acknowledges it.",
		Tags:        []string{"chat"},
	}, h.post)
}

func (h *handler) index(ctx context.Context, _ *struct{}) (*WelcomeOutput, error) {
	applog.LogInfo(ctx, "chat index")
	return &WelcomeOutput{Body: Welcome{Message: welcomeMessage}}, nil
}

func (h *handler) post(ctx context.Context, input *PostInput) (*PostOutput, error) {
	applog.LogInfo(ctx, "chat message received", zap.Int("length", len(input.Body.Message)))
	if h.recorder != nil {
		h.recorder.MessageReceived()
	}
	return &PostOutput{Body: Reply{Response: replyPrefix + input.Body.Message}}, nil
}

package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/chat-ping/internal/http/v1/chat"
	"github.com/janisto/chat-ping/internal/platform/metrics"
)

// APIPrefix is the path prefix shared by all huma operations.
const APIPrefix = "/api"

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, recorder metrics.Recorder) {
	grp := huma.NewGroup(api, APIPrefix)
	chat.Register(grp, recorder)
}

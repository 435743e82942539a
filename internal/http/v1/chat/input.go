package chat

// PostInput is the request body for POST /api/chat.
type PostInput struct {
	Body struct {
		Message string `json:"message" doc:"Chat message text" example:"Hello, server!" minLength:"1" maxLength:"4096"`
	}
}

package chat

// PostOutput wraps the chat reply.
type PostOutput struct {
	Body Reply
}

// WelcomeOutput wraps the API index payload.
type WelcomeOutput struct {
	Body Welcome
}

package chat

// Reply is the payload returned for an accepted chat message.
type Reply struct {
	Response string `json:"response" doc:"Acknowledgement of the received message" example:"Message received: Hello, server!"`
}

// Welcome is the payload returned by the API index.
type Welcome struct {
	Message string `json:"message" doc:"Welcome text" example:"Welcome to the chat server (router)!"`
}

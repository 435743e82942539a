// Command client posts {"message": "Hello, server!"} to the local chat server
// once and prints the reply or the error.
package main

import (
	"context"

	applog "github.com/janisto/chat-ping/internal/platform/logging"
	"github.com/janisto/chat-ping/internal/service/chat"
)

func main() {
	defer func() { _ = applog.Sync() }()
	chat.Run(context.Background())
}

package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	applog "github.com/janisto/chat-ping/internal/platform/logging"
)

var errEmptyReply = errors.New("no reply")

// Runner sends the default payload once and reports the outcome on the console.
type Runner struct {
	svc    Service
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner writing replies to stdout and failures to stderr.
func NewRunner(svc Service, stdout, stderr io.Writer) *Runner {
	return &Runner{svc: svc, stdout: stdout, stderr: stderr}
}

// Run performs a single attempt. It handles both outcomes itself: the reply
// body is printed verbatim after "Server response:", any failure after "Error:".
func (r *Runner) Run(ctx context.Context) {
	reply, err := r.svc.Send(ctx, DefaultPayload())
	if err == nil && reply == nil {
		err = &TransportError{cause: errEmptyReply}
	}
	if err != nil {
		applog.LogDebug(ctx, "chat run failed", zap.Error(err))
		_, _ = fmt.Fprintln(r.stderr, "Error:", err)
		return
	}
	_, _ = fmt.Fprintln(r.stdout, "Server response:", string(reply.Body))
}

// Run sends the default payload to DefaultURL using the process console.
func Run(ctx context.Context) {
	NewRunner(NewClient(), os.Stdout, os.Stderr).Run(ctx)
}

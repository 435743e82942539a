package logging

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceHeaderRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

type traceContext struct {
	traceID string
	spanID  string
	sampled bool
}

func parseTraceparent(header string) (traceContext, bool) {
	m := traceHeaderRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}, false
	}
	return traceContext{traceID: m[2], spanID: m[3], sampled: m[4] == "01"}, true
}

func loggerWithTrace(base *zap.Logger, header, projectID, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(header, projectID)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func traceFields(header, projectID string) []zap.Field {
	resource := traceResource(header, projectID)
	if resource == "" {
		return nil
	}
	tc, _ := parseTraceparent(header)
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", resource),
		zap.String("logging.googleapis.com/spanId", tc.spanID),
		zap.Bool("logging.googleapis.com/trace_sampled", tc.sampled),
	}
}

func traceResource(header, projectID string) string {
	if projectID == "" {
		return ""
	}
	tc, ok := parseTraceparent(header)
	if !ok {
		return ""
	}
	return fmt.Sprintf("projects/%s/traces/%s", projectID, tc.traceID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveProjectID() string {
	projectIDOnce.Do(func() {
		cachedProjectID = firstNonEmpty(
			os.Getenv("GOOGLE_CLOUD_PROJECT"),
			os.Getenv("GCP_PROJECT"),
			os.Getenv("PROJECT_ID"),
		)
	})
	return cachedProjectID
}

package obs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const (
	RequestIDKey ctxKey = "req_id"
	RunIDKey     ctxKey = "run_id"
)

// Init routes the standard logger to stdout with microsecond timestamps.
func Init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// WithRunID tags ctx with a fresh run identifier for a CLI invocation.
func WithRunID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, RunIDKey, id), id
}

// WithRequestID tags ctx with an HTTP request identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Fields renders the identifiers carried by ctx as key=value pairs.
func Fields(ctx context.Context) string {
	parts := make([]string, 0, 2)
	if id, _ := ctx.Value(RunIDKey).(string); id != "" {
		parts = append(parts, "run_id="+id)
	}
	if id, _ := ctx.Value(RequestIDKey).(string); id != "" {
		parts = append(parts, "req_id="+id)
	}
	return strings.Join(parts, " ")
}

// Time logs the duration of an operation and its error, if any.
//
//	defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	ids := Fields(ctx)
	if ids != "" {
		ids += " "
	}

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("%sop=%s dur=%dms err=%v", ids, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("%sop=%s dur=%dms", ids, name, dur.Milliseconds())
	}
}

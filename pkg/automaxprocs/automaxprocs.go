// Package automaxprocs matches GOMAXPROCS to the container CPU quota of the proxy server.
package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS and returns a function restoring the previous value.
// It is a no-op outside Linux containers with a CPU quota, or when GOMAXPROCS is set.
func Init() (undo func(), err error) {
	prev := runtime.GOMAXPROCS(0)
	log := logger.With(slogx.String("package", "automaxprocs"), slogx.Int("prev_maxprocs", prev))

	printf := func(format string, v ...any) {
		var attrs []slog.Attr
		// maxprocs passes the new value except when undoing
		if val, ok := utils.Optional(v); ok {
			if _, exists := os.LookupEnv("GOMAXPROCS"); exists {
				val = runtime.GOMAXPROCS(0)
			}
			if n, ok := val.(int); ok {
				attrs = append(attrs, slogx.Int("set_maxprocs", n))
			}
		}
		log.LogAttrs(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}

	undo, err = maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1))
	if err != nil {
		return func() {}, errors.WithStack(err)
	}
	return undo, nil
}

package treemap

import "log/slog"

// logger wraps an optional slog.Logger with the map's fixed attributes.
// A nil underlying logger disables all output, so callers never nil-check.
type logger struct {
	log  *slog.Logger
	name string
}

func newLogger(log *slog.Logger, name string) *logger {
	return &logger{log: log, name: name}
}

// opDone emits a debug-level record for a completed structural operation.
func (l *logger) opDone(op, mapID string, size int, args ...any) {
	if l == nil || l.log == nil {
		return
	}

	fields := []any{
		"op", op,
		"map", l.name,
		"map_id", mapID,
		"size", size,
	}
	fields = append(fields, args...)

	l.log.Debug("Tree operation completed", fields...)
}

package pkg

import (
	"io"
	"log/slog"
)

// NewLogger создаёт JSON-логгер приложения.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, nil)
	return slog.New(handler)
}

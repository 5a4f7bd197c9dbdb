package chat

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger returns the process logger, writing to stderr and to
// latest.log next to the executable. The file is truncated on start.
func Logger() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	executable, err := os.Executable()
	if err != nil {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	path := filepath.Dir(executable) + "/latest.log"
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	return zerolog.New(zerolog.MultiLevelWriter(out, f)).With().Timestamp().Logger()
}

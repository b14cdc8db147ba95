package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-management-api/internal/config"
)

// New builds the application logger. Production logs JSON at info level;
// everything else gets a console writer at debug level.
func New(env string) zerolog.Logger {
	zerolog.TimestampFieldName = "timestamp"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()

	if env == config.EnvProd {
		return log.Level(zerolog.InfoLevel)
	}

	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.Out = os.Stdout
	consoleWriter.TimeFormat = time.DateTime

	return log.Output(consoleWriter).Level(zerolog.DebugLevel)
}

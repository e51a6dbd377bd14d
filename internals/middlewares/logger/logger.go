package logger

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gopkg.in/natefinch/lumberjack.v2"

	"quizprep_backend/internals/configs"
)

// LoggerMiddleware records every request, to stdout and to a rotating
// access log file when ACCESS_LOG_FILE is set.
func LoggerMiddleware() fiber.Handler {
	var out io.Writer = os.Stdout
	if path := configs.GetEnv("ACCESS_LOG_FILE"); path != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
		Output:     out,
	})
}

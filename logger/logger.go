package logger

import (
	"io"
	"log"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Level         string
	Json          bool
	File          string
	MaxAgeDays    int
	RotationHours int
}

var RLogs *rotatelogs.RotateLogs
var Logger = logrus.New()

// InitLogger configures the process logger. With an empty File logs go to
// stdout; otherwise they go to a rotated file set. Output overrides both
// when non-nil (used by tests).
func InitLogger(cfg *Config, output io.Writer) {
	if cfg.Json {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.Formatter.(*logrus.TextFormatter).DisableTimestamp = false
		Logger.Formatter.(*logrus.TextFormatter).DisableColors = true
	}

	switch {
	case output != nil:
		Logger.SetOutput(output)
		log.SetOutput(output)
	case cfg.File != "":
		initRotation(cfg)
	default:
		Logger.SetOutput(os.Stdout)
		log.SetOutput(os.Stdout)
	}

	if cfg.Level == "" {
		cfg.Level = "error"
	}
	if logLevel, ok := logrus.ParseLevel(cfg.Level); ok == nil {
		Logger.SetLevel(logLevel)
	} else {
		Logger.Error("Couldn't parse loglevel", cfg.Level)
		Logger.SetLevel(logrus.ErrorLevel)
	}

	Logger.Info("init logging system")
}

func initRotation(cfg *Config) {
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}
	if cfg.RotationHours == 0 {
		cfg.RotationHours = 24
	}
	var err error
	RLogs, err = rotatelogs.New(
		cfg.File+".%Y%m%d",
		rotatelogs.WithLinkName(cfg.File),
		rotatelogs.WithMaxAge(time.Duration(cfg.MaxAgeDays)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(cfg.RotationHours)*time.Hour),
	)
	if err != nil {
		Logger.Error("Local file system hook initialize fail")
		return
	}
	Logger.SetOutput(RLogs)
	log.SetOutput(RLogs)
}

func Debug(args ...any) {
	Logger.Debug(args...)
}

func Info(args ...any) {
	Logger.Info(args...)
}

func Error(args ...any) {
	Logger.Error(args...)
}

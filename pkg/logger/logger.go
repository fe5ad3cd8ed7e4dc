package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	Filename   string   `yaml:"filename"`
	MaxSize    int      `yaml:"max_size"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var global = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger replaces the process logger. It must be called once at
// startup, before any request is served.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch target {
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	global = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func Debug(msg string, keyvals ...any) {
	global.Debug().Fields(keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	global.Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	global.Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	global.Error().Fields(keyvals).Msg(msg)
}

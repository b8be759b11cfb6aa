package config

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Fields 는 구조화 로그 필드.
type Fields map[string]any

// Log 는 전역 로거다. InitApp 전에는 info 레벨로 stdout 에 쓴다.
var Log = NewLogger("info", os.Stdout)

// serviceName 은 모든 구조화 로그에 service 필드로 붙는다.
var serviceName = "yospace-api"

func initLogger(level, service string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	if service != "" {
		serviceName = service
	}
	Log = NewLogger(level, os.Stdout)
}

// NewLogger 는 level 이상만 w 에 JSON 한 줄로 쓰는 로거를 만든다.
func NewLogger(level string, w io.Writer) *slog.Logger {
	max := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= max {
			levels = append(levels, lv)
		}
	}

	h := handler.NewIOWriterHandler(w, levels)
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
			slog.FieldKeyData,
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

func logWithFields(level slog.Level, msg string, fields Fields) {
	data := make(slog.M, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	if _, ok := data["service"]; !ok {
		data["service"] = serviceName
	}
	Log.WithFields(data).Log(level, msg)
}

// InfoWithFields 는 request_id, slug 같은 필드를 붙여 info 로그를 남긴다.
func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }

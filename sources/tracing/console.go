package tracing

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

const (
	ExecutionTime = "exe_time"
	OutsiderKind  = "outsider_kind"
	ProxyUrl      = "proxy_url"
	ProxyRes      = "proxy_res"
	InnerError    = "inner_error"
	UserId        = "user_id"
	UserName      = "user_name"
	ChatType      = "chat_type"
	ChatId        = "chat_id"
	MessageId     = "message_id"
	EventId       = "event_id"
	PeerId        = "peer_id"
	ButtonEventId = "button_event_id"
	CallAction    = "call_action"
	SubAction     = "sub_action"
	KeyboardOwner = "keyboard_owner"
	ActionResult  = "action_result"
	PayloadToken  = "payload_token"
	SettingName   = "setting_name"
	Destination   = "setting_destination"
	TargetId      = "target_id"
	Permission    = "permission"
	CommandIssued = "command_issued"
	Scope         = "scope"
	Feature       = "feature"
)

type Logger struct {
	log *slog.Logger
	ctx context.Context
}

func NewConsoleLogger() *Logger {
	return NewJSONLogger(os.Stdout)
}

// NewJSONLogger writes JSON lines to w.
func NewJSONLogger(w io.Writer) *Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	logger.InfoContext(ctx, "Initializing logger")
	return &Logger{log: logger, ctx: ctx}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...), ctx: l.ctx}
}

func (l *Logger) D(msg string, args ...any) {
	l.log.DebugContext(l.ctx, msg, args...)
}

func (l *Logger) I(msg string, args ...any) {
	l.log.InfoContext(l.ctx, msg, args...)
}

func (l *Logger) W(msg string, args ...any) {
	l.log.WarnContext(l.ctx, msg, args...)
}

func (l *Logger) E(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
}

func (l *Logger) F(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
	panic(msg)
}

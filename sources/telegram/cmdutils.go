package telegram

import (
	"errors"
	"strings"
	"toaster/sources/tracing"

	"github.com/alecthomas/kong"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (x *TelegramHandler) ParseCmd(cmd interface{}, args string) (*kong.Context, error) {
	parser, err := kong.New(cmd, kong.Name("toaster"), kong.Exit(func(int) {}))
	if err != nil {
		return nil, err
	}
	return parser.Parse(ParseCmdArgs(args))
}

func (x *TelegramHandler) ParseKongCommand(log *tracing.Logger, msg *tgbotapi.Message, cmd interface{}) (*kong.Context, error) {
	args := msg.CommandArguments()
	if strings.TrimSpace(args) == "" {
		return nil, errors.New("command arguments are empty")
	}

	ctx, err := x.ParseCmd(cmd, args)
	if err != nil {
		log.W("Error parsing command", tracing.InnerError, err)
		return nil, err
	}
	return ctx, nil
}

// ParseCmdArgs splits command arguments on spaces. Single or double quotes group
// words, a backslash escapes a quote or another backslash.
func ParseCmdArgs(args string) []string {
	var result []string
	var current strings.Builder
	var quote rune
	escaped := false

	flush := func() {
		if strings.TrimSpace(current.String()) != "" {
			result = append(result, current.String())
		}
		current.Reset()
	}

	for _, ch := range args {
		if escaped {
			if ch != '\'' && ch != '"' && ch != '\\' {
				current.WriteRune('\\')
			}
			current.WriteRune(ch)
			escaped = false
			continue
		}

		switch {
		case ch == '\\':
			escaped = true
		case quote == 0 && (ch == '\'' || ch == '"'):
			quote = ch
		case quote != 0 && ch == quote:
			quote = 0
		case quote == 0 && (ch == ' ' || ch == '\t' || ch == '\n'):
			flush()
		default:
			current.WriteRune(ch)
		}
	}

	if escaped {
		current.WriteRune('\\')
	}
	flush()

	return result
}

package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is a topic-gated wrapper over slog. Disabled topics cost one bool check.
type Logger struct {
	topic   string
	enabled bool
}

var enabledTopics = parseTopics(os.Getenv("DEBUG_TOPICS"))

func init() {
	if len(enabledTopics) > 0 {
		configureSlog()
	}
}

// parseTopics reads a DEBUG_TOPICS value, e.g. "plan,watch" or "all".
func parseTopics(value string) map[string]bool {
	topics := make(map[string]bool)
	value = strings.TrimSpace(value)
	if value == "" {
		return topics
	}
	if value == "all" {
		topics["*"] = true
		return topics
	}
	for _, topic := range strings.Split(value, ",") {
		if topic = strings.TrimSpace(topic); topic != "" {
			topics[topic] = true
		}
	}
	return topics
}

// configureSlog switches the default handler to DEBUG on stderr.
func configureSlog() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
}

// New returns the logger for a topic.
// Usage: var planLog = logging.New("plan")
func New(topic string) *Logger {
	return &Logger{
		topic:   topic,
		enabled: enabledTopics["*"] || enabledTopics[topic],
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	if !l.enabled {
		return
	}
	slog.Debug(msg, l.with(args)...)
}

func (l *Logger) Info(msg string, args ...any) {
	if !l.enabled {
		return
	}
	slog.Info(msg, l.with(args)...)
}

// Warn is always emitted; warnings are not topic gated.
func (l *Logger) Warn(msg string, args ...any) {
	slog.Warn(msg, l.with(args)...)
}

func (l *Logger) Enabled() bool {
	return l.enabled
}

func (l *Logger) with(args []any) []any {
	return append([]any{"topic", l.topic}, args...)
}

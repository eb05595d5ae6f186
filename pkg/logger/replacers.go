package logger

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

var levelNames = []struct {
	level slog.Level
	name  string
}{
	{LevelFatal, "FATAL"},
	{LevelPanic, "PANIC"},
	{LevelCritical, "CRITICAL"},
}

// levelAttrReplacer names the levels above ERROR.
func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 || attr.Key != slog.LevelKey {
		return attr
	}
	l, ok := attr.Value.Any().(slog.Level)
	if !ok || l < LevelCritical {
		return attr
	}
	for _, n := range levelNames {
		if l < n.level {
			continue
		}
		if l == n.level {
			return slog.String(attr.Key, n.name)
		}
		return slog.String(attr.Key, fmt.Sprintf("%s%+d", n.name, l-n.level))
	}
	return attr
}

const redacted = "[REDACTED]"

// sensitiveKeys are attribute keys whose values never reach the log output.
var sensitiveKeys = map[string]struct{}{
	"authorization": {},
	"authtoken":     {},
	"auth_token":    {},
	"token":         {},
	"password":      {},
	"pass":          {},
}

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.~+/]+=*`)

// redactAttrReplacer masks credentials at any group depth, including bearer tokens
// embedded in other string values such as dumped request headers.
func redactAttrReplacer(_ []string, attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindString {
		if _, ok := sensitiveKeys[strings.ToLower(attr.Key)]; ok {
			return slog.String(attr.Key, redacted)
		}
		return attr
	}
	value := attr.Value.String()
	if value == "" {
		return attr
	}
	if _, ok := sensitiveKeys[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, redacted)
	}
	if bearerPattern.MatchString(value) {
		return slog.String(attr.Key, bearerPattern.ReplaceAllString(value, "Bearer "+redacted))
	}
	return attr
}

// attrReplacerChain returns a function that applies a chain of replacers to an attribute.
func attrReplacerChain(replacers ...func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, attr slog.Attr) slog.Attr {
		for _, replacer := range replacers {
			attr = replacer(groups, attr)
		}
		return attr
	}
}

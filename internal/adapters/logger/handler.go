package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"go.trai.ch/runway/internal/ui/output"
	"go.trai.ch/runway/internal/ui/style"
)

// Attribute keys with a dedicated layout in pretty output.
const (
	// StageKey names the pipeline stage a record belongs to. It is rendered
	// as a "[stage]" prefix, the same way stage output is prefixed.
	StageKey = "stage"
	// ErrorKey carries an error whose cause chain is rendered below the message.
	ErrorKey = "error"
)

// messager is implemented by zerr errors: Message returns the error's own
// text without its cause chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key/value metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain as rendered by the handler.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// PrettyHandler is a slog.Handler for runway's terminal output. Records are
// one glyph-led line, prefixed with their stage when known; further lines of
// the message and any error chain are indented under the first.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var (
		stage string
		cause error
		extra []string
	)
	collect := func(attr slog.Attr) {
		switch {
		case h.group == "" && attr.Key == StageKey:
			stage = attr.Value.String()
		case attr.Key == ErrorKey && isError(attr.Value):
			cause, _ = attr.Value.Any().(error)
		default:
			extra = append(extra, formatAttr(h.group, attr))
		}
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		collect(attr)
		return true
	})

	body := r.Message
	if len(extra) > 0 {
		body += " " + strings.Join(extra, " ")
	}
	if cause != nil {
		chain := formatErrorEntries(collectErrorEntries(cause))
		if strings.TrimSpace(body) == "" {
			body = chain
		} else {
			body += "\n" + chain
		}
	}

	glyph, color := levelStyle(r.Level)
	lead := glyph
	if stage != "" {
		lead = "[" + stage + "] " + glyph
	}
	indent := strings.Repeat(" ", utf8.RuneCountInString(lead))

	var b strings.Builder
	for i, line := range strings.Split(body, "\n") {
		switch {
		case i == 0:
			line = lead + line
		case line != "":
			line = indent + line
		}
		b.WriteString(h.out.String(line).Foreground(color).String())
		b.WriteString("\n")
	}

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = name
	return &next
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

func isError(v slog.Value) bool {
	if v.Kind() != slog.KindAny {
		return false
	}
	_, ok := v.Any().(error)
	return ok
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}

func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		lead, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lead, indent = "    → ", "      "
		}

		lines = append(lines, lead+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, kv := range sortedMetadata(entry.Metadata) {
			lines = append(lines, indent+kv)
		}
	}

	return strings.Join(lines, "\n")
}

func sortedMetadata(md map[string]any) []string {
	if len(md) == 0 {
		return nil
	}

	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %v", k, md[k]))
	}
	return out
}

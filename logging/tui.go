package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// RecordMsg delivers a log record to the Bubble Tea model for display in
// the footer.
type RecordMsg struct {
	Summary string
	Level   slog.Level
}

// Sender is the part of *tea.Program the TUI handler needs.
type Sender interface {
	Send(msg tea.Msg)
}

// TUIHandler is a slog.Handler that turns records at or above its level
// into RecordMsg values sent to a running program. Records arriving before
// SetProgram are dropped.
//
// Handlers derived with WithAttrs/WithGroup share the program, so one
// SetProgram call reaches all of them.
type TUIHandler struct {
	level slog.Level
	sink  *tuiSink
	attrs []slog.Attr
	group string
}

// tuiSink queues records and hands them to the program from one goroutine,
// in the order they were logged. Enqueueing never blocks, so logging from
// inside Update cannot wait on the loop that is running it.
type tuiSink struct {
	mu      sync.Mutex
	program Sender
	queue   []RecordMsg
	wake    chan struct{}
}

func NewTUIHandler(level slog.Level) *TUIHandler {
	return &TUIHandler{
		level: level,
		sink:  &tuiSink{wake: make(chan struct{}, 1)},
	}
}

// SetProgram sets the receiver of log messages and starts delivery. Safe
// from any goroutine.
func (h *TUIHandler) SetProgram(program Sender) {
	s := h.sink
	s.mu.Lock()
	start := s.program == nil
	s.program = program
	s.mu.Unlock()
	if start {
		go s.forward()
	}
}

func (s *tuiSink) push(msg RecordMsg) {
	s.mu.Lock()
	if s.program == nil {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, msg)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *tuiSink) forward() {
	for range s.wake {
		s.mu.Lock()
		batch, program := s.queue, s.program
		s.queue = nil
		s.mu.Unlock()
		for _, msg := range batch {
			program.Send(msg)
		}
	}
}

func (h *TUIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats the record as "message (key=value, ...)" and queues it.
func (h *TUIHandler) Handle(_ context.Context, record slog.Record) error {
	var parts []string
	add := func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, a.Value))
		return true
	}
	for _, a := range h.attrs {
		add(a)
	}
	record.Attrs(add)

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	h.sink.push(RecordMsg{Summary: summary, Level: record.Level})
	return nil
}

func (h *TUIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TUIHandler{
		level: h.level,
		sink:  h.sink,
		attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...),
		group: h.group,
	}
}

func (h *TUIHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &TUIHandler{
		level: h.level,
		sink:  h.sink,
		attrs: append([]slog.Attr(nil), h.attrs...),
		group: group,
	}
}

type fanout []slog.Handler

// Fanout returns a handler that passes every record to each of handlers
// that is enabled for its level.
func Fanout(handlers ...slog.Handler) slog.Handler {
	return fanout(handlers)
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

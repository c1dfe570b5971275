// Package logging builds the process logger: a text handler for the
// terminal or a log file, fanned out to the systemd journal when asked.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var ErrJournalUnavailable = errors.New("logging: systemd journal unavailable")

type Options struct {
	Level string
	File  string
	// Journal adds the systemd journal. If it cannot be reached the failure
	// is logged to the text output, or returned when there is none.
	Journal bool
	// Writer receives text output when File is empty. Nil discards it.
	Writer io.Writer
}

var newJournalHandler = func(opts *slogjournal.Options) (slog.Handler, error) {
	h, err := slogjournal.NewHandler(opts)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Logger owns the handlers and any log file it opened.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
	file  *os.File
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

func New(opts Options) (*Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	level := new(slog.LevelVar)
	level.Set(lvl)

	l := &Logger{level: level}

	w := opts.Writer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		w = f
	}

	var handlers []slog.Handler
	var textHandler slog.Handler
	if w != nil {
		textHandler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, textHandler)
	}

	if opts.Journal {
		journalHandler, err := newJournalHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return journalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = journalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if textHandler == nil {
				return nil, fmt.Errorf("%w: %w", ErrJournalUnavailable, err)
			}
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = textHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 0 {
		l.Logger = slog.New(slog.DiscardHandler)
	} else {
		l.Logger = slog.New(slogmulti.Fanout(handlers...))
	}
	return l, nil
}

func (l *Logger) SetLevel(lvl slog.Level) {
	l.level.Set(lvl)
}

func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// journalKey maps attribute keys onto the journal's field alphabet.
func journalKey(s string) string {
	s = strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, s)
}

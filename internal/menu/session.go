// Package menu implements the interactive console session: the numbered main
// menu and the add, update, remove, list and search operations behind it.
//
// A Session owns the inventory for its whole lifetime. It is the single
// boundary where errors become user-facing messages; only a failure to read
// input escapes to the caller.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/autogallery/internal/inventory"
	"github.com/mmynk/autogallery/internal/metrics"
	"github.com/mmynk/autogallery/internal/models"
	"github.com/mmynk/autogallery/internal/storage"
)

// errInvalidInput marks an answer that could not be parsed as a number.
var errInvalidInput = errors.New("invalid input")

// Session is one interactive run of the gallery manager.
type Session struct {
	id      string
	store   storage.Store
	inv     *inventory.Inventory
	in      *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collectors. Defaults to a fresh set.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// NewSession creates a session that reads answers from in, writes prompts and
// messages to out and persists through store. The inventory starts empty
// until Load is called.
func NewSession(store storage.Store, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:    uuid.New().String(),
		store: store,
		inv:   inventory.New(nil),
		in:    bufio.NewReader(in),
		out:   out,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	s.logger = s.logger.With("session_id", s.id)
	return s
}

// ID returns the session identifier attached to every log record.
func (s *Session) ID() string {
	return s.id
}

// Inventory returns the records held by the session.
func (s *Session) Inventory() *inventory.Inventory {
	return s.inv
}

// Load replaces the inventory with the stored records. Unparseable lines are
// reported to the user and skipped.
func (s *Session) Load(ctx context.Context) error {
	result, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Failed to load records", "location", s.store.Location(), "error", err)
		return fmt.Errorf("failed to load records: %w", err)
	}

	for _, skipped := range result.Skipped {
		s.printf("Skipping invalid record: %s\n", skipped.Text)
		s.logger.Warn("Skipped invalid record", "line", skipped.Line, "error", skipped.Err)
	}

	s.inv = inventory.New(result.Records)
	s.metrics.ObserveSkipped(len(result.Skipped))
	s.metrics.SetRecords(s.inv.Len())
	s.logger.Info("Records loaded",
		"location", s.store.Location(),
		"records", s.inv.Len(),
		"skipped", len(result.Skipped),
	)
	return nil
}

// prompt prints label and reads one line of any length. A final line without
// a newline is still returned; io.EOF means input is exhausted.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if line == "" && err != nil {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt prompts for a whole number. Parse failures wrap errInvalidInput.
func (s *Session) readInt(label string) (int, error) {
	answer, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := models.ParseInt(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	return n, nil
}

// readPrice prompts for a floating-point amount. Parse failures wrap errInvalidInput.
func (s *Session) readPrice(label string) (float64, error) {
	answer, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	p, err := models.ParsePrice(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	return p, nil
}

// readText prompts for free text and trims it.
func (s *Session) readText(label string) (string, error) {
	answer, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// rejectInput prints message for invalid answers; any other error is returned.
func (s *Session) rejectInput(err error, message string) (outcome, error) {
	if errors.Is(err, errInvalidInput) {
		s.println(message)
		s.logger.Debug("Rejected input", "error", err)
		return outcomeInvalidInput, nil
	}
	return "", err
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

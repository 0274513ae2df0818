package sheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = time.Second

// FileSubscriber watches a date sheet on the local file system and hands the
// parsed sheet to the receiver once writes to it have settled.
type FileSubscriber struct {
	filePath string
	debounce time.Duration
	receiver Receiver
}

// NewFileSubscriber creates a subscriber for filePath. The file is evaluated
// once no write has happened for the debounce interval; zero means the
// default of one second.
func NewFileSubscriber(filePath string, debounce time.Duration) (*FileSubscriber, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("filepath.Abs: %w", err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &FileSubscriber{filePath: abs, debounce: debounce}, nil
}

// Subscribe evaluates the file once, then blocks and re-evaluates it after
// writes until ctx is cancelled.
func (s *FileSubscriber) Subscribe(ctx context.Context, receiver Receiver) error {
	s.receiver = receiver

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it in place, which
	// drops a watch on the file itself. Watch the directory instead.
	err = watcher.Add(filepath.Dir(s.filePath))
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	b, err := readOnce(s.filePath)
	if err != nil {
		return fmt.Errorf("readOnce: %w", err)
	}
	err = s.evaluate(s.filePath, b)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	return s.watchResponder(ctx, watcher)
}

func (s *FileSubscriber) watchResponder(ctx context.Context, watcher *fsnotify.Watcher) error {
	// Every write restarts the timer, so a burst of writes is evaluated once,
	// after the last one.
	timer := time.NewTimer(s.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			slog.Debug("stopped watching", "path", s.filePath)
			return nil

		case <-pending:
			pending = nil
			err := s.reactToFileWrite(s.filePath)
			if err != nil {
				slog.Error("reactToFileWrite failed", "path", s.filePath, "err", err)
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher.Events closed")
			}
			if filepath.Clean(event.Name) != s.filePath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer.Reset(s.debounce)
				pending = timer.C
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher.Errors closed")
			}
			slog.Warn("watcher error", "err", err)
		}
	}
}

func (s *FileSubscriber) reactToFileWrite(filepath string) error {
	b, err := readLoop(filepath)
	if err != nil {
		return fmt.Errorf("readLoop: %w", err)
	}

	return s.evaluate(filepath, b)
}

func (s *FileSubscriber) evaluate(filepath string, b []byte) error {
	p := Parser{}
	err := p.Init()
	if err != nil {
		return fmt.Errorf("p.Init: %w", err)
	}

	sheet := p.Parse(string(b))
	slog.Debug("sheet parsed", "path", filepath, "entries", len(sheet.Entries), "warnings", len(sheet.Warnings))

	err = s.receiver.Receive(sheet)
	if err != nil {
		return fmt.Errorf("error from sheet receiver: %w", err)
	}

	return nil
}

// ReadFile parses the sheet at path once.
func ReadFile(path string) (Sheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	p := Parser{}
	err = p.Init()
	if err != nil {
		return Sheet{}, fmt.Errorf("p.Init: %w", err)
	}

	return p.Parse(string(b)), nil
}

const (
	readRetries    = 100
	readRetryDelay = 100 * time.Millisecond
)

// readLoop retries while the file reads empty, which happens when it is
// caught in the middle of being rewritten.
func readLoop(filepath string) ([]byte, error) {
	for i := 0; i < readRetries; i++ {
		b, err := readOnce(filepath)
		if err != nil {
			return nil, err
		}

		if len(b) == 0 {
			time.Sleep(readRetryDelay)
			continue
		}

		if i > 0 {
			slog.Debug("readLoop retried", "path", filepath, "tries", i+1)
		}
		return b, nil
	}

	return nil, fmt.Errorf("readLoop: too many retries")
}

func readOnce(filepath string) ([]byte, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}
	return b, nil
}

package logfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/logging"
)

const (
	readRetries    = 10
	readRetryDelay = 100 * time.Millisecond
)

// Subscriber hands the content of a log file to a receiver whenever the file
// changes.
type Subscriber struct {
	// Debounce is the quiet period after a change before the file is read.
	// Changes within it are delivered once.
	Debounce time.Duration

	filePath string
	receiver logentry.Receiver
}

func NewSubscriber(filePath string) (*Subscriber, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("filepath.Abs: %w", err)
	}
	return &Subscriber{
		Debounce: time.Second,
		filePath: abs,
	}, nil
}

// Subscribe delivers the current content, then every change, until ctx is
// done. Receiver errors are logged and do not stop the subscription.
func (s *Subscriber) Subscribe(ctx context.Context, receiver logentry.Receiver) error {
	s.receiver = receiver
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	// the directory is watched so that editors replacing the file are seen
	err = watcher.Add(filepath.Dir(s.filePath))
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	s.deliver(ctx)
	return s.watchResponder(ctx, watcher)
}

func (s *Subscriber) watchResponder(ctx context.Context, watcher *fsnotify.Watcher) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher.Events closed")
			}
			if filepath.Clean(event.Name) != s.filePath {
				continue
			}
			logging.Log.Debugf("watcher event: %s", event)
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if pending == nil {
				pending = time.After(s.Debounce)
			}

		case <-pending:
			pending = nil
			s.deliver(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher.Errors closed")
			}
			logging.Log.Warnf("watcher error: %s", err)
		}
	}
}

func (s *Subscriber) deliver(ctx context.Context) {
	text, err := readLoop(ctx, s.filePath)
	if err != nil {
		logging.Log.Warnf("readLoop: %s", err)
		return
	}

	err = s.receiver.Receive(text)
	if err != nil {
		logging.Log.Warnf("error from log receiver: %s", err)
	}
}

// readLoop reads the file, retrying for a while when it comes back empty as
// it does while an editor is still writing it. A file that stays empty is
// returned as such.
func readLoop(ctx context.Context, path string) (string, error) {
	for i := 0; i < readRetries; i++ {
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", nil
			}
			return "", fmt.Errorf("os.ReadFile: %w", err)
		}

		if len(b) > 0 {
			if i > 0 {
				logging.Log.Debugf("readLoop took %d tries", i+1)
			}
			return string(b), nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(readRetryDelay):
		}
	}

	return "", nil
}

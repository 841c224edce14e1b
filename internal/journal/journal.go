// Package journal mirrors bus events into an append-only JSON-lines file.
// The bus itself is process-local with no replay, so the journal is how
// observers in other processes see activity: the process holding the data
// lock appends, a follower tails the file without touching the stores.
package journal

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"basking/internal/bus"
)

const followInterval = 200 * time.Millisecond

// Writer subscribes to the bus and appends every event to the journal file.
type Writer struct {
	f      *os.File
	ch     <-chan bus.Event
	unsub  func()
	logger *zap.Logger
	quit   chan struct{}
	done   chan struct{}
}

// NewWriter opens (or creates) the journal at path and starts mirroring all
// bus events into it.
func NewWriter(path string, b *bus.Bus, logger *zap.Logger) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	ch, unsub := b.Subscribe("", 256)
	w := &Writer{
		f:      f,
		ch:     ch,
		unsub:  unsub,
		logger: logger,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Writer) run() {
	defer close(w.done)
	enc := json.NewEncoder(w.f)
	for {
		select {
		case evt := <-w.ch:
			w.append(enc, evt)
		case <-w.quit:
			// Drain events still buffered so nothing published before
			// shutdown is lost.
			for {
				select {
				case evt := <-w.ch:
					w.append(enc, evt)
				default:
					return
				}
			}
		}
	}
}

func (w *Writer) append(enc *json.Encoder, evt bus.Event) {
	if err := enc.Encode(evt); err != nil {
		w.logger.Error("append event journal", zap.Error(err))
	}
}

// Close unsubscribes, flushes buffered events and closes the file.
func (w *Writer) Close() error {
	w.unsub()
	close(w.quit)
	<-w.done
	return w.f.Close()
}

// Follow tails the journal from its current end, calling fn for each event
// appended after the call, until ctx is done. The file is created empty when
// missing, so a follower can start before any writer has run.
func Follow(ctx context.Context, path string, fn func(bus.Event)) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	r := bufio.NewReader(f)
	var partial bytes.Buffer
	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for {
				chunk, err := r.ReadBytes('\n')
				partial.Write(chunk)
				if err != nil {
					// Incomplete line; keep it until the writer
					// finishes it.
					break
				}
				var evt bus.Event
				if jsonErr := json.Unmarshal(partial.Bytes(), &evt); jsonErr == nil {
					fn(evt)
				}
				partial.Reset()
			}
		}
	}
}

package store

import (
	"context"
	"sync"

	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/goroutine"
	"ghitdesk/internal/shared/logger"
)

// snapshotWriter performs the fire-and-forget snapshot writes for one
// collection key. Writes happen in panic-safe goroutines; writeMu serializes
// them and seq/lastWritten drop writes overtaken by a newer serialization.
type snapshotWriter struct {
	key   string
	snaps snapshot.Store
	log   logger.Interface

	pending     sync.WaitGroup
	writeMu     sync.Mutex
	seq         uint64
	lastWritten uint64
	seqMu       sync.Mutex
}

func newSnapshotWriter(key string, snaps snapshot.Store, log logger.Interface) *snapshotWriter {
	return &snapshotWriter{key: key, snaps: snaps, log: log}
}

// write schedules an asynchronous snapshot write of data. Failures are
// logged, never surfaced: persistence is fire-and-forget and the in-memory
// state stays authoritative.
func (w *snapshotWriter) write(data []byte) {
	w.seqMu.Lock()
	w.seq++
	seq := w.seq
	w.seqMu.Unlock()

	w.pending.Add(1)
	goroutine.SafeGo(w.log, "persist-"+w.key, func() {
		defer w.pending.Done()
		w.writeMu.Lock()
		defer w.writeMu.Unlock()
		if seq < w.lastWritten {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := w.snaps.Write(ctx, w.key, data); err != nil {
			w.log.Warnw("failed to persist collection snapshot", "collection", w.key, "error", err)
			return
		}
		w.lastWritten = seq
	})
}

// flush blocks until every outstanding write has completed.
func (w *snapshotWriter) flush() {
	w.pending.Wait()
}

// Package pruning deletes uploads that have outlived their TTL.
package pruning

import (
	"context"
	"log/slog"
	"time"

	"github.com/pitchside/pitchside/engine"
	"github.com/pitchside/pitchside/modules/schedule"
)

type Module struct {
	store *schedule.Store
	ttl   time.Duration
}

func New(store *schedule.Store, ttl time.Duration) *Module {
	return &Module{store: store, ttl: ttl}
}

func (m *Module) AttachWorkers(mgr *engine.ProcMgr) {
	mgr.Add(engine.Poll(10*time.Minute, m.prune))
}

func (m *Module) prune(ctx context.Context) bool {
	n, err := m.store.Prune(ctx, m.ttl)
	if err != nil {
		slog.Error("failed to prune expired uploads", "error", err)
		return false
	}
	if n > 0 {
		slog.Info("pruned expired uploads", "count", n)
	}
	return false
}

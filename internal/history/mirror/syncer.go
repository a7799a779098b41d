// Package mirror implements the fire-and-forget sync of the view history
// to a secondary persisted mirror. Failures are logged and swallowed:
// the primary operation must never block on or fail because of the sync.
package mirror

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/alibix/storefront/internal/history/domain"
	"github.com/alibix/storefront/internal/history/repository"
	"github.com/alibix/storefront/pkg/kvstore"
	"github.com/alibix/storefront/pkg/logger"
)

const queueCapacity = 16

// ViewPublisher emits a view event to the message bus. Optional.
type ViewPublisher interface {
	PublishProductViewed(ctx context.Context, sessionID string, view domain.ViewRecord) error
}

type syncJob struct {
	sessionID string
	views     []domain.ViewRecord
}

// Syncer drains queued view-list snapshots on a single background
// goroutine and writes them to the session's mirror key.
type Syncer struct {
	store     kvstore.Store
	publisher ViewPublisher
	queue     chan syncJob
	done      chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewSyncer creates and starts a mirror syncer. publisher may be nil.
func NewSyncer(store kvstore.Store, publisher ViewPublisher) *Syncer {
	s := &Syncer{
		store:     store,
		publisher: publisher,
		queue:     make(chan syncJob, queueCapacity),
		done:      make(chan struct{}),
	}
	go s.run()
	return s
}

// Enqueue hands the updated view list to the background syncer.
// When the queue is full the snapshot is dropped: the next mutation
// will carry the complete list anyway. Safe to call during shutdown.
func (s *Syncer) Enqueue(sessionID string, views []domain.ViewRecord) {
	snapshot := make([]domain.ViewRecord, len(views))
	copy(snapshot, views)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.queue <- syncJob{sessionID: sessionID, views: snapshot}:
	default:
		logger.Logger.Warn().Int("pending", len(s.queue)).Msg("Mirror sync queue full, dropping snapshot")
	}
}

// Stop drains outstanding snapshots and stops the background goroutine
func (s *Syncer) Stop() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()
	<-s.done
}

func (s *Syncer) run() {
	defer close(s.done)
	for job := range s.queue {
		s.sync(job)
	}
}

func (s *Syncer) sync(job syncJob) {
	ctx := context.Background()

	snapshot := domain.MirrorSnapshot{
		UserID:   job.sessionID,
		SyncedAt: time.Now().UnixMilli(),
	}
	for _, v := range job.views {
		snapshot.Views = append(snapshot.Views, domain.MirrorEntry{
			ProductID: v.ProductID,
			ViewedAt:  v.ViewedAt,
			ViewCount: v.ViewCount,
		})
	}

	key := repository.MirrorKey(job.sessionID)
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to encode mirror snapshot")
		return
	}
	if err := s.store.Set(ctx, key, string(data)); err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("Mirror sync failed")
		return
	}

	if s.publisher != nil && len(job.views) > 0 {
		if err := s.publisher.PublishProductViewed(ctx, job.sessionID, job.views[0]); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to publish product viewed event")
		}
	}

	logger.Logger.Debug().Str("session_id", job.sessionID).Int("entries", len(job.views)).Msg("View history mirrored")
}

// Package notify writes notifications in the background. Producers never wait
// on storage and never see a delivery failure.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

var ErrDispatcherRunning = errors.New("dispatcher is already running")

type Config struct {
	Workers      int
	QueueSize    int
	WriteTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Workers:      2,
		QueueSize:    256,
		WriteTimeout: 5 * time.Second,
	}
}

// Dispatcher is a bounded queue drained by a fixed set of workers.
type Dispatcher struct {
	config Config
	repo   ports.NotificationRepository
	queue  chan domain.NewNotification
	wg     sync.WaitGroup
	mu     sync.RWMutex
	state  state
}

type state int

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

var _ ports.Notifier = (*Dispatcher)(nil)

func NewDispatcher(config Config, repo ports.NotificationRepository) *Dispatcher {
	defaults := DefaultConfig()
	if config.Workers <= 0 {
		config.Workers = defaults.Workers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = defaults.WriteTimeout
	}

	return &Dispatcher{
		config: config,
		repo:   repo,
		queue:  make(chan domain.NewNotification, config.QueueSize),
	}
}

func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != stateIdle {
		return ErrDispatcherRunning
	}
	d.state = stateRunning

	for i := 0; i < d.config.Workers; i++ {
		d.wg.Add(1)
		go func(workerID string) {
			defer d.wg.Done()
			d.run(workerID)
		}(fmt.Sprintf("notify-worker-%d", i+1))
	}

	zap.L().Info("notification dispatcher started", zap.Int("workers", d.config.Workers))
	return nil
}

// Notify enqueues without blocking. The notification is dropped when the
// queue is full or the dispatcher is not running.
func (d *Dispatcher) Notify(notification domain.NewNotification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.state != stateRunning {
		zap.L().Warn("notification dropped: dispatcher not running",
			zap.String("user_id", notification.UserID),
			zap.String("type", string(notification.Type)),
		)
		return
	}

	select {
	case d.queue <- notification:
	default:
		zap.L().Warn("notification dropped: queue full",
			zap.String("user_id", notification.UserID),
			zap.String("type", string(notification.Type)),
		)
	}
}

// Stop closes the queue and waits for the workers to drain it.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.state != stateRunning {
		d.state = stateStopped
		d.mu.Unlock()
		return nil
	}
	d.state = stateStopped
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		zap.L().Info("notification dispatcher drained")
		return nil
	case <-ctx.Done():
		zap.L().Warn("notification dispatcher stop timed out", zap.Int("pending", len(d.queue)))
		return ctx.Err()
	}
}

func (d *Dispatcher) run(workerID string) {
	for notification := range d.queue {
		d.write(workerID, notification)
	}
}

func (d *Dispatcher) write(workerID string, notification domain.NewNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.WriteTimeout)
	defer cancel()

	_, err := d.repo.Create(ctx, domain.Notification{
		UserID:              notification.UserID,
		Message:             notification.Message,
		RelatedTaskID:       notification.RelatedTaskID,
		RelatedInvitationID: notification.RelatedInvitationID,
		Type:                notification.Type,
	})
	if err != nil {
		zap.L().Error("failed to store notification",
			zap.String("worker", workerID),
			zap.String("user_id", notification.UserID),
			zap.Error(err),
		)
	}
}

package adapters

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// JobHandler processes one job taken from a queue.
type JobHandler func(ctx context.Context, data []byte) error

// QueueAdapter decouples job submission from processing. The only
// implementation here is in-memory: the export pipeline runs inside the same
// process as the record views.
type QueueAdapter interface {
	Publish(ctx context.Context, queueName string, jobData []byte) error
	StartConsuming(ctx context.Context, queueName string, handler JobHandler) error
	StopConsuming(ctx context.Context, queueName string) error
}

const publishTimeout = 2 * time.Second

// InMemoryQueueAdapter implements QueueAdapter over buffered channels, one
// per queue name, with a single consumer goroutine each.
type InMemoryQueueAdapter struct {
	mu       sync.Mutex
	queues   map[string]chan []byte
	stop     map[string]chan struct{}
	wg       sync.WaitGroup
	logger   zerolog.Logger
	rootCtx  context.Context
	rootStop context.CancelFunc
}

func NewInMemoryQueueAdapter(logger zerolog.Logger) *InMemoryQueueAdapter {
	ctx, cancel := context.WithCancel(context.Background())
	return &InMemoryQueueAdapter{
		queues:   make(map[string]chan []byte),
		stop:     make(map[string]chan struct{}),
		logger:   logger,
		rootCtx:  ctx,
		rootStop: cancel,
	}
}

func (q *InMemoryQueueAdapter) queue(queueName string) (chan []byte, chan struct{}) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.queues[queueName]; !ok {
		q.queues[queueName] = make(chan []byte, 100)
		q.stop[queueName] = make(chan struct{})
		q.logger.Debug().Str("queue", queueName).Msg("in-memory queue created")
	}
	return q.queues[queueName], q.stop[queueName]
}

func (q *InMemoryQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	ch, _ := q.queue(queueName)
	select {
	case ch <- jobData:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return errors.New("timeout publishing to queue " + queueName)
	}
}

// StartConsuming launches the consumer goroutine for queueName. Handler
// errors are logged and the job dropped; there is no retry.
func (q *InMemoryQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler JobHandler) error {
	ch, stopCh := q.queue(queueName)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.logger.Debug().Str("queue", queueName).Msg("consumer started")
		for {
			select {
			case data, ok := <-ch:
				if !ok {
					return
				}
				if err := handler(q.rootCtx, data); err != nil {
					q.logger.Error().Err(err).Str("queue", queueName).Msg("job failed")
				}
			case <-stopCh:
				q.logger.Debug().Str("queue", queueName).Msg("consumer stopped")
				return
			case <-ctx.Done():
				return
			case <-q.rootCtx.Done():
				return
			}
		}
	}()
	return nil
}

func (q *InMemoryQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if stopCh, ok := q.stop[queueName]; ok {
		close(stopCh)
		delete(q.stop, queueName)
	}
	return nil
}

// Shutdown cancels every consumer and waits for them to drain.
func (q *InMemoryQueueAdapter) Shutdown() {
	q.rootStop()
	q.wg.Wait()
}

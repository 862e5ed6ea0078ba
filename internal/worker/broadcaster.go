package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MessageSender exposes the subset of notifier functionality required by the
// broadcaster.
type MessageSender interface {
	Send(ctx context.Context, chat, text, parseMode string) error
}

// Pause between sends per worker keeps the pool under the Bot API flood limit.
const sendPause = 50 * time.Millisecond

// Broadcaster fans admin messages out to Telegram chats concurrently.
type Broadcaster struct {
	sender  MessageSender
	workers int
	logger  *slog.Logger

	jobs   chan broadcastJob
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

type broadcastJob struct {
	chat string
	text string
}

// NewBroadcaster constructs the broadcast worker pool.
func NewBroadcaster(sender MessageSender, workers int, logger *slog.Logger) *Broadcaster {
	if workers <= 0 {
		workers = 1
	}
	return &Broadcaster{
		sender:  sender,
		workers: workers,
		logger:  logger,
		jobs:    make(chan broadcastJob, workers*16),
	}
}

// Start launches background senders.
func (b *Broadcaster) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	b.ctx = runCtx
	b.cancel = cancel

	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go b.worker(runCtx)
	}
}

// Stop drains in-flight feeders and waits for all workers to finish.
func (b *Broadcaster) Stop() {
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
		b.ctx = nil
	}
	b.mu.Unlock()

	b.wg.Wait()
}

// Broadcast queues the text for delivery to every chat without blocking the
// caller. Messages queued before Start or after Stop are dropped.
func (b *Broadcaster) Broadcast(text string, chatIDs []string) {
	b.mu.Lock()
	ctx := b.ctx
	if ctx == nil {
		b.mu.Unlock()
		b.logger.Warn("broadcast dropped, pool not running", slog.Int("chats", len(chatIDs)))
		return
	}
	b.wg.Add(1)
	b.mu.Unlock()
	go func() {
		defer b.wg.Done()
		for _, chat := range chatIDs {
			select {
			case <-ctx.Done():
				return
			case b.jobs <- broadcastJob{chat: chat, text: text}:
			}
		}
	}()
}

func (b *Broadcaster) worker(ctx context.Context) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-b.jobs:
			if err := b.sender.Send(ctx, job.chat, job.text, ""); err != nil {
				b.logger.Warn("broadcast send failed", slog.String("chat", job.chat), slog.String("error", err.Error()))
			}
			time.Sleep(sendPause)
		}
	}
}

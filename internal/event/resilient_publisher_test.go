package event

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails according to shouldFail, called with the 1-based call number
type flakyBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(call int) bool
	delay      time.Duration
}

func (b *flakyBus) Publish(ctx context.Context, e Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, e)
	n := len(b.calls)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.shouldFail != nil && b.shouldFail(n) {
		return errors.New("relay unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []DeadLetterEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		out = append(out, e)
	}
	return out
}

func deadLetterCount(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return bytes.Count(data, []byte("\n"))
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), Event{Type: FeedPublished}))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.count())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(call int) bool { return call == 1 }}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), Event{Type: HackResolved})

	assert.Eventually(t, func() bool { return bus.count() == 2 }, time.Second, 10*time.Millisecond)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ExhaustionDeadLetters(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), Event{Type: ItemPurchased, Payload: map[string]any{"item_id": "i1"}})

	// initial attempt plus three retries
	assert.Eventually(t, func() bool { return deadLetterCount(path) == 1 }, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, 4, bus.count())

	entry := readDeadLetters(t, path)[0]
	assert.Equal(t, ItemPurchased, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "relay unavailable", entry.LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
}

func TestResilientPublisher_QueueOverflowDeadLetters(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(int) bool { return true }, delay: 20 * time.Millisecond}

	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Second,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	rp.wg.Add(1)
	go rp.retryWorker()

	for i := 0; i < 6; i++ {
		rp.PublishWithRetry(context.Background(), Event{Type: FeedPublished, Payload: i})
	}

	assert.NotEmpty(t, readDeadLetters(t, path))
	require.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(call int) bool { return call <= 2 }}

	rp, err := NewResilientPublisher(bus, 5, time.Minute, path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rp.PublishWithRetry(context.Background(), Event{Type: TaskClaimed, Payload: i})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// three inline attempts plus one final attempt for each queued failure
	assert.Equal(t, 5, bus.count())
	assert.Empty(t, readDeadLetters(t, path))
	assert.NoError(t, rp.Shutdown(ctx), "second shutdown is a no-op")
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				rp.PublishWithRetry(context.Background(), Event{Type: FeedPublished})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, bus.count())
}

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) error

func (f handlerFunc) Process(ctx context.Context, payload json.RawMessage) error { return f(ctx, payload) }

// popJob takes the next raw job off the queue, as BRPOP would.
func popJob(t *testing.T, rdb *redis.Client, queue string) string {
	t.Helper()
	raw, err := rdb.RPop(context.Background(), queue).Result()
	require.NoError(t, err)
	return raw
}

func TestDispatcher_EncolaConID(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	d := NewDispatcher(rdb)
	require.NoError(t, d.EnqueueEmail(ctx, EmailJobPayload{ToEmail: "ana@example.com", Subject: "Estado"}))

	var job Job
	require.NoError(t, json.Unmarshal([]byte(popJob(t, rdb, QueueEmail)), &job))
	assert.Equal(t, JobEmail, job.Type)
	assert.NotEmpty(t, job.ID)
	assert.Zero(t, job.Attempts)

	var payload EmailJobPayload
	require.NoError(t, json.Unmarshal(job.Payload, &payload))
	assert.Equal(t, "ana@example.com", payload.ToEmail)
}

func TestPool_ReintentaYLuegoDLQ(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	calls := 0
	p := NewPool(rdb)
	p.backoff = 0
	p.Register(QueueEmail, JobEmail, handlerFunc(func(context.Context, json.RawMessage) error {
		calls++
		return errors.New("smtp caido")
	}))

	require.NoError(t, NewDispatcher(rdb).EnqueueEmail(ctx, EmailJobPayload{ToEmail: "ana@example.com"}))
	for i := 0; i < MaxAttempts; i++ {
		p.processJob(ctx, QueueEmail, popJob(t, rdb, QueueEmail))
	}

	assert.Equal(t, MaxAttempts, calls)
	n, err := rdb.LLen(ctx, QueueEmail).Result()
	require.NoError(t, err)
	assert.Zero(t, n, "no se reencola tras el ultimo intento")

	entries, err := DLQEntries(ctx, rdb, QueueEmail, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, MaxAttempts, entries[0].Attempts)
	assert.Equal(t, "smtp caido", entries[0].Reason)
	assert.Equal(t, JobEmail, entries[0].JobType)
}

func TestPool_ErrorPermanenteVaDirectoADLQ(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	p := NewPool(rdb)
	p.backoff = 0
	p.Register(QueueEmail, JobEmail, NewEmailWorker(&fakeSender{}, passthroughBreaker{}))

	require.NoError(t, NewDispatcher(rdb).EnqueueEmail(ctx, EmailJobPayload{Subject: "sin destinatario"}))
	p.processJob(ctx, QueueEmail, popJob(t, rdb, QueueEmail))

	n, err := DLQLength(ctx, rdb, QueueEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPool_JobIlegibleYTipoDesconocido(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()
	p := NewPool(rdb)

	p.processJob(ctx, QueueEmail, "{no es json")
	p.processJob(ctx, QueueEmail, `{"id":"x","type":"fax","payload":{}}`)

	entries, err := DLQEntries(ctx, rdb, QueueEmail, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "fax", entries[0].JobType)
	assert.Equal(t, "unknown", entries[1].JobType)
}

func TestPool_StartConsumeLaCola(t *testing.T) {
	rdb := newTestRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{}
	p := NewPool(rdb)
	p.Register(QueueEmail, JobEmail, NewEmailWorker(sender, passthroughBreaker{}))
	p.Start(ctx, 2)

	require.NoError(t, NewDispatcher(rdb).EnqueueEmail(ctx, EmailJobPayload{ToEmail: "ana@example.com", PDFPath: "/tmp/x.pdf"}))

	require.Eventually(t, func() bool { return len(sender.sent()) == 1 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "ana@example.com", sender.sent()[0].ToEmail)
}

func TestPool_PausaSiRedisNoResponde(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pausas []time.Duration
	p := NewPool(rdb)
	p.Register(QueueEmail, JobEmail, handlerFunc(func(context.Context, json.RawMessage) error { return nil }))
	p.esperar = func(_ context.Context, d time.Duration) {
		pausas = append(pausas, d)
		cancel()
	}

	done := make(chan struct{})
	go func() {
		p.run(ctx, 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("el worker no termino")
	}
	require.Len(t, pausas, 1)
	assert.Equal(t, p.errPause, pausas[0])
}

// ── Email worker ─────────────────────────────────────────────────────────────

type fakeSender struct {
	mu   sync.Mutex
	msgs []EmailJobPayload
	err  error
}

func (s *fakeSender) Send(to, subject, body, pdfPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.msgs = append(s.msgs, EmailJobPayload{ToEmail: to, Subject: subject, Body: body, PDFPath: pdfPath})
	return nil
}

func (s *fakeSender) sent() []EmailJobPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EmailJobPayload(nil), s.msgs...)
}

type passthroughBreaker struct{}

func (passthroughBreaker) Execute(fn func() error) error { return fn() }

type openBreaker struct{}

func (openBreaker) Execute(func() error) error { return errors.New("circuit breaker is open") }

func TestEmailWorker(t *testing.T) {
	ctx := context.Background()
	raw, _ := json.Marshal(EmailJobPayload{ToEmail: "ana@example.com", Subject: "s", Body: "b", PDFPath: "p.pdf"})

	sender := &fakeSender{}
	require.NoError(t, NewEmailWorker(sender, passthroughBreaker{}).Process(ctx, raw))
	require.Len(t, sender.sent(), 1)
	assert.Equal(t, "p.pdf", sender.sent()[0].PDFPath)

	failing := &fakeSender{err: errors.New("550 mailbox unavailable")}
	err := NewEmailWorker(failing, passthroughBreaker{}).Process(ctx, raw)
	require.Error(t, err)
	var perm *PermanentError
	assert.False(t, errors.As(err, &perm), "un fallo SMTP se reintenta")

	untouched := &fakeSender{}
	assert.Error(t, NewEmailWorker(untouched, openBreaker{}).Process(ctx, raw))
	assert.Empty(t, untouched.sent())

	err = NewEmailWorker(sender, passthroughBreaker{}).Process(ctx, json.RawMessage(`[]`))
	assert.True(t, errors.As(err, &perm))
}

package profiles

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/househarmony/internal/domain"
	"github.com/nfrund/househarmony/internal/profileapi"
	"github.com/nfrund/househarmony/internal/profileapi/profileapitest"
	"github.com/nfrund/househarmony/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPublisher captures published messages.
type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.msgs))
	for _, m := range p.msgs {
		out = append(out, m.Topic)
	}
	return out
}

func TestWithEvents_PublishesOnSuccessOnly(t *testing.T) {
	ctx := context.Background()
	srv := profileapitest.NewServer()
	t.Cleanup(srv.Close)

	pub := &recordingPublisher{}
	svc := WithEvents(profileapi.NewClient(srv.URL), pub)

	p, err := svc.Create(ctx, domain.Draft{Name: "Ana", Icon: domain.DefaultIcon})
	require.NoError(t, err)
	_, err = svc.Update(ctx, p.ID, domain.Draft{Name: "Ana Maria", Icon: domain.DefaultIcon})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, p.ID))

	srv.FailWith("create", http.StatusInternalServerError)
	_, err = svc.Create(ctx, domain.Draft{Name: "Luis", Icon: domain.DefaultIcon})
	require.Error(t, err)
	assert.Error(t, svc.Delete(ctx, 99))

	assert.Equal(t, []string{"profiles.created", "profiles.updated", "profiles.deleted"}, pub.topics())
}

func TestWithEvents_NilPublisher(t *testing.T) {
	svc := &stubService{}
	assert.Same(t, svc, WithEvents(svc, nil))
}

func TestSubscribeAudit(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&lockedWriter{mu: &mu, w: &buf}, nil))
	require.NoError(t, SubscribeAudit(ctx, bus, logger))

	require.NoError(t, pubsub.Publish(ctx, bus, ProfileCreated, ProfileEvent{ID: 3, Name: "Ana"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return bytes.Contains(buf.Bytes(), []byte("topic=profiles.created profile_id=3 name=Ana"))
	}, 2*time.Second, 10*time.Millisecond)
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

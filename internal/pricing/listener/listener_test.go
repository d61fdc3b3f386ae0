package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader serves queued messages and then blocks until the context ends.
type fakeReader struct {
	mu       sync.Mutex
	messages []kafka.Message
	errs     []error
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		r.mu.Unlock()
		return kafka.Message{}, err
	}
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

type fakePricing struct {
	mu     sync.Mutex
	inputs []dto.SetChannelPriceInput
	done   chan struct{}
}

func (f *fakePricing) InitialPrice(context.Context, string, string, int64, string) (*model.ChannelPrice, error) {
	return nil, nil
}

func (f *fakePricing) SetChannelPrice(_ context.Context, input *dto.SetChannelPriceInput) (*model.ChannelPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, *input)
	if len(f.inputs) == 1 {
		close(f.done)
	}
	return &model.ChannelPrice{}, nil
}

func (f *fakePricing) ListPriceChanges(context.Context, *dto.PriceChangeFilters) ([]model.PriceChange, int, error) {
	return nil, 0, nil
}

func event(t *testing.T, eventType string) kafka.Message {
	t.Helper()
	value, err := json.Marshal(ChannelPriceSetEvent{
		EventID:   "evt-1",
		EventType: eventType,
		Payload:   ChannelPricePayload{VariantID: "v1", ChannelID: "web", Price: 1500},
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	return kafka.Message{Value: value}
}

func TestPriceListenerAppliesEvents(t *testing.T) {
	reader := &fakeReader{
		errs: []error{errors.New("broker unavailable")},
		messages: []kafka.Message{
			{Value: []byte("not json")},
			event(t, "OrderCreated"),
			event(t, EventChannelPriceSet),
		},
	}
	uc := &fakePricing{done: make(chan struct{})}
	l := NewPriceListener(reader, uc, logger.NewNop())
	l.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(stopped)
	}()

	select {
	case <-uc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not processed")
	}
	cancel()
	<-stopped

	uc.mu.Lock()
	defer uc.mu.Unlock()
	require.Len(t, uc.inputs, 1)
	assert.Equal(t, "v1", uc.inputs[0].VariantID)
	assert.Equal(t, "web", uc.inputs[0].ChannelID)
	assert.Equal(t, int64(1500), uc.inputs[0].Price)
	assert.Equal(t, "evt-1", uc.inputs[0].ReferenceID)
	assert.Equal(t, "event", uc.inputs[0].ReferenceType)
}

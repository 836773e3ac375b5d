package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	mu        sync.Mutex
	published []amqp.Publishing
	keys      []string
	exchanges []string
	err       error
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.exchanges = append(f.exchanges, exchange)
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

type fakeDelivery struct {
	acked, nacked, requeued bool
}

func (d *fakeDelivery) Ack(bool) error {
	d.acked = true
	return nil
}

func (d *fakeDelivery) Nack(_, requeue bool) error {
	d.nacked = true
	d.requeued = requeue
	return nil
}

func TestPublishMessage(t *testing.T) {
	ch := &fakeChannel{}
	type msg struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	require.NoError(t, PublishMessage(ch, "notifications", RoutingSupportResolved, msg{ID: 7, Name: "hi"}))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "notifications", ch.exchanges[0])
	assert.Equal(t, RoutingSupportResolved, ch.keys[0])
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

	var got msg
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &got))
	assert.Equal(t, msg{ID: 7, Name: "hi"}, got)
}

func TestPublishMessage_Errors(t *testing.T) {
	err := PublishMessage(&fakeChannel{}, "x", "y", make(chan int))
	assert.Error(t, err)

	err = PublishMessage(&fakeChannel{err: errors.New("channel closed")}, "x", "y", "ok")
	assert.ErrorContains(t, err, "channel closed")
}

func TestPublisher_ConcurrentPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := NewPublisher(ch, "notifications")

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, p.Publish(context.Background(), RoutingQuestionModerated, i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, ch.published, 20)
}

func TestPublisher_CanceledContext(t *testing.T) {
	ch := &fakeChannel{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPublisher(ch, "notifications").Publish(ctx, RoutingQuestionModerated, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ch.published)
}

func TestHandle_AckAndNack(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ok := &fakeDelivery{}
	handle([]byte("{}"), ok, func([]byte) error { return nil }, log)
	assert.True(t, ok.acked)
	assert.False(t, ok.nacked)

	failed := &fakeDelivery{}
	handle([]byte("{}"), failed, func([]byte) error { return errors.New("smtp down") }, log)
	assert.False(t, failed.acked)
	assert.True(t, failed.nacked)
	assert.True(t, failed.requeued)
}

func TestNotificationQueues(t *testing.T) {
	queues := NotificationQueues()
	require.Len(t, queues, 2)

	seen := map[string]bool{}
	for _, q := range queues {
		assert.Falsef(t, seen[q.QueueName], "duplicate queue name: %s", q.QueueName)
		seen[q.QueueName] = true
	}
	assert.Equal(t, RoutingQuestionModerated, queues[0].RoutingKey)
	assert.Equal(t, RoutingSupportResolved, queues[1].RoutingKey)
}

package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designermonk/internal/domain/entity"
)

func newTestClient(t *testing.T, uri string) *Client {
	t.Helper()

	client, err := NewClient(Config{
		URI:        uri,
		StreamName: StreamName,
		GroupName:  GroupName,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func publishEvents(t *testing.T, client *Client, events []entity.PipelineEvent) {
	t.Helper()

	publisher := NewPublisher(client, PublisherConfig{Timeout: 1000})
	for _, ev := range events {
		require.NoError(t, publisher.Publish(context.Background(), ev))
	}
}

func pendingCount(t *testing.T, client *Client) int64 {
	t.Helper()

	pending, err := client.redis.XPending(context.Background(), StreamName, GroupName).Result()
	require.NoError(t, err)

	return pending.Count
}

func decodeEvent(t *testing.T, body string) entity.PipelineEvent {
	t.Helper()

	var ev entity.PipelineEvent
	require.NoError(t, json.Unmarshal([]byte(body), &ev))

	return ev
}

func TestReceiverDeliversPublishedEvents(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		events []entity.PipelineEvent
	}{
		{"rejected upload", []entity.PipelineEvent{
			{RequestID: "req-1", Stage: entity.StageInvalid, Kind: "InvalidFileType", Message: "Only image files are allowed!", At: at},
		}},
		{"committed upload", []entity.PipelineEvent{
			{RequestID: "req-2", Stage: entity.StageFiltered, Bytes: 2048, At: at},
			{RequestID: "req-2", Stage: entity.StageCompressed, Bytes: 1024, Escalated: true, Duration: 0.25, At: at},
			{RequestID: "req-2", Stage: entity.StageUploaded, URL: "https://cdn.example/p.jpg", At: at},
			{RequestID: "req-2", Stage: entity.StageCommitted, ProjectID: "66f0c3", At: at},
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uri, terminate := setupRedis(t)
			defer terminate()

			client := newTestClient(t, uri)
			publishEvents(t, client, tt.events)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			ch, err := NewReceiver(client).Messages(ctx, Consumer)
			require.NoError(t, err)

			for _, want := range tt.events {
				msg, ok := <-ch
				require.True(t, ok, "channel closed before %s arrived", want.Stage)

				got := decodeEvent(t, msg.Body())
				assert.True(t, want.At.Equal(got.At))
				got.At = want.At
				assert.Equal(t, want, got)
				assert.NoError(t, msg.Ack())
			}

			assert.Zero(t, pendingCount(t, client))
		})
	}
}

func TestReceiverNackLeavesEntryPending(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	client := newTestClient(t, uri)
	publishEvents(t, client, []entity.PipelineEvent{
		{RequestID: "req-nack", Stage: entity.StageStoreError, Message: "Invalid API Key"},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := NewReceiver(client).Messages(ctx, Consumer)
	require.NoError(t, err)

	msg := <-ch
	require.NotNil(t, msg)
	assert.Equal(t, entity.StageStoreError, decodeEvent(t, msg.Body()).Stage)
	require.NoError(t, msg.Nack())

	pending, err := client.redis.XPending(context.Background(), StreamName, GroupName).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending.Count)
	assert.EqualValues(t, 1, pending.Consumers[Consumer])

	require.NoError(t, msg.Ack())
	assert.Zero(t, pendingCount(t, client))
}

func TestReceiverCancelWhileWaitingForEntries(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	client := newTestClient(t, uri)
	receiver := NewReceiver(client)
	receiver.blockTime = 200 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := receiver.Messages(ctx, "consumer-idle")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "expected channel to be closed after cancel")
	case <-time.After(3 * time.Second):
		t.Fatal("receiver did not stop after cancel")
	}
}

func TestReceiverCancelWhileDeliveryIsUnread(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	client := newTestClient(t, uri)
	publishEvents(t, client, []entity.PipelineEvent{
		{RequestID: "req-stuck", Stage: entity.StageFiltered},
	})

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := NewReceiver(client).Messages(ctx, "consumer-stuck")
	require.NoError(t, err)

	// The entry is pending once read from the group; the loop then waits on
	// the unbuffered channel nobody reads.
	require.Eventually(t, func() bool {
		pending, err := client.redis.XPending(context.Background(), StreamName, GroupName).Result()

		return err == nil && pending.Count == 1
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	time.Sleep(200 * time.Millisecond)

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "expected channel to be closed after cancel")
	case <-time.After(3 * time.Second):
		t.Fatal("receiver stayed blocked on delivery after cancel")
	}

	assert.EqualValues(t, 1, pendingCount(t, client))
}

func TestReceiverConcurrentConsumers(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	client := newTestClient(t, uri)

	totalEvents := 100
	workers := 5
	events := make([]entity.PipelineEvent, totalEvents)
	for i := range events {
		events[i] = entity.PipelineEvent{RequestID: fmt.Sprintf("req-%d", i), Stage: entity.StageCommitted}
	}
	publishEvents(t, client, events)

	received := make(chan string, totalEvents)
	var wg sync.WaitGroup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	receiver := NewReceiver(client)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			ch, err := receiver.Messages(ctx, fmt.Sprintf("consumer-%d", id))
			if err != nil {
				return
			}
			for msg := range ch {
				var ev entity.PipelineEvent
				if json.Unmarshal([]byte(msg.Body()), &ev) == nil {
					received <- ev.RequestID
				}
				_ = msg.Ack()
			}
		}(i)
	}

	wg.Wait()
	close(received)

	seen := make(map[string]bool)
	for id := range received {
		assert.False(t, seen[id], "event delivered twice: %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, totalEvents)
}

func TestReceiverWithoutClient(t *testing.T) {
	t.Parallel()

	receiver := &Receiver{}
	ch, err := receiver.Messages(context.Background(), "invalid-consumer")
	assert.Nil(t, ch)
	assert.Error(t, err)
}

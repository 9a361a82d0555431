package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontoffice-backend/internal/model"
)

// mockSender is a mock implementation of the NotificationSender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

type fakeSubs struct {
	mu      sync.Mutex
	byFloor map[int][]model.PushSubscription
	err     error
	deleted []string
}

func (f *fakeSubs) SubscriptionsForFloor(_ context.Context, floor int) ([]model.PushSubscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byFloor[floor], f.err
}

func (f *fakeSubs) DeleteSubscription(_ context.Context, endpoint string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, endpoint)
	return nil
}

func (f *fakeSubs) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func response(code int) *http.Response {
	return &http.Response{StatusCode: code, Body: io.NopCloser(bytes.NewBufferString(""))}
}

func TestTaskAlert(t *testing.T) {
	task := model.HousekeepingTask{
		ID: 9, Kind: model.TaskCleaning, Assignee: "Meena", Notes: "Checkout BK-1",
		Room: model.Room{Number: "305", Floor: 3},
	}
	alert := TaskAlert(task, "New task")
	assert.Equal(t, Alert{
		Floor: 3, Room: "305", TaskID: 9, Title: "New task",
		Body: "Room 305: cleaning for Meena (Checkout BK-1)",
	}, alert)
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, &fakeSubs{}, &webpush.Options{})

	assert.True(t, wp.Dispatch(Alert{Room: "101"}))
	select {
	case job := <-wp.jobs:
		assert.Equal(t, "101", job.Room)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DispatchDropsWhenFull(t *testing.T) {
	wp := NewWorkerPool(1, &fakeSubs{}, &webpush.Options{})
	for i := 0; i < cap(wp.jobs); i++ {
		require.True(t, wp.Dispatch(Alert{}))
	}
	assert.False(t, wp.Dispatch(Alert{Room: "overflow"}))
}

func TestWorkerPool_WorkerLogic(t *testing.T) {
	subs := &fakeSubs{byFloor: map[int][]model.PushSubscription{
		2: {{Endpoint: "https://example.com/push", P256DH: "test_p256dh", Auth: "test_auth"}},
		4: {{Endpoint: "https://example.com/expired", P256DH: "k", Auth: "a"}},
	}}
	wp := NewWorkerPool(1, subs, &webpush.Options{TTL: 60})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	t.Run("sends notification for the floor", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				defer wg.Done()
				assert.Equal(t, "https://example.com/push", sub.Endpoint)
				assert.Equal(t, "test_p256dh", sub.Keys.P256dh)
				assert.Equal(t, 60, options.TTL)

				var got Alert
				assert.NoError(t, json.Unmarshal(payload, &got))
				assert.Equal(t, "204", got.Room)
				return response(http.StatusCreated), nil
			},
		}

		wp.Dispatch(Alert{Floor: 2, Room: "204", Title: "Room ready"})
		wg.Wait()
		assert.Empty(t, subs.Deleted())
	})

	t.Run("deletes expired subscription", func(t *testing.T) {
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				return response(http.StatusGone), nil
			},
		}

		wp.Dispatch(Alert{Floor: 4, Room: "401"})
		assert.Eventually(t, func() bool {
			return len(subs.Deleted()) == 1
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, []string{"https://example.com/expired"}, subs.Deleted())
	})

	t.Run("no subscriptions, nothing sent", func(t *testing.T) {
		sent := make(chan struct{}, 1)
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				sent <- struct{}{}
				return response(http.StatusCreated), nil
			},
		}

		wp.Dispatch(Alert{Floor: 9, Room: "901"})
		select {
		case <-sent:
			t.Fatal("unexpected notification")
		case <-time.After(100 * time.Millisecond):
		}
	})
}

func TestWorkerPool_LookupError(t *testing.T) {
	subs := &fakeSubs{err: errors.New("db down")}
	wp := NewWorkerPool(1, subs, &webpush.Options{})
	wp.sender = &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			t.Fatal("sender must not be called")
			return nil, nil
		},
	}
	wp.sendAlert(context.Background(), Alert{Floor: 1})
	assert.Empty(t, subs.Deleted())
}

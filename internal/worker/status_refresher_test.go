package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/intake"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(500 * time.Millisecond)
	for {
		if cond() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for worker")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestNewStatusRefresherDefaults(t *testing.T) {
	ref := NewStatusRefresher(&testhelpers.RefreshFacadeStub{}, time.Second, 0, 0, discardLogger())
	if ref.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", ref.batchSize)
	}
	if ref.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", ref.workers)
	}
}

func TestStatusRefresherAppliesOrderUpdates(t *testing.T) {
	facade := &testhelpers.RefreshFacadeStub{
		PendingOrders: []model.Order{{ID: 1, Number: "SO-1", Status: model.OrderStatusConfirmed}},
	}
	ref := NewStatusRefresher(facade, 10*time.Millisecond, 2, 2, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ref.Start(ctx)

	waitFor(t, func() bool {
		facade.Lock()
		defer facade.Unlock()
		return len(facade.OrderUpdates) > 0
	})
	ref.Stop()

	facade.Lock()
	defer facade.Unlock()
	if facade.OrderUpdates[0].Number != "SO-1" {
		t.Fatalf("unexpected update: %+v", facade.OrderUpdates[0])
	}
	if facade.OrderUpdates[0].Status != model.OrderStatusShipped {
		t.Fatalf("expected shipped status, got %v", facade.OrderUpdates[0].Status)
	}
}

func TestStatusRefresherAppliesReturnUpdates(t *testing.T) {
	facade := &testhelpers.RefreshFacadeStub{
		PendingReturns: []model.ReturnRequest{{ID: "ret-1", Status: model.ReturnStatusPending}},
	}
	ref := NewStatusRefresher(facade, 10*time.Millisecond, 2, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ref.Start(ctx)

	waitFor(t, func() bool {
		facade.Lock()
		defer facade.Unlock()
		return len(facade.ReturnUpdates) > 0
	})
	ref.Stop()

	facade.Lock()
	defer facade.Unlock()
	if facade.ReturnUpdates[0].ID != "ret-1" || facade.ReturnUpdates[0].Status != model.ReturnStatusApproved {
		t.Fatalf("unexpected update: %+v", facade.ReturnUpdates[0])
	}
}

func TestStatusRefresherSkipsUnchangedStatus(t *testing.T) {
	polled := make(chan struct{}, 1)
	facade := &testhelpers.RefreshFacadeStub{
		PendingOrders: []model.Order{{ID: 1, Number: "SO-1", Status: model.OrderStatusShipped}},
		RefreshOrderStatusFn: func(ctx context.Context, number string) (*model.OrderStatusUpdate, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return &model.OrderStatusUpdate{Number: number, Status: model.OrderStatusShipped}, nil
		},
	}
	ref := NewStatusRefresher(facade, 10*time.Millisecond, 1, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ref.Start(ctx)

	select {
	case <-polled:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for poll")
	}
	ref.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.OrderUpdates) != 0 {
		t.Fatalf("expected no updates for unchanged status, got %+v", facade.OrderUpdates)
	}
}

func TestStatusRefresherIgnoresUnknownOrders(t *testing.T) {
	polled := make(chan struct{}, 1)
	facade := &testhelpers.RefreshFacadeStub{
		PendingOrders: []model.Order{{ID: 1, Number: "SO-1", Status: model.OrderStatusConfirmed}},
		RefreshOrderStatusFn: func(context.Context, string) (*model.OrderStatusUpdate, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return nil, intake.ErrOrderUnknown
		},
	}
	ref := NewStatusRefresher(facade, 10*time.Millisecond, 1, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ref.Start(ctx)

	select {
	case <-polled:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for poll")
	}
	ref.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.OrderUpdates) != 0 {
		t.Fatalf("expected no updates, got %+v", facade.OrderUpdates)
	}
}

func TestStatusRefresherSurvivesFetchErrors(t *testing.T) {
	fetches := make(chan struct{}, 2)
	facade := &testhelpers.RefreshFacadeStub{
		OrdersForRefreshFn: func(context.Context, int) ([]model.Order, error) {
			select {
			case fetches <- struct{}{}:
			default:
			}
			return nil, errors.New("db down")
		},
		PendingReturns: []model.ReturnRequest{{ID: "ret-1", Status: model.ReturnStatusPending}},
	}
	ref := NewStatusRefresher(facade, 10*time.Millisecond, 1, 1, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ref.Start(ctx)

	// A failing order fetch must not block return refreshing.
	waitFor(t, func() bool {
		facade.Lock()
		defer facade.Unlock()
		return len(facade.ReturnUpdates) > 0
	})
	ref.Stop()

	select {
	case <-fetches:
	default:
		t.Fatal("expected at least one order fetch attempt")
	}
}

func TestStatusRefresherStopIsIdempotent(t *testing.T) {
	ref := NewStatusRefresher(&testhelpers.RefreshFacadeStub{}, time.Hour, 1, 1, discardLogger())
	ref.Start(context.Background())
	ref.Stop()
	ref.Stop()
}

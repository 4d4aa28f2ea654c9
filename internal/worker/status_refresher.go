package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/intake"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the worker.
type StorefrontFacade interface {
	OrdersForRefresh(ctx context.Context, limit int) ([]model.Order, error)
	RefreshOrderStatus(ctx context.Context, number string) (*model.OrderStatusUpdate, error)
	ApplyOrderUpdate(ctx context.Context, update model.OrderStatusUpdate) error
	ReturnsForRefresh(ctx context.Context, limit int) ([]model.ReturnRequest, error)
	RefreshReturnStatus(ctx context.Context, id string) (*model.ReturnStatusUpdate, error)
	ApplyReturnUpdate(ctx context.Context, update model.ReturnStatusUpdate) error
}

// refreshJob carries either an order or a return request, never both.
type refreshJob struct {
	order *model.Order
	ret   *model.ReturnRequest
}

// StatusRefresher polls the intake system and keeps the local order and
// return mirrors in sync with upstream statuses.
type StatusRefresher struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan refreshJob
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStatusRefresher constructs the refresh worker pool.
func NewStatusRefresher(facade StorefrontFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *StatusRefresher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &StatusRefresher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan refreshJob, 2*batchSize*workers),
	}
}

// Start launches background refreshing.
func (p *StatusRefresher) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *StatusRefresher) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *StatusRefresher) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *StatusRefresher) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.OrdersForRefresh(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch orders for refresh failed", slog.String("error", err.Error()))
	} else {
		for i := range orders {
			select {
			case <-ctx.Done():
				return
			case p.jobs <- refreshJob{order: &orders[i]}:
			}
		}
	}

	returns, err := p.facade.ReturnsForRefresh(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch returns for refresh failed", slog.String("error", err.Error()))
		return
	}
	for i := range returns {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- refreshJob{ret: &returns[i]}:
		}
	}
}

func (p *StatusRefresher) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			switch {
			case job.order != nil:
				p.refreshOrder(ctx, *job.order)
			case job.ret != nil:
				p.refreshReturn(ctx, *job.ret)
			}
		}
	}
}

func (p *StatusRefresher) refreshOrder(ctx context.Context, order model.Order) {
	update, err := p.facade.RefreshOrderStatus(ctx, order.Number)
	if err != nil {
		if errors.Is(err, intake.ErrOrderUnknown) {
			return
		}
		p.logger.Error("order status fetch failed", slog.String("order", order.Number), slog.String("error", err.Error()))
		return
	}

	if update.Status == order.Status {
		return
	}
	if err := p.facade.ApplyOrderUpdate(ctx, *update); err != nil {
		p.logger.Error("apply order update failed", slog.String("order", order.Number), slog.String("error", err.Error()))
		return
	}
	p.logger.Info("order status refreshed",
		slog.String("order", order.Number),
		slog.String("status", string(update.Status)),
	)
}

func (p *StatusRefresher) refreshReturn(ctx context.Context, ret model.ReturnRequest) {
	update, err := p.facade.RefreshReturnStatus(ctx, ret.ID)
	if err != nil {
		if errors.Is(err, intake.ErrReturnUnknown) {
			return
		}
		p.logger.Error("return status fetch failed", slog.String("return", ret.ID), slog.String("error", err.Error()))
		return
	}

	if update.Status == ret.Status {
		return
	}
	if err := p.facade.ApplyReturnUpdate(ctx, *update); err != nil {
		p.logger.Error("apply return update failed", slog.String("return", ret.ID), slog.String("error", err.Error()))
		return
	}
	p.logger.Info("return status refreshed",
		slog.String("return", ret.ID),
		slog.String("status", string(update.Status)),
	)
}

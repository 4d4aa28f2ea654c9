package timeline

import (
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// orderProgress is the canonical linear delivery sequence.
var orderProgress = []model.OrderStatus{
	model.OrderStatusConfirmed,
	model.OrderStatusProcessing,
	model.OrderStatusShipped,
	model.OrderStatusInTransit,
	model.OrderStatusOutForDelivery,
	model.OrderStatusDelivered,
}

// orderShape is the tagged union of timeline forms an order status can
// take. Classification happens once; rendering handles each variant
// exhaustively instead of re-checking status sets.
type orderShape interface {
	isOrderShape()
}

// orderLinear covers statuses inside the canonical sequence. current is
// -1 for pending and for unrecognized values, which degrade to an
// all-incomplete timeline rather than an error.
type orderLinear struct {
	current int
}

// orderBranch covers statuses that interrupt the sequence: cancellation,
// refund, and the return family.
type orderBranch struct {
	status model.OrderStatus
}

func (orderLinear) isOrderShape() {}
func (orderBranch) isOrderShape() {}

func classifyOrder(status model.OrderStatus) orderShape {
	switch status {
	case model.OrderStatusCancelled,
		model.OrderStatusRefunded,
		model.OrderStatusReturnRequested,
		model.OrderStatusReturnInProgress,
		model.OrderStatusReturned:
		return orderBranch{status: status}
	}
	return orderLinear{current: orderProgressIndex(status)}
}

func orderProgressIndex(status model.OrderStatus) int {
	for i, s := range orderProgress {
		if s == status {
			return i
		}
	}
	return -1
}

// ForOrder derives the display timeline from the order's current status
// and timestamps. Pure projection: safe to recompute on every fetch.
func ForOrder(order model.Order) []model.TimelineStep {
	switch shape := classifyOrder(order.Status).(type) {
	case orderBranch:
		return branchOrderSteps(order, shape.status)
	case orderLinear:
		return linearOrderSteps(order, shape.current)
	}
	return nil
}

func linearOrderSteps(order model.Order, current int) []model.TimelineStep {
	steps := make([]model.TimelineStep, 0, len(orderProgress))
	for idx, status := range orderProgress {
		step := newStep(orderLabels, string(status))
		step.Completed = idx <= current
		step.Current = idx == current
		if idx <= current {
			ts := order.UpdatedAt
			step.Timestamp = &ts
		}
		steps = append(steps, step)
	}
	return steps
}

func branchOrderSteps(order model.Order, branch model.OrderStatus) []model.TimelineStep {
	// The order carries no status history, so the completed prefix uses
	// the branch heuristic: at least the first three canonical steps, or
	// further if the recorded status maps into the sequence.
	prefix := orderProgressIndex(order.Status)
	if prefix < 2 {
		prefix = 2
	}

	steps := make([]model.TimelineStep, 0, prefix+2)
	for idx := 0; idx <= prefix && idx < len(orderProgress); idx++ {
		step := newStep(orderLabels, string(orderProgress[idx]))
		step.Completed = true
		steps = append(steps, step)
	}

	final := newStep(orderLabels, string(branch))
	final.Completed = true
	final.Current = true
	final.Timestamp = branchTimestamp(order)
	return append(steps, final)
}

func branchTimestamp(order model.Order) *time.Time {
	if order.CancelledAt != nil {
		ts := *order.CancelledAt
		return &ts
	}
	ts := order.UpdatedAt
	return &ts
}

func newStep(table map[string]label, status string) model.TimelineStep {
	l := labelFor(table, status)
	return model.TimelineStep{
		ID:     status,
		Status: status,
		Title:  l.Title,
		Icon:   l.Icon,
	}
}

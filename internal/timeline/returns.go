package timeline

import (
	"github.com/polkiloo/storefront/internal/domain/model"
)

// returnShape is the tagged union of timeline forms for a return request:
// linear progress toward the resolution-dependent final step, or the hard
// rejection case.
type returnShape interface {
	isReturnShape()
}

type returnLinear struct {
	current int
}

type returnRejected struct {
	reason string
}

func (returnLinear) isReturnShape()   {}
func (returnRejected) isReturnShape() {}

// returnProgress builds the expected sequence for the request. The final
// step depends on the resolution chosen when the return was opened; this
// is the one place the canonical sequence is parameterized by data.
func returnProgress(resolution model.Resolution) []model.ReturnStatus {
	final := model.ReturnStatusExchanged
	if resolution == model.ResolutionRefund {
		final = model.ReturnStatusRefunded
	}
	return []model.ReturnStatus{
		model.ReturnStatusPending,
		model.ReturnStatusApproved,
		model.ReturnStatusShipped,
		model.ReturnStatusReceived,
		model.ReturnStatusInspecting,
		final,
	}
}

func classifyReturn(req model.ReturnRequest, progress []model.ReturnStatus) returnShape {
	if req.Status == model.ReturnStatusRejected {
		return returnRejected{reason: req.RejectionReason}
	}
	for i, s := range progress {
		if s == req.Status {
			return returnLinear{current: i}
		}
	}
	return returnLinear{current: -1}
}

// ForReturn derives the display timeline for a return request.
func ForReturn(req model.ReturnRequest) []model.TimelineStep {
	progress := returnProgress(req.Resolution)
	switch shape := classifyReturn(req, progress).(type) {
	case returnRejected:
		return rejectedSteps(req, shape.reason)
	case returnLinear:
		return linearReturnSteps(req, progress, shape.current)
	}
	return nil
}

// rejectedSteps renders exactly two entries. Rejection can follow directly
// from pending, so no further canonical prefix is implied.
func rejectedSteps(req model.ReturnRequest, reason string) []model.TimelineStep {
	pending := newStep(returnLabels, string(model.ReturnStatusPending))
	pending.Completed = true

	rejected := newStep(returnLabels, string(model.ReturnStatusRejected))
	rejected.Completed = true
	rejected.Current = true
	rejected.Description = reason
	ts := req.UpdatedAt
	rejected.Timestamp = &ts

	return []model.TimelineStep{pending, rejected}
}

func linearReturnSteps(req model.ReturnRequest, progress []model.ReturnStatus, current int) []model.TimelineStep {
	steps := make([]model.TimelineStep, 0, len(progress))
	for idx, status := range progress {
		step := newStep(returnLabels, string(status))
		step.Completed = idx <= current
		step.Current = idx == current
		if idx <= current {
			ts := req.UpdatedAt
			step.Timestamp = &ts
		}
		steps = append(steps, step)
	}
	return steps
}

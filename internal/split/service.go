package split

import (
	"context"

	"github.com/osse101/StoneSplit_Go/internal/domain"
	"github.com/osse101/StoneSplit_Go/internal/logger"
)

// Service defines the interface for split operations
type Service interface {
	Split(ctx context.Context, items []domain.LineItem, recipients []domain.Recipient) (domain.SplitResult, error)
	Plan(ctx context.Context, items []domain.LineItem, recipients []domain.Recipient) (*Plan, error)
}

// Recorder receives the outcome of every split.
type Recorder interface {
	RecordSplit(recipients, remainder int)
	RecordRejected(reason string)
}

// RejectReasonEmptyInput labels splits refused because a list was empty.
const RejectReasonEmptyInput = "empty_input"

type service struct {
	recorder Recorder
}

// NewService creates a new split service. A nil recorder disables metrics.
func NewService(recorder Recorder) Service {
	return &service{recorder: recorder}
}

func (s *service) Split(ctx context.Context, items []domain.LineItem, recipients []domain.Recipient) (domain.SplitResult, error) {
	plan, err := s.Plan(ctx, items, recipients)
	if err != nil {
		return nil, err
	}
	return plan.Result(), nil
}

func (s *service) Plan(ctx context.Context, items []domain.LineItem, recipients []domain.Recipient) (*Plan, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSplitCalled, "items", len(items), "recipients", len(recipients))

	plan, err := Breakdown(items, recipients)
	if err != nil {
		log.Warn(LogMsgSplitRejected, "error", err)
		if s.recorder != nil {
			s.recorder.RecordRejected(RejectReasonEmptyInput)
		}
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.RecordSplit(len(recipients), plan.Remainder)
	}

	log.Info(LogMsgSplitComputed,
		"total", plan.Total,
		"base", plan.Base,
		"remainder", plan.Remainder,
		"recipients", len(plan.Shares))

	return plan, nil
}

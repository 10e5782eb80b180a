// internal/app/poll_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// failurePrefix starts every chat message about a failed poll.
const failurePrefix = "Сбой в работе программы: "

// Waiter blocks until the next poll is due.
type Waiter interface {
	Wait(ctx context.Context, after time.Time) error
}

// MessageSender delivers a chat message and reports whether it went through.
type MessageSender interface {
	Send(text string) bool
}

// PollState is owned by the poll loop and carried between iterations.
type PollState struct {
	// Cursor is the unix timestamp passed as from_date on the next fetch.
	Cursor int64
	// LastError is the last failure message sent to the chat.
	LastError string
}

// PollService polls the homework API and relays status changes to the chat.
type PollService struct {
	fetcher  homework.Fetcher
	notifier MessageSender
	waiter   Waiter
	logger   *logrus.Entry
	now      func() time.Time
}

func NewPollService(
	fetcher homework.Fetcher,
	notifier MessageSender,
	waiter Waiter,
	logger *logrus.Entry,
) *PollService {
	return &PollService{
		fetcher:  fetcher,
		notifier: notifier,
		waiter:   waiter,
		logger:   logger.WithField("component", "poll_service"),
		now:      time.Now,
	}
}

// NewPollState starts the cursor one period back so the first poll covers recent changes.
func (s *PollService) NewPollState(period time.Duration) *PollState {
	return &PollState{Cursor: s.now().Add(-period).Unix()}
}

// Run polls until ctx is cancelled and returns the context error.
// Failures inside an iteration never stop the loop.
func (s *PollService) Run(ctx context.Context, state *PollState) error {
	s.logger.WithField("cursor", state.Cursor).Info("Starting homework status polling")
	for {
		s.PollOnce(ctx, state)

		if err := s.waiter.Wait(ctx, s.now()); err != nil {
			return err
		}
	}
}

// PollOnce runs a single iteration: fetch, validate, notify, then advance the cursor
// to the moment the iteration started.
func (s *PollService) PollOnce(ctx context.Context, state *PollState) {
	start := s.now().Unix()
	logCtx := s.logger.WithFields(logrus.Fields{
		"poll_id":   uuid.NewString(),
		"from_date": state.Cursor,
	})

	if err := s.processUpdates(ctx, state.Cursor, logCtx); err != nil {
		if ctx.Err() != nil {
			// Shutting down: the failure is ours, not the API's.
			logCtx.WithError(err).Info("Poll interrupted by shutdown")
		} else {
			s.reportFailure(state, err, logCtx)
		}
	}

	if start > state.Cursor {
		state.Cursor = start
	}
}

func (s *PollService) processUpdates(ctx context.Context, fromDate int64, logCtx *logrus.Entry) error {
	payload, err := s.fetcher.FetchStatuses(ctx, fromDate)
	if err != nil {
		return err
	}

	records, err := homework.CheckResponse(payload)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		logCtx.Debug("No new homework statuses in the response")
		return nil
	}

	logCtx.WithField("count", len(records)).Info("Homework status updates received")
	for _, r := range records {
		message, err := homework.ParseStatus(r)
		if err != nil {
			return err
		}
		s.notifier.Send(message)
	}
	return nil
}

func (s *PollService) reportFailure(state *PollState, err error, logCtx *logrus.Entry) {
	message := failurePrefix + err.Error()
	logWithError := logCtx.WithError(err).WithField("kind", errorKind(err))

	if message == state.LastError {
		logWithError.Error("Poll failed again with the same error, notification suppressed")
		return
	}

	logWithError.Error("Poll failed")
	s.notifier.Send(message)
	state.LastError = message
}

func errorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.name
		}
	}
	return fmt.Sprintf("%T", err)
}

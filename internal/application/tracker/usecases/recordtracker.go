package usecases

import (
	"context"
	"fmt"

	"glowtrack/internal/domain/tracker"
	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/logger"
)

// RecordTrackerInput carries one skin check submission.
type RecordTrackerInput struct {
	ClassSummary map[string]interface{}
	ImageURL     string
}

// RecordTrackerResult reports what the submission did to the user's record.
type RecordTrackerResult struct {
	Tracker *tracker.Tracker
	Created bool
	Streak  int
}

// RecordTrackerUseCase logs a skin check against today's tracker. The day
// record is created on first submission and overwritten on later ones, so
// a date counts toward the streak at most once. The streak is recomputed
// only when a new date appears.
type RecordTrackerUseCase struct {
	trackerRepo  tracker.Repository
	streakUpdate *UpdateUserStreakUseCase
	publisher    tracker.Publisher
	clock        biztime.Clock
	logger       logger.Interface
}

// NewRecordTrackerUseCase creates a new RecordTrackerUseCase.
func NewRecordTrackerUseCase(
	trackerRepo tracker.Repository,
	streakUpdate *UpdateUserStreakUseCase,
	publisher tracker.Publisher,
	clock biztime.Clock,
	log logger.Interface,
) *RecordTrackerUseCase {
	return &RecordTrackerUseCase{
		trackerRepo:  trackerRepo,
		streakUpdate: streakUpdate,
		publisher:    publisher,
		clock:        clock,
		logger:       log,
	}
}

// Execute records the submission for today in the business timezone.
func (uc *RecordTrackerUseCase) Execute(ctx context.Context, userID uint, input RecordTrackerInput) (*RecordTrackerResult, error) {
	now := uc.clock.Now()
	today := biztime.DateOf(now)

	t, created, err := uc.trackerRepo.FindOrCreateForDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("find or create tracker: %w", err)
	}

	t.ClassSummary = input.ClassSummary
	t.ImageURL = input.ImageURL
	t.TimeOfDay = now.Format("15:04")
	if err := uc.trackerRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update tracker: %w", err)
	}

	result := &RecordTrackerResult{Tracker: t, Created: created}

	if created {
		streak, err := uc.streakUpdate.Execute(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("recompute streak: %w", err)
		}
		result.Streak = streak
	} else {
		streak, err := uc.streakUpdate.Current(ctx, userID)
		if err != nil {
			return nil, err
		}
		result.Streak = streak
	}

	event := tracker.RecordedEvent{
		TrackerID:  t.ID,
		UserID:     userID,
		Date:       today.String(),
		FirstOfDay: created,
		OccurredAt: now,
	}
	if err := uc.publisher.PublishRecorded(ctx, event); err != nil {
		uc.logger.Warnw("failed to publish tracker event",
			"user_id", userID,
			"tracker_id", t.ID,
			"error", err,
		)
	}

	uc.logger.Debugw("tracker recorded",
		"user_id", userID,
		"date", today.String(),
		"created", created,
		"streak", result.Streak,
	)
	return result, nil
}

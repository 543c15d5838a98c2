package usecases

import (
	"context"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/shared/biztime"
)

// TodayView is today's slice of a routine, as the client renders it.
type TodayView struct {
	RoutineName string
	PushToken   string
	Today       *routine.Day
}

// GetTodayDayUseCase resolves the current weekday in the business offset
// and returns that day of the user's routine.
type GetTodayDayUseCase struct {
	routineRepo routine.Repository
	clock       biztime.Clock
}

// NewGetTodayDayUseCase creates a new GetTodayDayUseCase.
func NewGetTodayDayUseCase(routineRepo routine.Repository, clock biztime.Clock) *GetTodayDayUseCase {
	return &GetTodayDayUseCase{
		routineRepo: routineRepo,
		clock:       clock,
	}
}

// Execute returns today's day, or a not-found error.
func (uc *GetTodayDayUseCase) Execute(ctx context.Context, userID uint) (*TodayView, error) {
	r, err := uc.routineRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := r.DayFor(biztime.WeekdayName(uc.clock.Now()))
	if day == nil {
		return nil, routine.ErrDayNotFound
	}

	return &TodayView{
		RoutineName: r.Name,
		PushToken:   r.PushToken,
		Today:       day,
	}, nil
}

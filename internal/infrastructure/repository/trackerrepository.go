package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"glowtrack/internal/domain/tracker"
	"glowtrack/internal/infrastructure/persistence/mappers"
	"glowtrack/internal/infrastructure/persistence/models"
	"glowtrack/internal/shared/biztime"
)

type TrackerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TrackerMapper
}

func NewTrackerRepository(db *gorm.DB) tracker.Repository {
	return &TrackerRepositoryImpl{
		db:     db,
		mapper: mappers.NewTrackerMapper(),
	}
}

func (r *TrackerRepositoryImpl) FindOrCreateForDate(ctx context.Context, userID uint, date biztime.Date) (*tracker.Tracker, bool, error) {
	day := date.Time(time.UTC)

	var model models.TrackerModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&model).Error
	if err == nil {
		entity, mapErr := r.mapper.ToEntity(&model)
		return entity, false, mapErr
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to find tracker: %w", err)
	}

	model = models.TrackerModel{UserID: userID, Date: day}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		// A concurrent create for the same (user, date) loses the race on
		// the unique index; re-read the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.WithContext(ctx).
				Where("user_id = ? AND date = ?", userID, day).
				First(&model).Error; err != nil {
				return nil, false, fmt.Errorf("failed to re-read tracker after duplicate: %w", err)
			}
			entity, mapErr := r.mapper.ToEntity(&model)
			return entity, false, mapErr
		}
		return nil, false, fmt.Errorf("failed to create tracker: %w", err)
	}

	entity, mapErr := r.mapper.ToEntity(&model)
	return entity, true, mapErr
}

func (r *TrackerRepositoryImpl) Update(ctx context.Context, entity *tracker.Tracker) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map tracker entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update tracker: %w", result.Error)
	}
	return nil
}

func (r *TrackerRepositoryImpl) ListDatesByUser(ctx context.Context, userID uint) ([]biztime.Date, error) {
	var days []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.TrackerModel{}).
		Where("user_id = ?", userID).
		Order("date ASC").
		Pluck("date", &days).Error; err != nil {
		return nil, fmt.Errorf("failed to list tracker dates: %w", err)
	}

	dates := make([]biztime.Date, 0, len(days))
	for _, d := range days {
		dates = append(dates, biztime.DateOf(d))
	}
	return dates, nil
}

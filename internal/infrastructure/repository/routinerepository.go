package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/infrastructure/persistence/mappers"
	"glowtrack/internal/infrastructure/persistence/models"
	"glowtrack/internal/shared/logger"
)

type RoutineRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RoutineMapper
	logger logger.Interface
}

func NewRoutineRepository(db *gorm.DB, log logger.Interface) routine.Repository {
	return &RoutineRepositoryImpl{
		db:     db,
		mapper: mappers.NewRoutineMapper(),
		logger: log,
	}
}

func (r *RoutineRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*routine.Routine, error) {
	var model models.RoutineModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, routine.ErrRoutineNotFound
		}
		return nil, fmt.Errorf("failed to find routine by user ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *RoutineRepositoryImpl) Create(ctx context.Context, entity *routine.Routine) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map routine entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create routine: %w", err)
	}

	entity.ID = model.ID
	entity.CreatedAt = model.CreatedAt
	entity.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RoutineRepositoryImpl) Save(ctx context.Context, entity *routine.Routine) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map routine entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save routine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return routine.ErrRoutineNotFound
	}
	return nil
}

// SaveDays writes only the days document, leaving name and push token
// untouched. The batch jobs go through here so a concurrent rename is
// never clobbered by a sweep.
func (r *RoutineRepositoryImpl) SaveDays(ctx context.Context, entity *routine.Routine) error {
	days, err := r.mapper.DaysToJSON(entity.Days)
	if err != nil {
		return err
	}

	// No rows-affected check: writing an identical document reports zero
	// rows on MySQL and is not an error.
	if err := r.db.WithContext(ctx).
		Model(&models.RoutineModel{}).
		Where("id = ?", entity.ID).
		Update("days", days).Error; err != nil {
		return fmt.Errorf("failed to save routine days: %w", err)
	}
	return nil
}

func (r *RoutineRepositoryImpl) ListPage(ctx context.Context, offset, limit int) ([]*routine.Routine, error) {
	var pageModels []*models.RoutineModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&pageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}

	entities := make([]*routine.Routine, 0, len(pageModels))
	for _, m := range pageModels {
		entity, err := r.mapper.ToEntity(m)
		if err != nil {
			// A corrupt row must not take the rest of its page down with it.
			r.logger.Warnw("skipping unmappable routine row",
				"routine_id", m.ID,
				"user_id", m.UserID,
				"error", err,
			)
			continue
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

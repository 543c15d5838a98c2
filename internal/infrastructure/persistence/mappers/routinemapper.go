package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"glowtrack/internal/domain/routine"
	"glowtrack/internal/infrastructure/persistence/models"
)

type RoutineMapper interface {
	ToEntity(model *models.RoutineModel) (*routine.Routine, error)
	ToModel(entity *routine.Routine) (*models.RoutineModel, error)
	DaysToJSON(days []routine.Day) (datatypes.JSON, error)
}

type RoutineMapperImpl struct{}

func NewRoutineMapper() RoutineMapper {
	return &RoutineMapperImpl{}
}

func (m *RoutineMapperImpl) ToEntity(model *models.RoutineModel) (*routine.Routine, error) {
	if model == nil {
		return nil, nil
	}

	var days []routine.Day
	if len(model.Days) > 0 {
		if err := json.Unmarshal(model.Days, &days); err != nil {
			return nil, fmt.Errorf("failed to unmarshal routine days: %w", err)
		}
	}

	return &routine.Routine{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		PushToken: model.PushToken,
		Days:      days,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func (m *RoutineMapperImpl) ToModel(entity *routine.Routine) (*models.RoutineModel, error) {
	if entity == nil {
		return nil, nil
	}

	days, err := m.DaysToJSON(entity.Days)
	if err != nil {
		return nil, err
	}

	return &models.RoutineModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Name:      entity.Name,
		PushToken: entity.PushToken,
		Days:      days,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}, nil
}

func (m *RoutineMapperImpl) DaysToJSON(days []routine.Day) (datatypes.JSON, error) {
	if days == nil {
		days = []routine.Day{}
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal routine days: %w", err)
	}
	return datatypes.JSON(raw), nil
}

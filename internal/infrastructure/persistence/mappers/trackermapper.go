package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"glowtrack/internal/domain/tracker"
	"glowtrack/internal/infrastructure/persistence/models"
	"glowtrack/internal/shared/biztime"
)

type TrackerMapper interface {
	ToEntity(model *models.TrackerModel) (*tracker.Tracker, error)
	ToModel(entity *tracker.Tracker) (*models.TrackerModel, error)
}

type TrackerMapperImpl struct{}

func NewTrackerMapper() TrackerMapper {
	return &TrackerMapperImpl{}
}

func (m *TrackerMapperImpl) ToEntity(model *models.TrackerModel) (*tracker.Tracker, error) {
	if model == nil {
		return nil, nil
	}

	var summary map[string]interface{}
	if len(model.ClassSummary) > 0 {
		if err := json.Unmarshal(model.ClassSummary, &summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal class summary: %w", err)
		}
	}

	return &tracker.Tracker{
		ID:           model.ID,
		UserID:       model.UserID,
		Date:         biztime.DateOf(model.Date),
		ClassSummary: summary,
		ImageURL:     model.ImageURL,
		TimeOfDay:    model.TimeOfDay,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func (m *TrackerMapperImpl) ToModel(entity *tracker.Tracker) (*models.TrackerModel, error) {
	if entity == nil {
		return nil, nil
	}

	var summary datatypes.JSON
	if entity.ClassSummary != nil {
		raw, err := json.Marshal(entity.ClassSummary)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal class summary: %w", err)
		}
		summary = datatypes.JSON(raw)
	}

	return &models.TrackerModel{
		ID:           entity.ID,
		UserID:       entity.UserID,
		Date:         entity.Date.Time(time.UTC),
		ClassSummary: summary,
		ImageURL:     entity.ImageURL,
		TimeOfDay:    entity.TimeOfDay,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}, nil
}

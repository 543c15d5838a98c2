package mappers

import (
	"glowtrack/internal/domain/user"
	"glowtrack/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return &user.User{
		ID:        model.ID,
		Email:     model.Email,
		Name:      model.Name,
		PushToken: model.PushToken,
		Streak:    model.Streak,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:        entity.ID,
		Email:     entity.Email,
		Name:      entity.Name,
		PushToken: entity.PushToken,
		Streak:    entity.Streak,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"glowtrack/internal/domain/user"
	"glowtrack/internal/infrastructure/persistence/mappers"
	"glowtrack/internal/infrastructure/persistence/models"
	apperrors "glowtrack/internal/shared/errors"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

// SetStreak writes the streak without checking rows affected: rewriting
// an unchanged streak reports zero rows on MySQL and is not an error.
func (r *UserRepositoryImpl) SetStreak(ctx context.Context, id uint, streak int) error {
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("streak", streak).Error; err != nil {
		return fmt.Errorf("failed to set user streak: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) SetPushToken(ctx context.Context, id uint, token string) error {
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("push_token", token).Error; err != nil {
		return fmt.Errorf("failed to set user push token: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) ListPage(ctx context.Context, offset, limit int) ([]*user.User, error) {
	var pageModels []*models.UserModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&pageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	entities := make([]*user.User, 0, len(pageModels))
	for _, m := range pageModels {
		entities = append(entities, r.mapper.ToEntity(m))
	}
	return entities, nil
}

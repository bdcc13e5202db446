package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, params ports.CreateUserParams) (domain.User, error) {
	rec := userModel{
		Username:     strings.TrimSpace(params.Username),
		PasswordHash: params.PasswordHash,
		IsAdmin:      params.IsAdmin,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrConflict
		}
		return domain.User{}, wrapQueryErr(err)
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, wrapQueryErr(err)
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, wrapQueryErr(err)
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) Update(ctx context.Context, params ports.UpdateUserParams) (domain.User, error) {
	updates := map[string]any{}
	if params.Username != nil {
		updates["username"] = strings.TrimSpace(*params.Username)
	}
	if params.PasswordHash != nil {
		updates["password_hash"] = *params.PasswordHash
	}
	if params.IsAdmin != nil {
		updates["is_admin"] = *params.IsAdmin
	}
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&userModel{}).Where("user_id = ?", params.UserID).Updates(updates)
		if res.Error != nil {
			if isUniqueViolation(res.Error) {
				return domain.User{}, domain.ErrConflict
			}
			return domain.User{}, wrapQueryErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.User{}, domain.ErrNotFound
		}
	}
	return r.GetByID(ctx, params.UserID)
}

func (r *userRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&userModel{})
	if res.Error != nil {
		return wrapQueryErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var recs []userModel
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, wrapQueryErr(err)
	}
	out := make([]domain.User, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainUser(rec))
	}
	return out, nil
}

package postgres

import (
	"context"

	"github.com/freshpantry/stockroom/internal/domain"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func (r *messageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	rec := messageModel{
		Name:   message.Name,
		Email:  message.Email,
		Body:   message.Body,
		SentAt: message.SentAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Message{}, wrapQueryErr(err)
	}
	return toDomainMessage(rec), nil
}

func (r *messageRepository) ListAll(ctx context.Context) ([]domain.Message, error) {
	var recs []messageModel
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, wrapQueryErr(err)
	}
	out := make([]domain.Message, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainMessage(rec))
	}
	return out, nil
}

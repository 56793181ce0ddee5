package postgres

import (
	"context"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

var _ interfaces.ISessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	m := toSessionModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Session{}, translate(err)
	}
	return s, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (entities.Session, error) {
	var m sessionModel
	ok, err := findOne(r.db.WithContext(ctx), &m, "token = ?", token)
	if err != nil || !ok {
		return entities.Session{}, err
	}
	return m.entity(), nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&sessionModel{}).Error
}

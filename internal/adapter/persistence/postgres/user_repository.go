package postgres

import (
	"context"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateWithProfile(ctx context.Context, u entities.User, p entities.Profile) (entities.User, error) {
	p.UserID = u.ID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		um := toUserModel(u)
		if err := tx.Create(&um).Error; err != nil {
			return err
		}
		pm := toProfileModel(p)
		return tx.Create(&pm).Error
	})
	if err != nil {
		return entities.User{}, translate(err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var m userModel
	ok, err := findOne(r.db.WithContext(ctx), &m, "id = ?", id)
	if err != nil || !ok {
		return entities.User{}, err
	}
	return m.entity(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var m userModel
	ok, err := findOne(r.db.WithContext(ctx), &m, "LOWER(email) = LOWER(?)", email)
	if err != nil || !ok {
		return entities.User{}, err
	}
	return m.entity(), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role entities.Role, activeOnly bool) ([]entities.User, error) {
	q := r.db.WithContext(ctx).Where("role = ?", string(role))
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var ms []userModel
	if err := q.Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapModels(ms, userModel.entity), nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role entities.Role) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userModel{}).Where("role = ?", string(role)).Count(&n).Error
	return int(n), err
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) (entities.User, error) {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).
		Updates(map[string]any{"active": active, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return entities.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.User{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) GetProfile(ctx context.Context, id string) (entities.Profile, error) {
	var m profileModel
	ok, err := findOne(r.db.WithContext(ctx), &m, "user_id = ?", id)
	if err != nil || !ok {
		return entities.Profile{}, err
	}
	return m.entity(), nil
}

func (r *UserRepository) UpdateVendorVerification(ctx context.Context, id string, status entities.VerificationStatus) (entities.Profile, error) {
	res := r.db.WithContext(ctx).Model(&profileModel{}).
		Where("user_id = ? AND role = ?", id, string(entities.RoleVendor)).
		Update("verification_status", string(status))
	if res.Error != nil {
		return entities.Profile{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Profile{}, nil
	}
	return r.GetProfile(ctx, id)
}

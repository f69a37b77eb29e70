package repository

import (
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review model.Review) (model.Review, error)
	GetByEventAndUser(eventID, userID uint) (model.Review, error)
	ListByEvent(eventID uint, pagination dto.Pagination) ([]model.Review, int64, error)
	Save(review model.Review) (model.Review, error)
	AverageRating(eventID uint) (*float64, error)
}

type review struct {
	db *gorm.DB
}

func newReviewRepository(db *gorm.DB) ReviewRepository {
	return &review{
		db: db,
	}
}

func (r *review) Create(review model.Review) (model.Review, error) {
	result := r.db.Create(&review)
	if result.Error != nil {
		return model.Review{}, wrapDBError(result.Error)
	}

	return review, nil
}

func (r *review) GetByEventAndUser(eventID, userID uint) (model.Review, error) {
	var review model.Review
	result := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&review)
	if result.Error != nil {
		return model.Review{}, wrapDBError(result.Error)
	}

	return review, nil
}

func (r *review) ListByEvent(eventID uint, pagination dto.Pagination) ([]model.Review, int64, error) {
	query := r.db.Model(&model.Review{}).Where("event_id = ?", eventID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err)
	}

	var reviews []model.Review
	result := query.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Preload("User").
		Find(&reviews)
	if result.Error != nil {
		return nil, 0, wrapDBError(result.Error)
	}

	return reviews, total, nil
}

func (r *review) Save(review model.Review) (model.Review, error) {
	result := r.db.Save(&review)
	if result.Error != nil {
		return model.Review{}, wrapDBError(result.Error)
	}

	return review, nil
}

// AverageRating returns the mean rating rounded to one decimal, or nil when
// the event has no reviews yet.
func (r *review) AverageRating(eventID uint) (*float64, error) {
	var avg *float64
	result := r.db.Model(&model.Review{}).
		Where("event_id = ?", eventID).
		Select("ROUND(AVG(rating * 1.0), 1)").
		Scan(&avg)
	if result.Error != nil {
		return nil, wrapDBError(result.Error)
	}

	return avg, nil
}

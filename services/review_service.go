package services

import (
	"errors"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	ClassID uuid.UUID
	Content string
	Rating  int
}

type UpdateReviewInput struct {
	Content *string
	Rating  *int
}

// CreateReview inserts the user's review and recomputes the class's cached
// average rating in the same transaction. The author display name is
// snapshotted from the user record at write time.
func CreateReview(input CreateReviewInput, userID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("class_id = ? AND user_id = ?", input.ClassID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyReviewed
		}

		var class models.Class
		if err := tx.First(&class, "id = ?", input.ClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		review = models.Review{
			ClassID: input.ClassID,
			UserID:  userID,
			Content: input.Content,
			Rating:  input.Rating,
			Author:  user.FullName,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		return updateClassRating(tx, input.ClassID)
	})
	if err != nil {
		return nil, err
	}

	if err := database.DB.Preload("User").First(&review, "id = ?", review.ID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func UpdateReview(reviewID, userID uuid.UUID, input UpdateReviewInput) (*models.Review, error) {
	var review models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if review.UserID != userID {
			return ErrForbidden
		}

		if input.Content != nil {
			review.Content = *input.Content
		}
		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if err := tx.Save(&review).Error; err != nil {
			return err
		}

		return updateClassRating(tx, review.ClassID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func DeleteReview(reviewID, userID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if review.UserID != userID {
			return ErrForbidden
		}

		if err := tx.Delete(&review).Error; err != nil {
			return err
		}

		return updateClassRating(tx, review.ClassID)
	})
}

func GetClassReviews(classID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := database.DB.
		Preload("User").
		Where("class_id = ?", classID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

// UpdateClassRating recomputes one class's cached average outside of a review
// mutation. The rating reconciliation sweep uses it to repair drift.
func UpdateClassRating(classID uuid.UUID) error {
	return updateClassRating(database.DB, classID)
}

// updateClassRating writes the unweighted mean of the class's review ratings
// onto the class row. With zero reviews the cached value is left untouched,
// so a class that never had a review keeps its initial 0.
func updateClassRating(tx *gorm.DB, classID uuid.UUID) error {
	var count int64
	if err := tx.Model(&models.Review{}).Where("class_id = ?", classID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	var result struct {
		Avg float64
	}
	if err := tx.Model(&models.Review{}).
		Where("class_id = ?", classID).
		Select("avg(rating) as avg").
		Scan(&result).Error; err != nil {
		return err
	}

	return tx.Model(&models.Class{}).Where("id = ?", classID).Update("rating", result.Avg).Error
}

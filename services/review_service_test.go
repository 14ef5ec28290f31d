package services_test

import (
	"testing"
	"time"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/anyango5/cooking_class/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classRating(t *testing.T, classID uuid.UUID) float64 {
	t.Helper()
	var class models.Class
	require.NoError(t, database.DB.First(&class, "id = ?", classID).Error)
	return class.Rating
}

func TestCreateReview_FirstReviewSetsRating(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	class := createTestClass(t, instructor, 8)

	review, err := services.CreateReview(services.CreateReviewInput{
		ClassID: class.ID,
		Content: "The best pasta I have ever rolled.",
		Rating:  5,
	}, student.ID)
	require.NoError(t, err)

	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Sam Otieno", review.Author)
	assert.Equal(t, "Sam Otieno", review.User.FullName)
	assert.InDelta(t, 5.0, classRating(t, class.ID), 1e-9)

	_, err = services.CreateReview(services.CreateReviewInput{
		ClassID: class.ID,
		Content: "Trying to review twice.",
		Rating:  1,
	}, student.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyReviewed)
}

func TestClassRating_IsMeanOfReviews(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	class := createTestClass(t, instructor, 8)

	ratings := []int{4, 5, 3}
	reviewers := []models.User{
		createTestUser(t, "Alice Wanjiru", "alice@example.com"),
		createTestUser(t, "Ben Carter", "ben@example.com"),
		createTestUser(t, "Cara Dune", "cara@example.com"),
	}

	var lastReview *models.Review
	for i, rating := range ratings {
		review, err := services.CreateReview(services.CreateReviewInput{
			ClassID: class.ID,
			Content: "Lovely evening.",
			Rating:  rating,
		}, reviewers[i].ID)
		require.NoError(t, err)
		lastReview = review
	}

	assert.InDelta(t, 4.0, classRating(t, class.ID), 1e-9)

	// Dropping the 3-star review moves the mean to 4.5.
	require.NoError(t, services.DeleteReview(lastReview.ID, reviewers[2].ID))
	assert.InDelta(t, 4.5, classRating(t, class.ID), 1e-9)
}

func TestCreateReview_AuthorIsSnapshot(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	class := createTestClass(t, instructor, 8)

	review, err := services.CreateReview(services.CreateReviewInput{
		ClassID: class.ID,
		Content: "Great knife-skills segment.",
		Rating:  4,
	}, student.ID)
	require.NoError(t, err)

	require.NoError(t, database.DB.Model(&models.User{}).
		Where("id = ?", student.ID).
		Update("full_name", "Samuel O.").Error)

	var stored models.Review
	require.NoError(t, database.DB.First(&stored, "id = ?", review.ID).Error)
	assert.Equal(t, "Sam Otieno", stored.Author)
}

func TestUpdateReview(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	stranger := createTestUser(t, "Eve Mallory", "eve@example.com")
	class := createTestClass(t, instructor, 8)

	review, err := services.CreateReview(services.CreateReviewInput{
		ClassID: class.ID,
		Content: "Good, not great.",
		Rating:  3,
	}, student.ID)
	require.NoError(t, err)

	newRating := 5
	_, err = services.UpdateReview(review.ID, stranger.ID, services.UpdateReviewInput{Rating: &newRating})
	assert.ErrorIs(t, err, services.ErrForbidden)

	updated, err := services.UpdateReview(review.ID, student.ID, services.UpdateReviewInput{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "Good, not great.", updated.Content)

	assert.InDelta(t, 5.0, classRating(t, class.ID), 1e-9)
}

func TestDeleteReview_Forbidden(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	student := createTestUser(t, "Sam Otieno", "sam@example.com")
	stranger := createTestUser(t, "Eve Mallory", "eve@example.com")
	class := createTestClass(t, instructor, 8)

	review, err := services.CreateReview(services.CreateReviewInput{
		ClassID: class.ID,
		Content: "Wonderful.",
		Rating:  5,
	}, student.ID)
	require.NoError(t, err)

	err = services.DeleteReview(review.ID, stranger.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	var count int64
	require.NoError(t, database.DB.Model(&models.Review{}).Where("id = ?", review.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateClassRating_NoReviewsLeavesRatingUntouched(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	class := createTestClass(t, instructor, 8)

	require.NoError(t, services.UpdateClassRating(class.ID))
	assert.InDelta(t, 0.0, classRating(t, class.ID), 1e-9)
}

func TestGetClassReviews_NewestFirst(t *testing.T) {
	setupTestDB(t)

	instructor := createTestUser(t, "Nina Rossi", "nina@example.com")
	alice := createTestUser(t, "Alice Wanjiru", "alice@example.com")
	ben := createTestUser(t, "Ben Carter", "ben@example.com")
	class := createTestClass(t, instructor, 8)

	first, err := services.CreateReview(services.CreateReviewInput{
		ClassID: class.ID,
		Content: "First in.",
		Rating:  4,
	}, alice.ID)
	require.NoError(t, err)

	require.NoError(t, database.DB.Model(&models.Review{}).
		Where("id = ?", first.ID).
		Update("created_at", first.CreatedAt.Add(-time.Hour)).Error)

	second, err := services.CreateReview(services.CreateReviewInput{
		ClassID: class.ID,
		Content: "Second in.",
		Rating:  5,
	}, ben.ID)
	require.NoError(t, err)

	reviews, err := services.GetClassReviews(class.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}

package jobs

import (
	"log"

	"github.com/anyango5/cooking_class/database"
	"github.com/anyango5/cooking_class/models"
	"github.com/anyango5/cooking_class/services"
	"github.com/google/uuid"
)

// ReconcileClassRatings recomputes every class's cached average rating.
// Review mutations already recompute synchronously; this sweep repairs any
// drift left behind by manual database edits or interrupted requests.
func ReconcileClassRatings() {
	log.Println("Running job: ReconcileClassRatings...")

	var classIDs []uuid.UUID
	if err := database.DB.Model(&models.Class{}).Pluck("id", &classIDs).Error; err != nil {
		log.Printf("Error listing classes for rating reconciliation: %v", err)
		return
	}

	for _, classID := range classIDs {
		if err := services.UpdateClassRating(classID); err != nil {
			log.Printf("Error reconciling rating for class %s: %v", classID, err)
		}
	}
}

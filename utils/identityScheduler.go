package utils

import (
	"log"
	"time"
	"vesta/database"
	"vesta/models"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
)

// InitializeIdentityScheduler sets up the retry job for queued identity removals
func InitializeIdentityScheduler() {
	log.Println("[IDENTITY-SCHEDULER] Initializing identity removal scheduler...")

	c := cron.New()

	// Run daily at 3 AM to retry failed auth identity deletions
	c.AddFunc("0 3 * * *", func() {
		log.Println("[IDENTITY-SCHEDULER] Running daily identity removal retry...")
		RetryPendingIdentityRemovals()
	})

	c.Start()
	log.Println("[IDENTITY-SCHEDULER] Identity removal scheduler started - runs daily at 3 AM")
}

// RetryPendingIdentityRemovals retries every queued removal that has not
// yet succeeded. Each attempt updates the attempt count and last error.
func RetryPendingIdentityRemovals() {
	db := database.Database.Db

	var pending []models.IdentityRemoval
	if err := db.Where("done = false").Find(&pending).Error; err != nil {
		log.Printf("[IDENTITY-SCHEDULER] Error fetching pending removals: %v", err)
		return
	}

	log.Printf("[IDENTITY-SCHEDULER] Found %d pending identity removals", len(pending))

	for _, removal := range pending {
		body, err := RemoveAuthIdentity(removal.AuthID)

		now := time.Now()
		removal.Attempts++
		removal.LastTriedAt = &now
		removal.Response = datatypes.JSON(body)
		if err != nil {
			removal.LastError = err.Error()
		} else {
			removal.LastError = ""
			removal.Done = true
		}

		if err := db.Save(&removal).Error; err != nil {
			log.Printf("[IDENTITY-SCHEDULER] Error updating removal %d: %v", removal.ID, err)
		}
	}
}

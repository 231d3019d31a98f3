package utils

import (
	"fmt"
	"log"
	"time"
	"vesta/config"
	"vesta/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RemoveAuthIdentity deletes a user's identity from the external auth store.
// Returns the raw response body alongside any error so callers can persist it.
func RemoveAuthIdentity(authID string) ([]byte, error) {
	if authID == "" {
		return nil, nil
	}

	client := resty.New()
	client.SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.AuthAdminKey).
		Delete(config.AppConfig.AuthServiceURL + "/admin/identities/" + authID)
	if err != nil {
		log.Printf("Identity removal request failed for %s: %v", authID, err)
		return nil, err
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 204 && resp.StatusCode() != 404 {
		log.Printf("Identity removal rejected for %s: %d %s", authID, resp.StatusCode(), resp.String())
		return resp.Body(), fmt.Errorf("auth store returned %d", resp.StatusCode())
	}

	return resp.Body(), nil
}

// RemoveAuthIdentityBestEffort removes the identity and, if that fails,
// queues it for the reconciliation job. Never returns an error: identity
// removal must not undo a completed profile deletion.
func RemoveAuthIdentityBestEffort(db *gorm.DB, userID uint, authID string) {
	if authID == "" {
		return
	}

	body, err := RemoveAuthIdentity(authID)
	if err == nil {
		return
	}

	now := time.Now()
	removal := models.IdentityRemoval{
		UserID:      userID,
		AuthID:      authID,
		Attempts:    1,
		LastError:   err.Error(),
		LastTriedAt: &now,
		Response:    datatypes.JSON(body),
	}
	if dbErr := db.Create(&removal).Error; dbErr != nil {
		log.Printf("Failed to queue identity removal for user %d: %v", userID, dbErr)
	}
}

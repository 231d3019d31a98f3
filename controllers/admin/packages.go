package adminController

import (
	"log"
	"vesta/database"
	"vesta/middleware"
	"vesta/models"

	"github.com/gofiber/fiber/v2"
)

// PackageList returns investment packages newest-first
func PackageList(c *fiber.Ctx) error {
	db := database.Database.Db

	var packages []models.InvestmentPackage
	if err := db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&packages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch packages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package list.", fiber.Map{
		"packages": packages,
	})
}

// CreatePackage creates a new investment package. Validation has already
// rejected missing or non-numeric fields before this point; max purchase
// count is fixed at 3 on creation.
func CreatePackage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreatePackage").(*struct {
		Name         string  `json:"name"`
		Amount       float64 `json:"amount"`
		ReturnAmount float64 `json:"returnAmount"`
		DurationDays int     `json:"durationDays"`
		PackageType  string  `json:"packageType"`
		DailyIncome  float64 `json:"dailyIncome"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newPackage := models.InvestmentPackage{
		Name:         reqData.Name,
		Amount:       reqData.Amount,
		ReturnAmount: reqData.ReturnAmount,
		DurationDays: reqData.DurationDays,
		MaxPurchases: 3,
		PackageType:  reqData.PackageType,
		DailyIncome:  reqData.DailyIncome,
		IsActive:     true,
	}

	if err := database.Database.Db.Create(&newPackage).Error; err != nil {
		log.Printf("Error creating package %q: %v", reqData.Name, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Package created.", newPackage)
}

// TogglePackageActive flips the active flag on a package
func TogglePackageActive(c *fiber.Ctx) error {
	packageID, err := c.ParamsInt("id")
	if err != nil || packageID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid package ID!", nil)
	}

	db := database.Database.Db

	var pkg models.InvestmentPackage
	if err := db.Where("id = ? AND is_deleted = false", packageID).First(&pkg).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
	}

	pkg.IsActive = !pkg.IsActive
	if err := db.Save(&pkg).Error; err != nil {
		log.Printf("Error toggling package %d: %v", pkg.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package updated.", fiber.Map{
		"packageId": pkg.ID,
		"isActive":  pkg.IsActive,
	})
}

// DeletePackage removes a package
func DeletePackage(c *fiber.Ctx) error {
	packageID, err := c.ParamsInt("id")
	if err != nil || packageID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid package ID!", nil)
	}

	db := database.Database.Db

	var pkg models.InvestmentPackage
	if err := db.Where("id = ? AND is_deleted = false", packageID).First(&pkg).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Package not found!", nil)
	}

	pkg.IsDeleted = true
	if err := db.Save(&pkg).Error; err != nil {
		log.Printf("Error deleting package %d: %v", pkg.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete package!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Package deleted.", fiber.Map{
		"packageId": pkg.ID,
	})
}

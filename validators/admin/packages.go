package adminValidator

import (
	"strings"
	"vesta/middleware"
	"vesta/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePackage validates the package creation form. Every required field
// is checked before any write happens: a missing name or a zero/negative
// number rejects the whole request.
func CreatePackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string  `json:"name"`
			Amount       float64 `json:"amount"`
			ReturnAmount float64 `json:"returnAmount"`
			DurationDays int     `json:"durationDays"`
			PackageType  string  `json:"packageType"`
			DailyIncome  float64 `json:"dailyIncome"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.ReturnAmount <= 0 {
			errors["returnAmount"] = "Return amount must be greater than 0!"
		}
		if reqData.DurationDays <= 0 {
			errors["durationDays"] = "Duration must be greater than 0!"
		}
		if reqData.PackageType != models.PackageTypeDaily && reqData.PackageType != models.PackageTypeStable {
			errors["packageType"] = "Package type must be daily or stable!"
		}
		if reqData.DailyIncome < 0 {
			errors["dailyIncome"] = "Daily income cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreatePackage", reqData)
		return c.Next()
	}
}

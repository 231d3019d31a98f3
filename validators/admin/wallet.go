package adminValidator

import (
	"vesta/middleware"

	"github.com/gofiber/fiber/v2"
)

// AdjustWallet validates a wallet adjustment request: a target user, a
// positive amount, and a direction of add or subtract.
func AdjustWallet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID    uint    `json:"userId"`
			Amount    float64 `json:"amount"`
			Direction string  `json:"direction"`
			Reason    string  `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.Direction != "add" && reqData.Direction != "subtract" {
			errors["direction"] = "Direction must be add or subtract!"
		}
		if reqData.Direction == "subtract" && reqData.Reason == "" {
			errors["reason"] = "Reason is required for deduction!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdjustWallet", reqData)
		return c.Next()
	}
}

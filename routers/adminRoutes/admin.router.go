package adminRoutes

import (
	adminController "vesta/controllers/admin"
	"vesta/middleware"
	adminValidator "vesta/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/dashboard/overview", adminController.Overview)

	adminGroup.Get("/users", adminValidator.List(), adminController.UserList)
	adminGroup.Patch("/users/:id/active", adminValidator.SetActive(), adminController.SetUserActive)
	adminGroup.Delete("/users/:id", adminController.DeleteUser)
	adminGroup.Get("/users/:id/investments", adminController.UserInvestments)
	adminGroup.Get("/users/:id/wallet", adminController.WalletLedger)

	adminGroup.Get("/packages", adminController.PackageList)
	adminGroup.Post("/packages", adminValidator.CreatePackage(), adminController.CreatePackage)
	adminGroup.Patch("/packages/:id/active", adminController.TogglePackageActive)
	adminGroup.Delete("/packages/:id", adminController.DeletePackage)

	adminGroup.Get("/withdrawals", adminController.WithdrawalList)
	adminGroup.Post("/withdrawals/:id/approve", adminController.ApproveWithdrawal)
	adminGroup.Post("/withdrawals/:id/reject", adminController.RejectWithdrawal)

	adminGroup.Post("/wallet/adjust", adminValidator.AdjustWallet(), adminController.AdjustWallet)
}

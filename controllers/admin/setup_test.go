package adminController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vesta/config"
	"vesta/database"
	"vesta/middleware"
	"vesta/models"
	adminRoutes "vesta/routers/adminRoutes"
	"vesta/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// newTestApp builds a fiber app with the admin routes wired against an
// in-memory database and returns it with a logged-in admin token.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:           "0",
		JWTKey:         "test-secret",
		SaltRound:      4,
		AuthServiceURL: "http://127.0.0.1:1", // unreachable on purpose
		AuthAdminKey:   "test-key",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // every query sees the same :memory: database

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	admin := seedAdmin(t, db)

	token, err := middleware.GenerateJWT(admin.ID, "Test Admin", admin.Role, admin.Email)
	require.NoError(t, err)

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)

	return app, db, token
}

func seedAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-pass-123"), 4)
	require.NoError(t, err)

	admin := models.User{
		FirstName:    "Test",
		LastName:     "Admin",
		Email:        "admin@test.local",
		Password:     string(hashed),
		Role:         "ADMIN",
		ReferralCode: utils.GenerateReferralCode(),
		IsActive:     true,
	}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func seedUser(t *testing.T, db *gorm.DB, email string, balance float64) *models.User {
	t.Helper()

	user := models.User{
		FirstName:     "Jane",
		LastName:      "Investor",
		Email:         email,
		Mobile:        "5550001111",
		Password:      "irrelevant",
		Role:          "USER",
		ReferralCode:  utils.GenerateReferralCode(),
		WalletBalance: balance,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedPackage(t *testing.T, db *gorm.DB, name string, active bool) *models.InvestmentPackage {
	t.Helper()

	pkg := models.InvestmentPackage{
		Name:         name,
		Amount:       50000,
		ReturnAmount: 65000,
		DurationDays: 30,
		MaxPurchases: 3,
		PackageType:  models.PackageTypeDaily,
		DailyIncome:  500,
		IsActive:     active,
	}
	require.NoError(t, db.Create(&pkg).Error)
	return &pkg
}

func seedWithdrawal(t *testing.T, db *gorm.DB, userID uint, amount float64, status models.WithdrawalStatus, requestedAt time.Time) *models.WithdrawalRequest {
	t.Helper()

	fee := amount * 0.05
	w := models.WithdrawalRequest{
		UserID:      userID,
		Amount:      amount,
		Fee:         fee,
		NetAmount:   amount - fee,
		Status:      status,
		RequestedAt: requestedAt,
	}
	require.NoError(t, db.Create(&w).Error)
	return &w
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}

	return resp, env
}

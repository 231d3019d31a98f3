package adminController_test

import (
	"fmt"
	"net/http"
	"testing"

	"vesta/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackage(t *testing.T) {
	app, db, token := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/admin/packages", token, map[string]interface{}{
		"name":         "Premium",
		"amount":       50000,
		"returnAmount": 65000,
		"durationDays": 30,
		"packageType":  "daily",
		"dailyIncome":  500,
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)

	var pkg models.InvestmentPackage
	require.NoError(t, db.Where("name = ?", "Premium").First(&pkg).Error)
	assert.Equal(t, float64(50000), pkg.Amount)
	assert.Equal(t, float64(65000), pkg.ReturnAmount)
	assert.Equal(t, 30, pkg.DurationDays)
	assert.Equal(t, 3, pkg.MaxPurchases, "max purchases is fixed at 3 on creation")
	assert.Equal(t, models.PackageTypeDaily, pkg.PackageType)
	assert.True(t, pkg.IsActive)
}

func TestCreatePackageRejectsInvalidInput(t *testing.T) {
	app, db, token := newTestApp(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"amount": 1000, "returnAmount": 1200, "durationDays": 10, "packageType": "stable"}},
		{"blank name", map[string]interface{}{"name": "   ", "amount": 1000, "returnAmount": 1200, "durationDays": 10, "packageType": "stable"}},
		{"zero amount", map[string]interface{}{"name": "Basic", "amount": 0, "returnAmount": 1200, "durationDays": 10, "packageType": "stable"}},
		{"zero return", map[string]interface{}{"name": "Basic", "amount": 1000, "returnAmount": 0, "durationDays": 10, "packageType": "stable"}},
		{"zero duration", map[string]interface{}{"name": "Basic", "amount": 1000, "returnAmount": 1200, "durationDays": 0, "packageType": "stable"}},
		{"unknown type", map[string]interface{}{"name": "Basic", "amount": 1000, "returnAmount": 1200, "durationDays": 10, "packageType": "weekly"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, env := doRequest(t, app, http.MethodPost, "/admin/packages", token, tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.False(t, env.Status)
		})
	}

	// Nothing was written
	var count int64
	db.Model(&models.InvestmentPackage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreatePackageRejectsNonNumericAmount(t *testing.T) {
	app, db, token := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/admin/packages", token, map[string]interface{}{
		"name":         "Basic",
		"amount":       "fifty thousand",
		"returnAmount": 1200,
		"durationDays": 10,
		"packageType":  "stable",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.InvestmentPackage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTogglePackageActive(t *testing.T) {
	app, db, token := newTestApp(t)
	pkg := seedPackage(t, db, "Starter", true)

	resp, env := doRequest(t, app, http.MethodPatch, fmt.Sprintf("/admin/packages/%d/active", pkg.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, env.Data["isActive"])

	var stored models.InvestmentPackage
	require.NoError(t, db.First(&stored, pkg.ID).Error)
	assert.False(t, stored.IsActive)

	// Toggling again restores the flag
	resp, env = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/admin/packages/%d/active", pkg.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, env.Data["isActive"])
}

func TestDeletePackage(t *testing.T) {
	app, db, token := newTestApp(t)
	pkg := seedPackage(t, db, "Doomed", true)

	resp, _ := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/admin/packages/%d", pkg.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Gone from listings
	listResp, env := doRequest(t, app, http.MethodGet, "/admin/packages", token, nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	packages := env.Data["packages"].([]interface{})
	assert.Empty(t, packages)

	// A second delete finds nothing
	resp, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/admin/packages/%d", pkg.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPackageOperationsRequireAdmin(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/admin/packages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

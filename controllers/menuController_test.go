package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	owner, vendor := env.addVendor(t, "karim", "Central Canteen", true)

	recorder := env.request(t, http.MethodPost, "/menu", map[string]any{
		"name":     "Chicken Biriyani",
		"price":    100,
		"category": "Rice",
	}, tokenFor(t, owner))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		MenuItem models.MenuItem `json:"menuItem"`
	}
	require.NoError(t, jsonUnmarshal(recorder.Body.Bytes(), &created))

	item := created.MenuItem
	assert.Equal(t, vendor.ID, item.Vendor)
	assert.True(t, item.IsAvailable, "new items default to available")
	assert.Equal(t, 15, item.PreparationTime)
	assert.NotEmpty(t, item.Image, "a placeholder image is assigned")
}

func TestCreateMenuItemValidation(t *testing.T) {
	env := newTestEnv(t)
	owner, _ := env.addVendor(t, "karim", "Central Canteen", true)
	token := tokenFor(t, owner)

	for name, payload := range map[string]map[string]any{
		"missing price":  {"name": "Singara", "category": "Snacks"},
		"negative price": {"name": "Singara", "price": -5, "category": "Snacks"},
		"missing name":   {"price": 10, "category": "Snacks"},
	} {
		recorder := env.request(t, http.MethodPost, "/menu", payload, token)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, name)
	}

	// zero is a legal price (free items exist)
	recorder := env.request(t, http.MethodPost, "/menu", map[string]any{
		"name": "Free Water", "price": 0, "category": "Drinks",
	}, token)
	assert.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
}

func TestVendorMenuShowsOnlyAvailableItems(t *testing.T) {
	env := newTestEnv(t)
	_, vendor := env.addVendor(t, "karim", "Central Canteen", true)
	env.addMenuItem(t, vendor.ID, "Singara", 10, true)
	env.addMenuItem(t, vendor.ID, "Seasonal Pitha", 25, false)

	recorder := env.request(t, http.MethodGet, "/menu/vendor/"+vendor.ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var items []models.MenuItem
	require.NoError(t, jsonUnmarshal(recorder.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Singara", items[0].Name)
}

func TestMyMenuIncludesUnavailableItems(t *testing.T) {
	env := newTestEnv(t)
	owner, vendor := env.addVendor(t, "karim", "Central Canteen", true)
	env.addMenuItem(t, vendor.ID, "Singara", 10, true)
	env.addMenuItem(t, vendor.ID, "Seasonal Pitha", 25, false)

	recorder := env.request(t, http.MethodGet, "/menu/my-menu", nil, tokenFor(t, owner))
	require.Equal(t, http.StatusOK, recorder.Code)

	var items []models.MenuItem
	require.NoError(t, jsonUnmarshal(recorder.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestUpdateMenuItemOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	_, vendor := env.addVendor(t, "karim", "Central Canteen", true)
	item := env.addMenuItem(t, vendor.ID, "Singara", 10, true)

	otherOwner, _ := env.addVendor(t, "salam", "Night Stall", true)

	recorder := env.request(t, http.MethodPut, "/menu/"+item.ID.Hex(), map[string]any{
		"price": 12,
	}, tokenFor(t, otherOwner))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Not authorized to update this menu item", decodeBody(t, recorder)["message"])

	stored, err := env.menu.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Price)
}

func TestUpdateMenuItemPartial(t *testing.T) {
	env := newTestEnv(t)
	owner, vendor := env.addVendor(t, "karim", "Central Canteen", true)
	item := env.addMenuItem(t, vendor.ID, "Singara", 10, true)

	recorder := env.request(t, http.MethodPut, "/menu/"+item.ID.Hex(), map[string]any{
		"price":   12,
		"isSpicy": true,
	}, tokenFor(t, owner))
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	stored, err := env.menu.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, stored.Price)
	assert.True(t, stored.IsSpicy)
	assert.Equal(t, "Singara", stored.Name)
	assert.Equal(t, "Snacks", stored.Category)
}

func TestDeleteMenuItem(t *testing.T) {
	env := newTestEnv(t)
	owner, vendor := env.addVendor(t, "karim", "Central Canteen", true)
	item := env.addMenuItem(t, vendor.ID, "Singara", 10, true)

	recorder := env.request(t, http.MethodDelete, "/menu/"+item.ID.Hex(), nil, tokenFor(t, owner))
	require.Equal(t, http.StatusOK, recorder.Code)

	_, err := env.menu.GetByID(context.Background(), item.ID)
	assert.Error(t, err)
}

func TestToggleItemAvailability(t *testing.T) {
	env := newTestEnv(t)
	owner, vendor := env.addVendor(t, "karim", "Central Canteen", true)
	item := env.addMenuItem(t, vendor.ID, "Singara", 10, true)
	token := tokenFor(t, owner)

	recorder := env.request(t, http.MethodPatch, "/menu/toggle-availability/"+item.ID.Hex(), nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Menu item is now unavailable", decodeBody(t, recorder)["message"])

	recorder = env.request(t, http.MethodPatch, "/menu/toggle-availability/"+item.ID.Hex(), nil, token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Menu item is now available", decodeBody(t, recorder)["message"])
}

func TestMenuRoutesRejectStudents(t *testing.T) {
	env := newTestEnv(t)
	student := env.addStudent(t, "Rahim", "rahim@cuet.ac.bd")

	recorder := env.request(t, http.MethodPost, "/menu", map[string]any{
		"name": "Singara", "price": 10, "category": "Snacks",
	}, tokenFor(t, student))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

package services

import (
	"context"
	"testing"
	"time"

	"shawon-burger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var catalogNow = time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

func newCatalogFixture() (*CatalogService, *memMenu, *memCombos) {
	menu := newMemMenu()
	combos := newMemCombos()
	svc := NewCatalogService(menu, combos)
	svc.now = fixedClock(catalogNow)
	return svc, menu, combos
}

func sampleItem(name string, price float64) models.MenuItem {
	return models.MenuItem{
		Name: name, Description: name + " description", Price: price,
		Category: "burger", Image: "/images/x.jpg", InStock: true,
	}
}

func TestCreateMenuItem(t *testing.T) {
	svc, menu, _ := newCatalogFixture()

	item, err := svc.CreateMenuItem(context.Background(), sampleItem("Zinger", 280))
	require.NoError(t, err)
	assert.False(t, item.ID.IsZero())
	assert.Equal(t, catalogNow, item.Created_at)
	assert.Len(t, menu.items, 1)

	bad := sampleItem("Pizza", 500)
	bad.Category = "pizza"
	_, err = svc.CreateMenuItem(context.Background(), bad)
	assert.True(t, IsValidation(err))

	negative := sampleItem("Free", -1)
	_, err = svc.CreateMenuItem(context.Background(), negative)
	assert.True(t, IsValidation(err))
}

func TestMenuStockAndPrice(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	item, err := svc.CreateMenuItem(context.Background(), sampleItem("Zinger", 280))
	require.NoError(t, err)

	updated, err := svc.SetStock(context.Background(), item.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.InStock)

	updated, err = svc.SetPrice(context.Background(), item.ID, 300)
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Price)

	_, err = svc.SetPrice(context.Background(), item.ID, -5)
	assert.True(t, IsValidation(err))

	_, err = svc.UpdateMenuItem(context.Background(), item.ID, models.MenuItemUpdate{})
	assert.True(t, IsValidation(err))

	_, err = svc.SetStock(context.Background(), primitive.NewObjectID(), true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMenuRejectsUnknownCategory(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	_, err := svc.ListMenu(context.Background(), models.MenuFilter{Category: "pizza"})
	assert.True(t, IsValidation(err))

	items, err := svc.ListMenu(context.Background(), models.MenuFilter{Category: "side"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateComboComputesSavings(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	burger, err := svc.CreateMenuItem(context.Background(), sampleItem("Beef", 250))
	require.NoError(t, err)

	combo, err := svc.CreateCombo(context.Background(), models.ComboDealRequest{
		Name: "Meal", Description: "burger meal", Image: "/images/meal.jpg",
		Items:      []models.ComboItem{{MenuItem: burger.ID, Quantity: 2}},
		TotalPrice: 500, DiscountedPrice: 425,
		ValidUntil: catalogNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, combo.Savings)
	assert.Equal(t, 15, combo.SavingsPercentage)
	assert.True(t, combo.Active)
	assert.Equal(t, catalogNow, combo.ValidFrom)

	available, err := svc.ListAvailableCombos(context.Background())
	require.NoError(t, err)
	assert.Len(t, available, 1)
}

func TestCreateComboValidation(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	burger, err := svc.CreateMenuItem(context.Background(), sampleItem("Beef", 250))
	require.NoError(t, err)

	base := func() models.ComboDealRequest {
		return models.ComboDealRequest{
			Name: "Meal", Description: "burger meal", Image: "/images/meal.jpg",
			Items:      []models.ComboItem{{MenuItem: burger.ID, Quantity: 1}},
			TotalPrice: 300, DiscountedPrice: 250,
			ValidUntil: catalogNow.AddDate(0, 1, 0),
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.ComboDealRequest)
	}{
		{"discount above total", func(r *models.ComboDealRequest) { r.DiscountedPrice = 400 }},
		{"ends before start", func(r *models.ComboDealRequest) { r.ValidUntil = catalogNow.Add(-time.Hour) }},
		{"unknown item", func(r *models.ComboDealRequest) {
			r.Items = []models.ComboItem{{MenuItem: primitive.NewObjectID(), Quantity: 1}}
		}},
		{"zero quantity", func(r *models.ComboDealRequest) { r.Items[0].Quantity = 0 }},
		{"no items", func(r *models.ComboDealRequest) { r.Items = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)
			_, err := svc.CreateCombo(context.Background(), req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), err.Error())
		})
	}
}

func TestUpdateComboRevalidates(t *testing.T) {
	svc, _, combos := newCatalogFixture()
	burger, err := svc.CreateMenuItem(context.Background(), sampleItem("Beef", 250))
	require.NoError(t, err)
	combo, err := svc.CreateCombo(context.Background(), models.ComboDealRequest{
		Name: "Meal", Description: "burger meal", Image: "/images/meal.jpg",
		Items:      []models.ComboItem{{MenuItem: burger.ID, Quantity: 1}},
		TotalPrice: 300, DiscountedPrice: 250,
		ValidUntil: catalogNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	tooHigh := 350.0
	_, err = svc.UpdateCombo(context.Background(), combo.ID, models.ComboDealUpdate{DiscountedPrice: &tooHigh})
	assert.True(t, IsValidation(err))
	assert.Equal(t, 250.0, combos.combos[combo.ID].DiscountedPrice)

	inactive := false
	updated, err := svc.UpdateCombo(context.Background(), combo.ID, models.ComboDealUpdate{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	available, err := svc.ListAvailableCombos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, available)

	require.NoError(t, svc.DeleteCombo(context.Background(), combo.ID))
	assert.ErrorIs(t, svc.DeleteCombo(context.Background(), combo.ID), ErrNotFound)
}

func TestSeedSampleCatalogOnlyWhenEmpty(t *testing.T) {
	svc, menu, combos := newCatalogFixture()

	require.NoError(t, svc.SeedSampleCatalog(context.Background()))
	assert.Len(t, menu.items, len(sampleMenu))
	assert.Len(t, combos.combos, 1)

	require.NoError(t, svc.SeedSampleCatalog(context.Background()))
	assert.Len(t, menu.items, len(sampleMenu))
}

package services

import (
	"context"
	"log"

	"shawon-burger/models"
)

var sampleMenu = []models.MenuItem{
	{
		Name: "Classic Beef Burger", Description: "Beef patty, cheddar, lettuce, tomato and house sauce",
		Price: 250, Category: "burger", Image: "/images/classic-beef.jpg", InStock: true,
		NutritionalInfo: models.NutritionalInfo{Calories: 650, Protein: 32, Carbs: 45, Fat: 35},
	},
	{
		Name: "Crispy Chicken Burger", Description: "Fried chicken thigh with slaw and pickles",
		Price: 220, Category: "burger", Image: "/images/crispy-chicken.jpg", InStock: true,
		NutritionalInfo: models.NutritionalInfo{Calories: 590, Protein: 28, Carbs: 50, Fat: 28},
	},
	{
		Name: "French Fries", Description: "Skin-on fries with sea salt",
		Price: 120, Category: "side", Image: "/images/fries.jpg", InStock: true,
		NutritionalInfo: models.NutritionalInfo{Calories: 365, Protein: 4, Carbs: 48, Fat: 17},
	},
	{
		Name: "Cola", Description: "Chilled 500ml bottle",
		Price: 60, Category: "drink", Image: "/images/cola.jpg", InStock: true,
		NutritionalInfo: models.NutritionalInfo{Calories: 210, Carbs: 53},
	},
	{
		Name: "Chocolate Brownie", Description: "Warm brownie with chocolate sauce",
		Price: 150, Category: "dessert", Image: "/images/brownie.jpg", InStock: true,
		NutritionalInfo: models.NutritionalInfo{Calories: 420, Protein: 5, Carbs: 55, Fat: 20},
	},
}

// SeedSampleCatalog fills an empty menu with a few items and one combo deal.
func (s *CatalogService) SeedSampleCatalog(ctx context.Context) error {
	count, err := s.menu.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("menu already has %d items, skipping sample data", count)
		return nil
	}

	created := make([]*models.MenuItem, 0, len(sampleMenu))
	for _, item := range sampleMenu {
		saved, err := s.CreateMenuItem(ctx, item)
		if err != nil {
			return err
		}
		created = append(created, saved)
	}

	burger, fries, cola := created[0], created[2], created[3]
	total := burger.Price + fries.Price + cola.Price
	_, err = s.CreateCombo(ctx, models.ComboDealRequest{
		Name:        "Burger Meal",
		Description: "Classic beef burger with fries and a cola",
		Items: []models.ComboItem{
			{MenuItem: burger.ID, Quantity: 1},
			{MenuItem: fries.ID, Quantity: 1},
			{MenuItem: cola.ID, Quantity: 1},
		},
		Image:           "/images/burger-meal.jpg",
		TotalPrice:      total,
		DiscountedPrice: total - 50,
		ValidUntil:      s.now().AddDate(0, 3, 0),
	})
	if err != nil {
		return err
	}
	log.Printf("seeded %d menu items and 1 combo deal", len(created))
	return nil
}

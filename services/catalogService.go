package services

import (
	"context"
	"fmt"
	"time"

	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService struct {
	menu   MenuStore
	combos ComboStore
	now    func() time.Time
}

func NewCatalogService(menu MenuStore, combos ComboStore) *CatalogService {
	return &CatalogService{menu: menu, combos: combos, now: time.Now}
}

func (s *CatalogService) ListMenu(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	if filter.Category != "" {
		if err := validate.Var(filter.Category, "oneof=burger side drink dessert"); err != nil {
			return nil, validationErrorf("unknown category %q", filter.Category)
		}
	}
	return s.menu.List(ctx, filter)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	if err := validateStruct(item); err != nil {
		return nil, err
	}
	now := s.now()
	item.ID = primitive.NewObjectID()
	item.Created_at = now
	item.Updated_at = now
	if err := s.menu.Insert(ctx, &item); err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return &item, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, upd models.MenuItemUpdate) (*models.MenuItem, error) {
	if upd.IsEmpty() {
		return nil, validationErrorf("no fields to update")
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}
	item, err := s.menu.Update(ctx, id, upd)
	if err != nil {
		return nil, notFound(err, "Menu item")
	}
	return item, nil
}

func (s *CatalogService) SetStock(ctx context.Context, id primitive.ObjectID, inStock bool) (*models.MenuItem, error) {
	return s.UpdateMenuItem(ctx, id, models.MenuItemUpdate{InStock: &inStock})
}

func (s *CatalogService) SetPrice(ctx context.Context, id primitive.ObjectID, price float64) (*models.MenuItem, error) {
	return s.UpdateMenuItem(ctx, id, models.MenuItemUpdate{Price: &price})
}

// DeleteMenuItem leaves combos that reference the item untouched.
func (s *CatalogService) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.menu.Delete(ctx, id), "Menu item")
}

func (s *CatalogService) ListCombos(ctx context.Context) ([]models.ComboDealView, error) {
	combos, err := s.combos.List(ctx)
	if err != nil {
		return nil, err
	}
	return comboViews(combos), nil
}

// ListAvailableCombos returns active deals whose validity window covers now.
func (s *CatalogService) ListAvailableCombos(ctx context.Context) ([]models.ComboDealView, error) {
	combos, err := s.combos.ListAvailable(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return comboViews(combos), nil
}

func (s *CatalogService) CreateCombo(ctx context.Context, req models.ComboDealRequest) (*models.ComboDealView, error) {
	now := s.now()
	combo := models.ComboDeal{
		ID:              primitive.NewObjectID(),
		Name:            req.Name,
		Description:     req.Description,
		Items:           req.Items,
		Image:           req.Image,
		TotalPrice:      req.TotalPrice,
		DiscountedPrice: req.DiscountedPrice,
		ValidFrom:       now,
		ValidUntil:      req.ValidUntil,
		Active:          true,
		Created_at:      now,
		Updated_at:      now,
	}
	if req.ValidFrom != nil {
		combo.ValidFrom = *req.ValidFrom
	}
	if req.Active != nil {
		combo.Active = *req.Active
	}
	if err := s.checkCombo(ctx, &combo); err != nil {
		return nil, err
	}
	if err := s.combos.Insert(ctx, &combo); err != nil {
		return nil, fmt.Errorf("insert combo: %w", err)
	}
	view := combo.View()
	return &view, nil
}

func (s *CatalogService) UpdateCombo(ctx context.Context, id primitive.ObjectID, upd models.ComboDealUpdate) (*models.ComboDealView, error) {
	combo, err := s.combos.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Combo deal")
	}
	upd.Apply(combo)
	combo.Updated_at = s.now()
	if err := s.checkCombo(ctx, combo); err != nil {
		return nil, err
	}
	if err := s.combos.Replace(ctx, combo); err != nil {
		return nil, notFound(err, "Combo deal")
	}
	view := combo.View()
	return &view, nil
}

func (s *CatalogService) DeleteCombo(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.combos.Delete(ctx, id), "Combo deal")
}

// checkCombo validates the deal and requires every referenced menu item to exist.
func (s *CatalogService) checkCombo(ctx context.Context, combo *models.ComboDeal) error {
	if err := validateStruct(combo); err != nil {
		return err
	}
	ids := make([]primitive.ObjectID, 0, len(combo.Items))
	seen := make(map[primitive.ObjectID]bool, len(combo.Items))
	for _, item := range combo.Items {
		if !seen[item.MenuItem] {
			seen[item.MenuItem] = true
			ids = append(ids, item.MenuItem)
		}
	}
	found, err := s.menu.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return validationErrorf("combo references unknown menu items")
	}
	return nil
}

func comboViews(combos []models.ComboDeal) []models.ComboDealView {
	views := make([]models.ComboDealView, 0, len(combos))
	for _, c := range combos {
		views = append(views, c.View())
	}
	return views
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"shawon-burger/helpers"
	"shawon-burger/mailer"
	"shawon-burger/models"
	"shawon-burger/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderEvents is told about order changes so admins can be notified.
type OrderEvents interface {
	OrderCreated(ctx context.Context, order *models.Order)
	OrderStatusChanged(ctx context.Context, order *models.Order)
	PaymentStatusChanged(ctx context.Context, order *models.Order)
}

type OrderService struct {
	orders   OrderStore
	menu     MenuStore
	combos   ComboStore
	users    UserStore
	gateway  payment.Gateway
	mail     mailer.Mailer
	events   OrderEvents
	currency string
	now      func() time.Time
}

type OrderServiceConfig struct {
	Orders   OrderStore
	Menu     MenuStore
	Combos   ComboStore
	Users    UserStore
	Gateway  payment.Gateway
	Mail     mailer.Mailer
	Events   OrderEvents
	Currency string
}

func NewOrderService(cfg OrderServiceConfig) *OrderService {
	return &OrderService{
		orders:   cfg.Orders,
		menu:     cfg.Menu,
		combos:   cfg.Combos,
		users:    cfg.Users,
		gateway:  cfg.Gateway,
		mail:     cfg.Mail,
		events:   cfg.Events,
		currency: cfg.Currency,
		now:      time.Now,
	}
}

// Create prices the cart from the catalog, persists the order and, for card
// payments, opens a payment intent. Either both exist afterwards or neither does.
func (s *OrderService) Create(ctx context.Context, userID primitive.ObjectID, req models.CreateOrderRequest) (*models.CreatedOrder, error) {
	req.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	items, err := s.priceCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &models.Order{
		ID:              primitive.NewObjectID(),
		OrderNumber:     helpers.NewOrderNumber(),
		User:            userID,
		Items:           items,
		TotalAmount:     Subtotal(items),
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentPending,
		OrderStatus:     models.StatusPending,
		StatusHistory:   []models.StatusChange{{Status: models.StatusPending, Changed_at: now}},
		Created_at:      now,
		Updated_at:      now,
	}
	order.DeliveryFee = helpers.DeliveryFee(order.TotalAmount, order.DeliveryAddress)

	created := &models.CreatedOrder{Order: order}
	if order.PaymentMethod == models.PaymentCard {
		intent, err := s.gateway.CreateIntent(ctx, payment.IntentRequest{
			AmountMinor:    helpers.MinorUnits(order.GrandTotal()),
			Currency:       s.currency,
			OrderID:        order.ID.Hex(),
			IdempotencyKey: order.ID.Hex(),
		})
		if err != nil {
			return nil, fmt.Errorf("payment: %w", err)
		}
		order.PaymentIntentID = intent.ID
		created.ClientSecret = intent.ClientSecret
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		if order.PaymentIntentID != "" {
			if cerr := s.gateway.CancelIntent(context.WithoutCancel(ctx), order.PaymentIntentID); cerr != nil {
				log.Printf("order %s: cancel intent %s after failed insert: %v", order.ID.Hex(), order.PaymentIntentID, cerr)
			}
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.events.OrderCreated(ctx, order)
	s.sendConfirmation(ctx, order)
	return created, nil
}

// Subtotal is the sum of price times quantity over the snapshot lines.
func Subtotal(items []models.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *OrderService) priceCart(ctx context.Context, lines []models.CartLine) ([]models.OrderItem, error) {
	var menuIDs, comboIDs []primitive.ObjectID
	for _, line := range lines {
		switch {
		case line.MenuItemID != "" && line.ComboID != "":
			return nil, validationErrorf("cart line must reference either a menu item or a combo")
		case line.MenuItemID != "":
			id, err := ParseID(line.MenuItemID, "menu item")
			if err != nil {
				return nil, err
			}
			menuIDs = append(menuIDs, id)
		default:
			id, err := ParseID(line.ComboID, "combo")
			if err != nil {
				return nil, err
			}
			comboIDs = append(comboIDs, id)
		}
	}

	menuByID := map[primitive.ObjectID]models.MenuItem{}
	if len(menuIDs) > 0 {
		found, err := s.menu.FindByIDs(ctx, menuIDs)
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			menuByID[m.ID] = m
		}
	}
	comboByID := map[primitive.ObjectID]models.ComboDeal{}
	if len(comboIDs) > 0 {
		found, err := s.combos.FindByIDs(ctx, comboIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range found {
			comboByID[c.ID] = c
		}
	}

	now := s.now()
	items := make([]models.OrderItem, 0, len(lines))
	mi, ci := 0, 0
	for _, line := range lines {
		if line.MenuItemID != "" {
			m, ok := menuByID[menuIDs[mi]]
			mi++
			if !ok {
				return nil, validationErrorf("menu item %s not found", line.MenuItemID)
			}
			if !m.InStock {
				return nil, validationErrorf("%s is out of stock", m.Name)
			}
			items = append(items, models.OrderItem{
				Name: m.Name, Price: m.Price, Quantity: line.Quantity, Description: m.Description,
			})
			continue
		}
		c, ok := comboByID[comboIDs[ci]]
		ci++
		if !ok {
			return nil, validationErrorf("combo %s not found", line.ComboID)
		}
		if !c.AvailableAt(now) {
			return nil, validationErrorf("%s is not available", c.Name)
		}
		items = append(items, models.OrderItem{
			Name: c.Name, Price: c.DiscountedPrice, Quantity: line.Quantity, Description: c.Description,
		})
	}
	return items, nil
}

func (s *OrderService) sendConfirmation(ctx context.Context, order *models.Order) {
	user, err := s.users.FindByID(ctx, order.User)
	if err != nil {
		log.Printf("order %s: load customer for confirmation: %v", order.OrderNumber, err)
		return
	}
	if err := s.mail.SendOrderConfirmationEmail(ctx, user.Email, order); err != nil {
		log.Printf("order %s: confirmation email: %v", order.OrderNumber, err)
	}
}

func (s *OrderService) ListMine(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// GetForUser only returns orders owned by userID; others look like they do not exist.
func (s *OrderService) GetForUser(ctx context.Context, userID, orderID primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, "Order")
	}
	if order.User != userID {
		return nil, fmt.Errorf("Order %w", ErrNotFound)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, status string, page models.Page) (*models.PagedResult[models.OrderWithCustomer], error) {
	filter := models.OrderFilter{}
	if status != "" && status != "all" {
		if !models.IsOrderStatus(status) {
			return nil, validationErrorf("unknown order status %q", status)
		}
		filter.Status = status
	}
	orders, total, err := s.orders.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return &models.PagedResult[models.OrderWithCustomer]{
		Items:       orders,
		Total:       total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
	}, nil
}

// UpdateStatus overwrites the order status with any valid value. Repeating the
// same status is accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, req models.OrderStatusRequest, adminID primitive.ObjectID) (*models.Order, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	current, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, "Order")
	}
	if models.IsTerminalStatus(current.OrderStatus) && current.OrderStatus != req.OrderStatus {
		log.Printf("order %s reopened: %s -> %s by %s", current.OrderNumber, current.OrderStatus, req.OrderStatus, adminID.Hex())
	}
	change := models.StatusChange{Status: req.OrderStatus, Changed_at: s.now(), Changed_by: &adminID}
	order, err := s.orders.SetStatus(ctx, orderID, change)
	if err != nil {
		return nil, notFound(err, "Order")
	}
	s.events.OrderStatusChanged(ctx, order)
	return order, nil
}

// HandleWebhook verifies and applies a gateway event. Redelivery of an event
// already applied is a no-op.
func (s *OrderService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	switch event.Type {
	case payment.EventPaymentSucceeded:
		return s.ConfirmPayment(ctx, event.OrderID)
	case payment.EventPaymentFailed:
		return s.failPayment(ctx, event.OrderID)
	default:
		return nil
	}
}

func (s *OrderService) ConfirmPayment(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		log.Printf("payment event without a valid order id %q", hexID)
		return nil
	}
	order, changed, err := s.orders.ConfirmPayment(ctx, id, s.now())
	if err != nil {
		if errors.Is(notFound(err, "Order"), ErrNotFound) {
			log.Printf("payment event for unknown order %s", hexID)
			return nil
		}
		return err
	}
	if changed {
		s.events.PaymentStatusChanged(ctx, order)
	}
	return nil
}

func (s *OrderService) failPayment(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		log.Printf("payment event without a valid order id %q", hexID)
		return nil
	}
	order, changed, err := s.orders.FailPayment(ctx, id, s.now())
	if err != nil {
		if errors.Is(notFound(err, "Order"), ErrNotFound) {
			log.Printf("payment event for unknown order %s", hexID)
			return nil
		}
		return err
	}
	if changed {
		s.events.PaymentStatusChanged(ctx, order)
	}
	return nil
}

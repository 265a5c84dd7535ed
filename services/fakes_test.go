package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"shawon-burger/database"
	"shawon-burger/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo stores.

type memUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[primitive.ObjectID]*models.User{}}
}

func (m *memUsers) Insert(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return database.ErrDuplicateKey
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memUsers) SetOTP(_ context.Context, id primitive.ObjectID, otp models.OTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return database.ErrNotFound
	}
	u.OTP = &otp
	return nil
}

func (m *memUsers) MarkVerified(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return database.ErrNotFound
	}
	u.IsVerified = true
	u.OTP = nil
	return nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id primitive.ObjectID, upd models.ProfileUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) List(_ context.Context, page models.Page) ([]models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Created_at.After(all[j].Created_at) })
	return paginate(all, page), int64(len(all)), nil
}

func paginate[T any](all []T, page models.Page) []T {
	start := int(page.Skip())
	if start >= len(all) {
		return []T{}
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

type memMenu struct {
	items map[primitive.ObjectID]models.MenuItem
}

func newMemMenu(items ...models.MenuItem) *memMenu {
	m := &memMenu{items: map[primitive.ObjectID]models.MenuItem{}}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *memMenu) List(_ context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	out := []models.MenuItem{}
	for _, it := range m.items {
		if filter.Category == "" || it.Category == filter.Category {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memMenu) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	out := []models.MenuItem{}
	for _, id := range ids {
		if it, ok := m.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memMenu) Insert(_ context.Context, item *models.MenuItem) error {
	m.items[item.ID] = *item
	return nil
}

func (m *memMenu) Update(_ context.Context, id primitive.ObjectID, upd models.MenuItemUpdate) (*models.MenuItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if upd.Price != nil {
		it.Price = *upd.Price
	}
	if upd.InStock != nil {
		it.InStock = *upd.InStock
	}
	if upd.Name != nil {
		it.Name = *upd.Name
	}
	m.items[id] = it
	return &it, nil
}

func (m *memMenu) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.items[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memMenu) Count(context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type memCombos struct {
	combos map[primitive.ObjectID]models.ComboDeal
}

func newMemCombos(combos ...models.ComboDeal) *memCombos {
	m := &memCombos{combos: map[primitive.ObjectID]models.ComboDeal{}}
	for _, c := range combos {
		m.combos[c.ID] = c
	}
	return m
}

func (m *memCombos) List(context.Context) ([]models.ComboDeal, error) {
	out := []models.ComboDeal{}
	for _, c := range m.combos {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCombos) ListAvailable(_ context.Context, at time.Time) ([]models.ComboDeal, error) {
	out := []models.ComboDeal{}
	for _, c := range m.combos {
		if c.AvailableAt(at) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCombos) FindByID(_ context.Context, id primitive.ObjectID) (*models.ComboDeal, error) {
	c, ok := m.combos[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &c, nil
}

func (m *memCombos) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.ComboDeal, error) {
	out := []models.ComboDeal{}
	for _, id := range ids {
		if c, ok := m.combos[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCombos) Insert(_ context.Context, combo *models.ComboDeal) error {
	m.combos[combo.ID] = *combo
	return nil
}

func (m *memCombos) Replace(_ context.Context, combo *models.ComboDeal) error {
	if _, ok := m.combos[combo.ID]; !ok {
		return database.ErrNotFound
	}
	m.combos[combo.ID] = *combo
	return nil
}

func (m *memCombos) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.combos[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.combos, id)
	return nil
}

type memOrders struct {
	mu        sync.Mutex
	orders    map[primitive.ObjectID]*models.Order
	insertErr error
}

func newMemOrders() *memOrders {
	return &memOrders{orders: map[primitive.ObjectID]*models.Order{}}
}

func (m *memOrders) Insert(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *memOrders) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.User == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created_at.After(out[j].Created_at) })
	return out, nil
}

func (m *memOrders) List(_ context.Context, filter models.OrderFilter, page models.Page) ([]models.OrderWithCustomer, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := []models.OrderWithCustomer{}
	for _, o := range m.orders {
		if filter.Status == "" || o.OrderStatus == filter.Status {
			all = append(all, models.OrderWithCustomer{Order: *o})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Created_at.After(all[j].Created_at) })
	return paginate(all, page), int64(len(all)), nil
}

func (m *memOrders) SetStatus(_ context.Context, id primitive.ObjectID, change models.StatusChange) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	o.OrderStatus = change.Status
	o.StatusHistory = append(o.StatusHistory, change)
	o.Updated_at = change.Changed_at
	cp := *o
	return &cp, nil
}

func (m *memOrders) ConfirmPayment(_ context.Context, id primitive.ObjectID, at time.Time) (*models.Order, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, false, database.ErrNotFound
	}
	if o.PaymentStatus == models.PaymentCompleted {
		cp := *o
		return &cp, false, nil
	}
	o.PaymentStatus = models.PaymentCompleted
	o.OrderStatus = models.StatusConfirmed
	o.StatusHistory = append(o.StatusHistory, models.StatusChange{Status: models.StatusConfirmed, Changed_at: at})
	o.Updated_at = at
	cp := *o
	return &cp, true, nil
}

func (m *memOrders) FailPayment(_ context.Context, id primitive.ObjectID, at time.Time) (*models.Order, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, false, database.ErrNotFound
	}
	if o.PaymentStatus != models.PaymentPending {
		cp := *o
		return &cp, false, nil
	}
	o.PaymentStatus = models.PaymentFailed
	o.Updated_at = at
	cp := *o
	return &cp, true, nil
}

type memReviews struct {
	reviews map[primitive.ObjectID]*models.Review
}

func newMemReviews() *memReviews {
	return &memReviews{reviews: map[primitive.ObjectID]*models.Review{}}
}

func (m *memReviews) Insert(_ context.Context, review *models.Review) error {
	for _, r := range m.reviews {
		if r.User == review.User && r.Order == review.Order {
			return database.ErrDuplicateKey
		}
	}
	cp := *review
	m.reviews[review.ID] = &cp
	return nil
}

func (m *memReviews) Exists(_ context.Context, userID, orderID primitive.ObjectID) (bool, error) {
	for _, r := range m.reviews {
		if r.User == userID && r.Order == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memReviews) FindByID(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memReviews) Update(_ context.Context, id primitive.ObjectID, upd models.ReviewUpdate, at time.Time) error {
	r, ok := m.reviews[id]
	if !ok {
		return database.ErrNotFound
	}
	if upd.Rating != nil {
		r.Rating = *upd.Rating
	}
	if upd.Comment != nil {
		r.Comment = *upd.Comment
	}
	if upd.Images != nil {
		r.Images = *upd.Images
	}
	r.Updated_at = at
	return nil
}

func (m *memReviews) Respond(_ context.Context, id primitive.ObjectID, resp models.AdminResponse) error {
	r, ok := m.reviews[id]
	if !ok {
		return database.ErrNotFound
	}
	r.AdminResponse = &resp
	return nil
}

func (m *memReviews) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.reviews[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}

func (m *memReviews) FindView(_ context.Context, id primitive.ObjectID) (*models.ReviewView, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &models.ReviewView{Review: *r}, nil
}

func (m *memReviews) List(ctx context.Context, filter models.ReviewFilter, page models.Page) ([]models.ReviewView, int64, error) {
	all, _ := m.ListAll(ctx)
	matched := []models.ReviewView{}
	for _, v := range all {
		if filter.Rating == 0 || v.Rating == filter.Rating {
			matched = append(matched, v)
		}
	}
	return paginate(matched, page), int64(len(matched)), nil
}

func (m *memReviews) ListByOrder(ctx context.Context, orderID primitive.ObjectID) ([]models.ReviewView, error) {
	all, _ := m.ListAll(ctx)
	out := []models.ReviewView{}
	for _, v := range all {
		if v.Order == orderID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memReviews) ListAll(context.Context) ([]models.ReviewView, error) {
	out := []models.ReviewView{}
	for _, r := range m.reviews {
		out = append(out, models.ReviewView{Review: *r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created_at.After(out[j].Created_at) })
	return out, nil
}

func (m *memReviews) Stats(context.Context) (models.ReviewStats, error) {
	stats := models.NewReviewStats()
	var sum int
	for _, r := range m.reviews {
		stats.RatingCounts[string(rune('0'+r.Rating))]++
		stats.TotalReviews++
		sum += r.Rating
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats, nil
}

// emptyDashboard answers every rollup the way Mongo does for empty collections.
type emptyDashboard struct {
	mu         sync.Mutex
	dailySince time.Time
	dailyLoc   *time.Location
}

func (d *emptyDashboard) CountOrders(context.Context, *time.Time) (int64, error) { return 0, nil }
func (d *emptyDashboard) SumRevenue(context.Context, *time.Time) (float64, error) { return 0, nil }
func (d *emptyDashboard) CountCustomers(context.Context) (int64, error)           { return 0, nil }
func (d *emptyDashboard) StatusCounts(context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}
func (d *emptyDashboard) PopularItems(context.Context, int) ([]models.PopularItem, error) {
	return nil, nil
}
func (d *emptyDashboard) DailyStats(_ context.Context, since time.Time, loc *time.Location) ([]models.DailyStat, error) {
	d.mu.Lock()
	d.dailySince, d.dailyLoc = since, loc
	d.mu.Unlock()
	return nil, nil
}

type memNotifications struct {
	mu    sync.Mutex
	items []models.Notification
}

func (m *memNotifications) Insert(_ context.Context, n *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *n)
	return nil
}

func (m *memNotifications) List(_ context.Context, role string, unreadOnly bool) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Notification{}
	for _, n := range m.items {
		if n.User_role == role && (!unreadOnly || !n.Is_read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotifications) MarkRead(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Is_read = true
			return nil
		}
	}
	return database.ErrNotFound
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) Broadcast(event string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

// staticTokens issues a predictable token for assertions.
type staticTokens struct{}

func (staticTokens) GenerateToken(email, _, uid, role string) (string, error) {
	return "token-" + uid + "-" + role, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

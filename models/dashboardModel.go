package models

type PopularItem struct {
	Name     string  `bson:"_id" json:"name"`
	Quantity int     `bson:"count" json:"count"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

type DailyStat struct {
	Date    string  `bson:"_id" json:"date"`
	Orders  int     `bson:"orders" json:"orders"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

type DashboardStats struct {
	DateRange         string           `json:"dateRange"`
	TotalOrders       int64            `json:"totalOrders"`
	PeriodOrders      int64            `json:"periodOrders"`
	TotalRevenue      float64          `json:"totalRevenue"`
	PeriodRevenue     float64          `json:"periodRevenue"`
	UserCount         int64            `json:"userCount"`
	OrderStatusCounts map[string]int64 `json:"orderStatusCounts"`
	PopularItems      []PopularItem    `json:"popularItems"`
	DailyStats        []DailyStat      `json:"dailyStats"`
}

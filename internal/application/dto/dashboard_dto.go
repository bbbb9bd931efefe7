package dto

// DashboardStatsResponse respuesta de GET /api/dashboard.
type DashboardStatsResponse struct {
	TotalProducts   int    `json:"total_products"`
	LowStockCount   int    `json:"low_stock_count"`
	TodayMovements  int    `json:"today_movements"`
	TotalStockValue string `json:"total_stock_value"` // redondeado a 2 decimales al presentar
	Date            string `json:"date"`
	DateLabel       string `json:"date_label"` // "jeudi 12 mars 2026"
}

// DashboardWidgetsResponse respuesta de GET /api/dashboard/widgets.
type DashboardWidgetsResponse struct {
	RecentMovements []MovementResponse `json:"recent_movements"`
	AlertProducts   []ProductResponse  `json:"alert_products"` // orden de catálogo
	TopByQuantity   []ProductResponse  `json:"top_by_quantity"`
}

package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard: conteos agregados
// calculados en el momento desde el catálogo y el libro de operaciones,
// sin efectos secundarios.
type DashboardSummaryDTO struct {
	// Total de productos en el catálogo.
	TotalProducts int `json:"totalProducts"`
	// Productos con total_stock <= reorder_level (coerción numérica,
	// faltante cuenta como 0).
	LowStockItems int `json:"lowStockItems"`
	// Recepciones con estado draft/waiting/pending.
	PendingReceipts int `json:"pendingReceipts"`
	// Entregas cuyo estado no es done/completed.
	PendingDeliveries int `json:"pendingDeliveries"`
	// Transferencias con estado scheduled/waiting/pending.
	InternalTransfersScheduled int `json:"internalTransfersScheduled"`
}

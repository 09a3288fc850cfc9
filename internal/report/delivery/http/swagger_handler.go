package http

// Dashboard godoc
// @Summary Dashboard analytics
// @Description Aggregate counts for items, pending requests, low stock and total stock value (Admin only)
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reports/dashboard [get]
func (h *ReportHandler) DashboardDoc() {}

// MostRequested godoc
// @Summary Most requested items
// @Description Items ranked by number of stock requests (Admin only)
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit (default 10, max 50)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reports/most-requested [get]
func (h *ReportHandler) MostRequestedDoc() {}

// Valuation godoc
// @Summary Inventory valuation
// @Description Stock value grouped by product type (Admin only)
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reports/valuation [get]
func (h *ReportHandler) ValuationDoc() {}

// StockMovement godoc
// @Summary Monthly stock movement
// @Description Daily additions and removals for a given month (Admin only)
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/reports/stock-movement [get]
func (h *ReportHandler) StockMovementDoc() {}

package http

// CreateRequest godoc
// @Summary Create stock request
// @Description Submit a request for a quantity of an item; checked against current stock at submission time
// @Tags Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{item_id=int,quantity=int,reason=string} true "Request data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/requests [post]
func (h *RequestHandler) CreateRequestDoc() {}

// ListRequests godoc
// @Summary List stock requests
// @Description Admins see every request; staff only see their own
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param item_id query int false "Filter by item"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/requests [get]
func (h *RequestHandler) ListRequestsDoc() {}

// GetRequest godoc
// @Summary Get stock request by ID
// @Description Staff may only read their own requests
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/requests/{id} [get]
func (h *RequestHandler) GetRequestDoc() {}

// ProcessRequest godoc
// @Summary Process stock request
// @Description Approve or reject a pending request; approval deducts stock atomically (Admin only)
// @Tags Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body object{decision=string,notes=string} true "Decision: approved or rejected"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/requests/{id}/process [put]
func (h *RequestHandler) ProcessRequestDoc() {}

// PendingCount godoc
// @Summary Count pending requests
// @Description Number of requests still awaiting a decision (Admin only)
// @Tags Requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{pending_count=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/requests/pending-count [get]
func (h *RequestHandler) PendingCountDoc() {}

// Package http exposes the intake workflow and order records over an echo
// HTTP API. This is the dispatch boundary: it translates requests into
// workflow actions, commands and queries, and maps the error taxonomy onto
// status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"receipts/internal/core/application/usecases/commands"
	"receipts/internal/core/application/usecases/intake"
	"receipts/internal/core/application/usecases/queries"
	"receipts/internal/core/domain/model/kernel"
	"receipts/internal/core/domain/model/order"
	"receipts/internal/core/domain/services"
	"receipts/internal/core/ports"
	"receipts/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	workflow *intake.Workflow

	// Command handlers
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	searchHandler     queries.SearchOrdersQueryHandler
	listRecentHandler queries.ListRecentOrdersQueryHandler

	orderRepository ports.OrderRepository
	renderer        services.ReceiptRenderer
}

// NewServer creates a new HTTP server with the required use case dependencies.
func NewServer(
	workflow *intake.Workflow,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	searchHandler queries.SearchOrdersQueryHandler,
	listRecentHandler queries.ListRecentOrdersQueryHandler,
	orderRepository ports.OrderRepository,
	renderer services.ReceiptRenderer,
) *Server {
	return &Server{
		workflow:            workflow,
		changeStatusHandler: changeStatusHandler,
		getOrderHandler:     getOrderHandler,
		searchHandler:       searchHandler,
		listRecentHandler:   listRecentHandler,
		orderRepository:     orderRepository,
		renderer:            renderer,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/intake/:actorId", s.BeginIntake)
	api.POST("/intake/:actorId/steps", s.SubmitStep)
	api.DELETE("/intake/:actorId", s.CancelIntake)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders/:id/receipt", s.GetReceipt)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type promptResponse struct {
	Prompt string `json:"prompt"`
}

type stepRequest struct {
	Text string `json:"text"`
}

type stepResponse struct {
	Outcome string `json:"outcome"`
	Prompt  string `json:"prompt,omitempty"`
	Reason  string `json:"reason,omitempty"`
	OrderID string `json:"orderId,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID                 string `json:"id"`
	TaxID              string `json:"taxId,omitempty"`
	CustomerName       string `json:"customerName"`
	ProductDescription string `json:"productDescription"`
	GrossValue         string `json:"grossValue"`
	Discount           string `json:"discount"`
	Savings            string `json:"savings"`
	FinalValue         string `json:"finalValue"`
	Status             string `json:"status"`
	TransactionID      string `json:"transactionId,omitempty"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

func toOrderResponse(o queries.OrderQueryResponse) orderResponse {
	return orderResponse{
		ID:                 o.ID,
		TaxID:              o.TaxID,
		CustomerName:       o.CustomerName,
		ProductDescription: o.ProductDescription,
		GrossValue:         o.GrossValue.StringFixed(2),
		Discount:           o.Discount.StringFixed(2),
		Savings:            o.Savings.StringFixed(2),
		FinalValue:         o.FinalValue.StringFixed(2),
		Status:             o.Status,
		TransactionID:      o.TransactionID,
		CreatedAt:          o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          o.UpdatedAt.Format(time.RFC3339),
	}
}

// BeginIntake handles POST /api/v1/intake/{actorId} - starts a fresh intake
// session and responds with the first prompt.
func (s *Server) BeginIntake(ctx echo.Context) error {
	actorID := ctx.Param("actorId")

	prompt, err := s.workflow.Begin(ctx.Request().Context(), actorID)
	if err != nil {
		if errors.Is(err, intake.ErrAccessDenied) {
			return ctx.JSON(http.StatusForbidden, errorResponse{
				Code:    http.StatusForbidden,
				Message: "Actor is not allowed to register orders",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to start intake",
		})
	}

	return ctx.JSON(http.StatusCreated, promptResponse{Prompt: prompt})
}

// SubmitStep handles POST /api/v1/intake/{actorId}/steps - feeds one raw
// input to the actor's session.
func (s *Server) SubmitStep(ctx echo.Context) error {
	actorID := ctx.Param("actorId")

	var req stepRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	result, err := s.workflow.Submit(ctx.Request().Context(), actorID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrAccessDenied):
			return ctx.JSON(http.StatusForbidden, errorResponse{
				Code:    http.StatusForbidden,
				Message: "Actor is not allowed to register orders",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Code:    http.StatusNotFound,
				Message: "No intake session in progress for this actor",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, errorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to process intake step",
			})
		}
	}

	return ctx.JSON(http.StatusOK, stepResponse{
		Outcome: string(result.Outcome),
		Prompt:  result.Prompt,
		Reason:  result.Reason,
		OrderID: result.OrderID,
	})
}

// CancelIntake handles DELETE /api/v1/intake/{actorId} - discards the actor's
// session without persisting anything.
func (s *Server) CancelIntake(ctx echo.Context) error {
	actorID := ctx.Param("actorId")

	result, err := s.workflow.Cancel(ctx.Request().Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrAccessDenied):
			return ctx.JSON(http.StatusForbidden, errorResponse{
				Code:    http.StatusForbidden,
				Message: "Actor is not allowed to register orders",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Code:    http.StatusNotFound,
				Message: "No intake session in progress for this actor",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, errorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to cancel intake",
			})
		}
	}

	return ctx.JSON(http.StatusOK, stepResponse{Outcome: string(result.Outcome)})
}

// GetOrders handles GET /api/v1/orders - substring search when the search
// query parameter is present, recency listing otherwise.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	var (
		records []queries.OrderQueryResponse
		err     error
	)

	if term := ctx.QueryParam("search"); term != "" {
		var query queries.SearchOrdersQuery
		query, err = queries.NewSearchOrdersQuery(term, limit)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid search term",
			})
		}
		records, err = s.searchHandler.Handle(ctx.Request().Context(), query)
	} else {
		query := queries.NewListRecentOrdersQuery(limit)
		records, err = s.listRecentHandler.Handle(ctx.Request().Context(), query)
	}

	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]orderResponse, len(records))
	for i, record := range records {
		response[i] = toOrderResponse(record)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id} - fetches one order record.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	record, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(record))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status - moves an order
// between pending and delivered.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req statusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Status must be pending or delivered",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status, time.Now())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order status",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetReceipt handles GET /api/v1/orders/{id}/receipt - renders the order's
// receipt document as a plain-text attachment.
func (s *Server) GetReceipt(ctx echo.Context) error {
	id, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	record, err := s.orderRepository.Get(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	receipt, err := s.renderer.Render(record)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render receipt",
		})
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="receipt_`+id.String()+`.txt"`)
	return ctx.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, receipt)
}

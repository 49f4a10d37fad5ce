// Package http is the inbound HTTP adapter. It translates the REST surface
// into commands and queries and maps domain errors onto status codes and
// stable error code tokens.
package http

import (
	"net/http"
	"strconv"

	"procserve/api"
	"procserve/internal/core/application/usecases/commands"
	"procserve/internal/core/application/usecases/queries"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	PlaceBid              commands.PlaceBidCommandHandler
	AcceptBid             commands.AcceptBidCommandHandler
	CounterOfferBid       commands.CounterOfferBidCommandHandler
	AcceptCounter         commands.AcceptCounterCommandHandler
	RecordAttempt         commands.RecordDeliveryAttemptCommandHandler
	RegisterProcessServer commands.RegisterProcessServerCommandHandler
	AddContact            commands.AddContactCommandHandler
	RemoveContact         commands.RemoveContactCommandHandler
	InviteProcessServer   commands.InviteProcessServerCommandHandler

	GetOrder                queries.GetOrderQueryHandler
	GetCustomerOrders       queries.GetCustomerOrdersQueryHandler
	ListBids                queries.ListBidsQueryHandler
	CheckOrderEditability   queries.CheckOrderEditabilityQueryHandler
	GetOrderPricing         queries.GetOrderPricingQueryHandler
	GetContactList          queries.GetContactListQueryHandler
	GetGlobalProcessServers queries.GetGlobalProcessServersQueryHandler
	GetProcessServerDetails queries.GetProcessServerDetailsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/openapi.yaml", s.OpenAPIContract)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
	v1.GET("/orders/:orderId/bids", s.ListBids)
	v1.GET("/orders/:orderId/editability", s.CheckOrderEditability)
	v1.GET("/orders/:orderId/pricing", s.GetOrderPricing)
	v1.GET("/customers/:customerId/orders", s.GetCustomerOrders)
	v1.POST("/recipients/:recipientId/bids", s.PlaceBid)
	v1.POST("/recipients/:recipientId/attempts", s.RecordDeliveryAttempt)
	v1.POST("/bids/:bidId/accept", s.AcceptBid)
	v1.POST("/bids/:bidId/counter", s.CounterOfferBid)
	v1.POST("/bids/:bidId/accept-counter", s.AcceptCounter)
	v1.POST("/process-servers", s.RegisterProcessServer)
	v1.GET("/process-servers", s.GetGlobalProcessServers)
	v1.GET("/process-servers/:serverId", s.GetProcessServerDetails)
	v1.GET("/customers/:customerId/contacts", s.GetContactList)
	v1.POST("/customers/:customerId/contacts", s.AddContact)
	v1.DELETE("/customers/:customerId/contacts/:serverId", s.RemoveContact)
	v1.POST("/customers/:customerId/invitations", s.InviteProcessServer)
}

// OpenAPIContract serves the embedded API contract.
func (s *Server) OpenAPIContract(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", api.Contract())
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := clientOrNewUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	recipients := make([]commands.RecipientSpec, 0, len(req.Recipients))
	for _, draft := range req.Recipients {
		recipientID, err := clientOrNewUUID(draft.ID)
		if err != nil {
			return respondError(ctx, err)
		}

		var designated *kernel.UUID
		if draft.DesignatedServerID != nil {
			id, err := kernel.UUIDFromBytes((*draft.DesignatedServerID)[:])
			if err != nil {
				return respondError(ctx, err)
			}
			designated = &id
		}

		recipients = append(recipients, commands.RecipientSpec{
			RecipientID:        recipientID,
			Name:               draft.Name,
			Street:             draft.Street,
			City:               draft.City,
			State:              draft.State,
			Zip:                draft.Zip,
			Mode:               draft.Mode,
			ProcessService:     draft.ProcessService,
			CertifiedMail:      draft.CertifiedMail,
			RushService:        draft.RushService,
			RemoteLocation:     draft.RemoteLocation,
			MaxAttempts:        draft.MaxAttempts,
			DesignatedServerID: designated,
		})
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerID[:])
	if err != nil {
		return respondError(ctx, err)
	}
	tenantID, err := kernel.UUIDFromBytes(req.TenantID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, tenantID,
		req.Deadline, req.Document.Title, req.Document.CaseNumber,
		recipients,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(result))
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cancelledBy, err := kernel.UUIDFromBytes(req.CancelledBy[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, req.Notes, cancelledBy)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListBids handles GET /api/v1/orders/:orderId/bids.
func (s *Server) ListBids(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListBidsQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.ListBids.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	bids := make([]Bid, 0, len(result))
	for _, row := range result {
		bids = append(bids, toBid(row))
	}
	return ctx.JSON(http.StatusOK, bids)
}

// CheckOrderEditability handles GET /api/v1/orders/:orderId/editability.
func (s *Server) CheckOrderEditability(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewCheckOrderEditabilityQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.CheckOrderEditability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Editability{
		CanEdit:    result.CanEdit,
		LockReason: result.LockReason,
	})
}

// GetOrderPricing handles GET /api/v1/orders/:orderId/pricing.
func (s *Server) GetOrderPricing(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderPricingQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetOrderPricing.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPricing(result))
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries := make([]OrderSummary, 0, len(result))
	for _, row := range result {
		summaries = append(summaries, OrderSummary{
			ID:             row.ID.Bytes(),
			Deadline:       row.Deadline,
			DocumentTitle:  row.DocumentTitle,
			Status:         row.Status,
			RecipientCount: row.RecipientCount,
			Cancelled:      row.Cancelled,
		})
	}
	return ctx.JSON(http.StatusOK, summaries)
}

// PlaceBid handles POST /api/v1/recipients/:recipientId/bids.
func (s *Server) PlaceBid(ctx echo.Context) error {
	recipientID, err := kernel.UUIDFromString(ctx.Param("recipientId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req PlaceBidRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	bidID, err := clientOrNewUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}
	serverID, err := kernel.UUIDFromBytes(req.ServerID[:])
	if err != nil {
		return respondError(ctx, err)
	}
	amount, err := kernel.NewMoneyFromCents(req.AmountCents)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPlaceBidCommand(bidID, recipientID, serverID, amount, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.PlaceBid.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: bidID.Bytes()})
}

// AcceptBid handles POST /api/v1/bids/:bidId/accept.
func (s *Server) AcceptBid(ctx echo.Context) error {
	bidID, err := kernel.UUIDFromString(ctx.Param("bidId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptBidCommand(bidID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AcceptBid.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CounterOfferBid handles POST /api/v1/bids/:bidId/counter.
func (s *Server) CounterOfferBid(ctx echo.Context) error {
	bidID, err := kernel.UUIDFromString(ctx.Param("bidId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CounterOfferRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	by, err := order.PartyFromString(req.By)
	if err != nil {
		return respondError(ctx, err)
	}
	amount, err := kernel.NewMoneyFromCents(req.AmountCents)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCounterOfferBidCommand(bidID, by, amount, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CounterOfferBid.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptCounter handles POST /api/v1/bids/:bidId/accept-counter.
func (s *Server) AcceptCounter(ctx echo.Context) error {
	bidID, err := kernel.UUIDFromString(ctx.Param("bidId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AcceptCounterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	by, err := order.PartyFromString(req.By)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptCounterCommand(bidID, by)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AcceptCounter.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDeliveryAttempt handles POST /api/v1/recipients/:recipientId/attempts.
func (s *Server) RecordDeliveryAttempt(ctx echo.Context) error {
	recipientID, err := kernel.UUIDFromString(ctx.Param("recipientId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordAttemptRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	attemptID, err := clientOrNewUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}
	serverID, err := kernel.UUIDFromBytes(req.ServerID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	var geo *order.Geolocation
	if req.Geolocation != nil {
		geo = &order.Geolocation{
			Latitude:  req.Geolocation.Latitude,
			Longitude: req.Geolocation.Longitude,
		}
	}

	cmd, err := commands.NewRecordDeliveryAttemptCommand(
		attemptID, recipientID, serverID,
		req.WasSuccessful, req.Notes, geo,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RecordAttempt.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: attemptID.Bytes()})
}

// RegisterProcessServer handles POST /api/v1/process-servers.
func (s *Server) RegisterProcessServer(ctx echo.Context) error {
	var req RegisterProcessServerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	serverID, err := clientOrNewUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterProcessServerCommand(
		serverID, req.Name, string(req.Email),
		req.Zips, req.GloballyVisible,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RegisterProcessServer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: serverID.Bytes()})
}

// GetGlobalProcessServers handles GET /api/v1/process-servers.
func (s *Server) GetGlobalProcessServers(ctx echo.Context) error {
	var minRating float64
	if raw := ctx.QueryParam("minRating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, "minRating must be a number")
		}
		minRating = parsed
	}

	query, err := queries.NewGetGlobalProcessServersQuery(
		ctx.QueryParam("zip"), minRating, ctx.QueryParam("sortBy"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetGlobalProcessServers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetProcessServerDetails handles GET /api/v1/process-servers/:serverId.
func (s *Server) GetProcessServerDetails(ctx echo.Context) error {
	serverID, err := kernel.UUIDFromString(ctx.Param("serverId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProcessServerDetailsQuery(serverID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetProcessServerDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProcessServer{
		ID:              result.ID.Bytes(),
		Name:            result.Name,
		Email:           openapi_types.Email(result.Email),
		Rating:          result.Rating,
		TotalJobs:       result.TotalJobs,
		CompletedJobs:   result.CompletedJobs,
		Zips:            result.Zips,
		GloballyVisible: result.GloballyVisible,
	})
}

// GetContactList handles GET /api/v1/customers/:customerId/contacts.
func (s *Server) GetContactList(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetContactListQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetContactList.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	contacts := make([]Contact, 0, len(result))
	for _, row := range result {
		contacts = append(contacts, Contact{
			ID:       row.ID.Bytes(),
			ServerID: optionalUUID(row.ServerID),
			Email:    openapi_types.Email(row.Email),
			Nickname: row.Nickname,
			Status:   row.Status,
			AddedAt:  row.AddedAt,
		})
	}
	return ctx.JSON(http.StatusOK, contacts)
}

// AddContact handles POST /api/v1/customers/:customerId/contacts.
func (s *Server) AddContact(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddContactRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	entryID, err := clientOrNewUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}
	serverID, err := kernel.UUIDFromBytes(req.ServerID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddContactCommand(entryID, customerID, serverID, req.Nickname)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddContact.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: entryID.Bytes()})
}

// RemoveContact handles DELETE /api/v1/customers/:customerId/contacts/:serverId.
func (s *Server) RemoveContact(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondError(ctx, err)
	}
	serverID, err := kernel.UUIDFromString(ctx.Param("serverId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveContactCommand(customerID, serverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RemoveContact.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InviteProcessServer handles POST /api/v1/customers/:customerId/invitations.
func (s *Server) InviteProcessServer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req InviteProcessServerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	entryID, err := clientOrNewUUID(req.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewInviteProcessServerCommand(
		entryID, customerID, string(req.Email), req.Nickname,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.InviteProcessServer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: entryID.Bytes()})
}

func toOrder(result queries.GetOrderQueryResponse) Order {
	recipients := make([]Recipient, 0, len(result.Recipients))
	for _, row := range result.Recipients {
		var price *int64
		if row.AgreedPrice != nil {
			cents := row.AgreedPrice.Cents()
			price = &cents
		}

		recipients = append(recipients, Recipient{
			ID:               row.ID.Bytes(),
			Sequence:         row.Sequence,
			Name:             row.Name,
			Street:           row.Street,
			City:             row.City,
			State:            row.State,
			Zip:              row.Zip,
			Mode:             row.Mode,
			Status:           row.Status,
			MaxAttempts:      row.MaxAttempts,
			AttemptCount:     row.AttemptCount,
			AssignedServerID: optionalUUID(row.AssignedServerID),
			AgreedPriceCents: price,
		})
	}

	return Order{
		ID:         result.ID.Bytes(),
		CustomerID: result.CustomerID.Bytes(),
		TenantID:   result.TenantID.Bytes(),
		Deadline:   result.Deadline,
		Document: DocumentPayload{
			Title:      result.DocumentTitle,
			CaseNumber: result.DocumentCaseNumber,
		},
		Status:       result.Status,
		Cancelled:    result.Cancelled,
		CancelReason: result.CancelReason,
		CancelNotes:  result.CancelNotes,
		Recipients:   recipients,
	}
}

func toBid(row queries.ListBidsQueryResponse) Bid {
	var counterAmount *int64
	if row.CounterAmount != nil {
		cents := row.CounterAmount.Cents()
		counterAmount = &cents
	}

	return Bid{
		ID:                 row.ID.Bytes(),
		RecipientID:        row.RecipientID.Bytes(),
		ServerID:           row.ServerID.Bytes(),
		AmountCents:        row.Amount.Cents(),
		CurrentAmountCents: row.CurrentAmount.Cents(),
		Comment:            row.Comment,
		Status:             row.Status,
		CounterBy:          row.CounterBy,
		CounterAmountCents: counterAmount,
		CounterNotes:       row.CounterNotes,
		CounterRound:       row.CounterRound,
		PlacedAt:           row.PlacedAt,
		LastActionAt:       row.LastActionAt,
	}
}

func toOrderPricing(result queries.GetOrderPricingQueryResponse) OrderPricing {
	recipients := make([]RecipientPricing, 0, len(result.Recipients))
	for _, row := range result.Recipients {
		recipients = append(recipients, RecipientPricing{
			RecipientID: row.RecipientID.Bytes(),
			Confirmed:   row.Confirmed,
			BaseCents:   row.Base.Cents(),
			AddOnsCents: row.AddOns.Cents(),
			TotalCents:  row.Total.Cents(),
		})
	}

	return OrderPricing{
		OrderID:              result.OrderID.Bytes(),
		Recipients:           recipients,
		SurchargeCents:       result.Surcharge.Cents(),
		ConfirmedTotalCents:  result.ConfirmedTotal.Cents(),
		PendingSubtotalCents: result.PendingSubtotal.Cents(),
	}
}

// clientOrNewUUID resolves an optional client-supplied identifier, minting
// one when the client left it out.
func clientOrNewUUID(raw *openapi_types.UUID) (kernel.UUID, error) {
	if raw == nil {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromBytes((*raw)[:])
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

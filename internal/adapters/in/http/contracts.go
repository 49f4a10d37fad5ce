package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies of the HTTP surface. Monetary amounts travel
// as integer cents; identifiers as canonical UUID strings. Create requests
// accept a client-supplied id so retries are idempotent; when omitted the
// server generates one and echoes it back.

// Error is the uniform error body. Code is a stable machine-readable token,
// Message is for humans.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse echoes the identifier of a newly created resource.
type CreatedResponse struct {
	ID openapi_types.UUID `json:"id"`
}

// DocumentPayload carries the served document's metadata.
type DocumentPayload struct {
	Title      string `json:"title"`
	CaseNumber string `json:"caseNumber"`
}

// RecipientDraftPayload is one delivery destination of a new order.
type RecipientDraftPayload struct {
	ID                 *openapi_types.UUID `json:"id,omitempty"`
	Name               string              `json:"name"`
	Street             string              `json:"street"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Zip                string              `json:"zip"`
	Mode               string              `json:"mode"`
	ProcessService     bool                `json:"processService"`
	CertifiedMail      bool                `json:"certifiedMail"`
	RushService        bool                `json:"rushService"`
	RemoteLocation     bool                `json:"remoteLocation"`
	MaxAttempts        int                 `json:"maxAttempts"`
	DesignatedServerID *openapi_types.UUID `json:"designatedServerId,omitempty"`
}

// CreateOrderRequest creates an order with its full recipient set.
type CreateOrderRequest struct {
	ID         *openapi_types.UUID     `json:"id,omitempty"`
	CustomerID openapi_types.UUID      `json:"customerId"`
	TenantID   openapi_types.UUID      `json:"tenantId"`
	Deadline   time.Time               `json:"deadline"`
	Document   DocumentPayload         `json:"document"`
	Recipients []RecipientDraftPayload `json:"recipients"`
}

// CancelOrderRequest cancels an order while it is still editable.
type CancelOrderRequest struct {
	Reason      string             `json:"reason"`
	Notes       string             `json:"notes,omitempty"`
	CancelledBy openapi_types.UUID `json:"cancelledBy"`
}

// PlaceBidRequest proposes a price for serving one recipient.
type PlaceBidRequest struct {
	ID          *openapi_types.UUID `json:"id,omitempty"`
	ServerID    openapi_types.UUID  `json:"serverId"`
	AmountCents int64               `json:"amountCents"`
	Comment     string              `json:"comment,omitempty"`
}

// CounterOfferRequest records a counter-offer on a pending bid. By is the
// countering party: CUSTOMER or PROCESS_SERVER.
type CounterOfferRequest struct {
	By          string `json:"by"`
	AmountCents int64  `json:"amountCents"`
	Notes       string `json:"notes,omitempty"`
}

// AcceptCounterRequest accepts the standing counter-offer. By is the
// accepting party and must differ from the last countering party.
type AcceptCounterRequest struct {
	By string `json:"by"`
}

// GeolocationPayload is an optional lat/lon fix on a delivery attempt.
type GeolocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RecordAttemptRequest records one physical service attempt.
type RecordAttemptRequest struct {
	ID            *openapi_types.UUID `json:"id,omitempty"`
	ServerID      openapi_types.UUID  `json:"serverId"`
	WasSuccessful bool                `json:"wasSuccessful"`
	Notes         string              `json:"notes,omitempty"`
	Geolocation   *GeolocationPayload `json:"geolocation,omitempty"`
}

// RegisterProcessServerRequest registers a process server profile.
type RegisterProcessServerRequest struct {
	ID              *openapi_types.UUID `json:"id,omitempty"`
	Name            string              `json:"name"`
	Email           openapi_types.Email `json:"email"`
	Zips            []string            `json:"zips,omitempty"`
	GloballyVisible bool                `json:"globallyVisible"`
}

// AddContactRequest adds a registered server to a customer's contact list.
type AddContactRequest struct {
	ID       *openapi_types.UUID `json:"id,omitempty"`
	ServerID openapi_types.UUID  `json:"serverId"`
	Nickname string              `json:"nickname,omitempty"`
}

// InviteProcessServerRequest invites an unregistered server by email.
type InviteProcessServerRequest struct {
	ID       *openapi_types.UUID `json:"id,omitempty"`
	Email    openapi_types.Email `json:"email"`
	Nickname string              `json:"nickname,omitempty"`
}

// Order is the detail view of one order.
type Order struct {
	ID           openapi_types.UUID `json:"id"`
	CustomerID   openapi_types.UUID `json:"customerId"`
	TenantID     openapi_types.UUID `json:"tenantId"`
	Deadline     time.Time          `json:"deadline"`
	Document     DocumentPayload    `json:"document"`
	Status       string             `json:"status"`
	Cancelled    bool               `json:"cancelled"`
	CancelReason string             `json:"cancelReason,omitempty"`
	CancelNotes  string             `json:"cancelNotes,omitempty"`
	Recipients   []Recipient        `json:"recipients"`
}

// Recipient is the detail view of one recipient row.
type Recipient struct {
	ID               openapi_types.UUID  `json:"id"`
	Sequence         int                 `json:"sequence"`
	Name             string              `json:"name"`
	Street           string              `json:"street"`
	City             string              `json:"city"`
	State            string              `json:"state"`
	Zip              string              `json:"zip"`
	Mode             string              `json:"mode"`
	Status           string              `json:"status"`
	MaxAttempts      int                 `json:"maxAttempts"`
	AttemptCount     int                 `json:"attemptCount"`
	AssignedServerID *openapi_types.UUID `json:"assignedServerId,omitempty"`
	AgreedPriceCents *int64              `json:"agreedPriceCents,omitempty"`
}

// OrderSummary is one row of a customer's order listing.
type OrderSummary struct {
	ID             openapi_types.UUID `json:"id"`
	Deadline       time.Time          `json:"deadline"`
	DocumentTitle  string             `json:"documentTitle"`
	Status         string             `json:"status"`
	RecipientCount int                `json:"recipientCount"`
	Cancelled      bool               `json:"cancelled"`
}

// Bid is one bid row with its negotiation state.
type Bid struct {
	ID                 openapi_types.UUID `json:"id"`
	RecipientID        openapi_types.UUID `json:"recipientId"`
	ServerID           openapi_types.UUID `json:"serverId"`
	AmountCents        int64              `json:"amountCents"`
	CurrentAmountCents int64              `json:"currentAmountCents"`
	Comment            string             `json:"comment,omitempty"`
	Status             string             `json:"status"`
	CounterBy          string             `json:"counterBy,omitempty"`
	CounterAmountCents *int64             `json:"counterAmountCents,omitempty"`
	CounterNotes       string             `json:"counterNotes,omitempty"`
	CounterRound       int                `json:"counterRound"`
	PlacedAt           time.Time          `json:"placedAt"`
	LastActionAt       time.Time          `json:"lastActionAt"`
}

// Editability reports whether an order's structure may still be changed.
type Editability struct {
	CanEdit    bool   `json:"canEdit"`
	LockReason string `json:"lockReason,omitempty"`
}

// RecipientPricing is the price breakdown of one recipient.
type RecipientPricing struct {
	RecipientID openapi_types.UUID `json:"recipientId"`
	Confirmed   bool               `json:"confirmed"`
	BaseCents   int64              `json:"baseCents"`
	AddOnsCents int64              `json:"addOnsCents"`
	TotalCents  int64              `json:"totalCents"`
}

// OrderPricing is the order-level price breakdown.
type OrderPricing struct {
	OrderID              openapi_types.UUID `json:"orderId"`
	Recipients           []RecipientPricing `json:"recipients"`
	SurchargeCents       int64              `json:"surchargeCents"`
	ConfirmedTotalCents  int64              `json:"confirmedTotalCents"`
	PendingSubtotalCents int64              `json:"pendingSubtotalCents"`
}

// Contact is one contact list entry.
type Contact struct {
	ID       openapi_types.UUID  `json:"id"`
	ServerID *openapi_types.UUID `json:"serverId,omitempty"`
	Email    openapi_types.Email `json:"email"`
	Nickname string              `json:"nickname,omitempty"`
	Status   string              `json:"status"`
	AddedAt  time.Time           `json:"addedAt"`
}

// ProcessServer is the profile detail view.
type ProcessServer struct {
	ID              openapi_types.UUID  `json:"id"`
	Name            string              `json:"name"`
	Email           openapi_types.Email `json:"email"`
	Rating          float64             `json:"rating"`
	TotalJobs       int                 `json:"totalJobs"`
	CompletedJobs   int                 `json:"completedJobs"`
	Zips            []string            `json:"zips,omitempty"`
	GloballyVisible bool                `json:"globallyVisible"`
}

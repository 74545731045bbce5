package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	AmountCents   int64  `json:"amount_cents"`
	Payment       string `json:"payment"`
}

// RegisterDriverRequest is the body of POST /api/drivers.
type RegisterDriverRequest struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
}

// AssignDriverRequest is the body of POST /api/orders/:id/assign.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// AdvanceOrderRequest is the body of POST /api/orders/:id/advance. The
// expected status is the caller's view of the order; a mismatch means the
// order moved concurrently and the request is refused.
type AdvanceOrderRequest struct {
	ExpectedStatus string `json:"expected_status"`
}

// ChangeDriverStatusRequest is the body of POST /api/drivers/:id/status.
type ChangeDriverStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLocationRequest is the body of POST /api/drivers/:id/location.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RecordCollectionRequest is the body of POST /api/cash.
type RecordCollectionRequest struct {
	DriverID string   `json:"driver_id"`
	OrderIDs []string `json:"order_ids"`
	Notes    string   `json:"notes,omitempty"`
}

// ApproveCollectionRequest is the body of POST /api/cash/:id/approve.
type ApproveCollectionRequest struct {
	ApprovedBy string `json:"approved_by"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID             string    `json:"id"`
	OrderNumber    string    `json:"order_number"`
	TrackingNumber string    `json:"tracking_number"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	Address        string    `json:"address"`
	AmountCents    int64     `json:"amount_cents"`
	Payment        string    `json:"payment"`
	Status         string    `json:"status"`
	DriverID       *string   `json:"driver_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toOrder(response queries.OrderResponse) Order {
	var driverID *string
	if response.DriverID != nil {
		id := response.DriverID.String()
		driverID = &id
	}

	return Order{
		ID:             response.ID.String(),
		OrderNumber:    response.OrderNumber,
		TrackingNumber: response.TrackingNumber,
		CustomerName:   response.CustomerName,
		CustomerPhone:  response.CustomerPhone,
		Address:        response.Address,
		AmountCents:    response.Amount.Cents(),
		Payment:        response.Payment.String(),
		Status:         response.Status.String(),
		DriverID:       driverID,
		CreatedAt:      response.CreatedAt,
		UpdatedAt:      response.UpdatedAt,
	}
}

// Driver is the JSON representation of a driver.
type Driver struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Vehicle          string    `json:"vehicle"`
	Status           string    `json:"status"`
	Location         *Location `json:"location,omitempty"`
	TotalDeliveries  int       `json:"total_deliveries"`
	CompletedToday   int       `json:"completed_today"`
	PendingCashCents int64     `json:"pending_cash_cents"`
}

// Location is a coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toDriver(response queries.DriverResponse) Driver {
	var location *Location
	if response.Location != nil {
		location = &Location{
			Latitude:  response.Location.Latitude(),
			Longitude: response.Location.Longitude(),
		}
	}

	return Driver{
		ID:               response.ID.String(),
		Name:             response.Name,
		Vehicle:          response.Vehicle,
		Status:           response.Status.String(),
		Location:         location,
		TotalDeliveries:  response.TotalDeliveries,
		CompletedToday:   response.CompletedToday,
		PendingCashCents: response.PendingCash.Cents(),
	}
}

// Collection is the JSON representation of a cash collection.
type Collection struct {
	ID          string     `json:"id"`
	DriverID    string     `json:"driver_id"`
	OrderIDs    []string   `json:"order_ids"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ApprovedBy  *string    `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
}

func toCollection(response queries.CollectionResponse) Collection {
	orderIDs := make([]string, 0, len(response.OrderIDs))
	for _, orderID := range response.OrderIDs {
		orderIDs = append(orderIDs, orderID.String())
	}

	return Collection{
		ID:          response.ID.String(),
		DriverID:    response.DriverID.String(),
		OrderIDs:    orderIDs,
		AmountCents: response.Amount.Cents(),
		Status:      response.Status.String(),
		Notes:       response.Notes,
		SubmittedAt: response.SubmittedAt,
		ApprovedBy:  response.ApprovedBy,
		ApprovedAt:  response.ApprovedAt,
	}
}

// PendingCash is the JSON representation of a driver's recomputed balance.
type PendingCash struct {
	DriverID         string `json:"driver_id"`
	PendingCashCents int64  `json:"pending_cash_cents"`
}

// DashboardStats is the JSON representation of operational statistics.
type DashboardStats struct {
	TotalOrders           int            `json:"total_orders"`
	OrdersByStatus        map[string]int `json:"orders_by_status"`
	ActiveDrivers         int            `json:"active_drivers"`
	DeliveredToday        int            `json:"delivered_today"`
	PendingCollections    int            `json:"pending_collections"`
	TotalPendingCashCents int64          `json:"total_pending_cash_cents"`
}

// LiveLocation is the JSON representation of a driver's live position.
type LiveLocation struct {
	DriverID   string    `json:"driver_id"`
	Location   Location  `json:"location"`
	ReportedAt time.Time `json:"reported_at"`
}

func toLiveLocation(response queries.LiveLocationResponse) LiveLocation {
	return LiveLocation{
		DriverID: response.DriverID.String(),
		Location: Location{
			Latitude:  response.Location.Latitude(),
			Longitude: response.Location.Longitude(),
		},
		ReportedAt: response.ReportedAt,
	}
}

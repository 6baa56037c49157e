// Package handler contains the HTTP handlers for the marketplace API.
package handler

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// userView is the outward shape of an account. The password never leaves the
// server, no matter how it is stored.
type userView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserView(u *entity.User) *userView {
	return &userView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type resourceView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toResourceView(r *entity.Resource) *resourceView {
	return &resourceView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    string(r.Category),
		CreatedAt:   r.CreatedAt,
	}
}

func toResourceViews(resources []*entity.Resource) []*resourceView {
	views := make([]*resourceView, 0, len(resources))
	for _, r := range resources {
		views = append(views, toResourceView(r))
	}

	return views
}

type orderItemView struct {
	ResourceID uuid.UUID       `json:"resourceId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
}

type orderView struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendorId"`
	VendorName  string          `json:"vendorName"`
	Items       []orderItemView `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	ActedBy     string          `json:"actedBy,omitempty"`
	ActedAt     *time.Time      `json:"actedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toOrderView(o *entity.Order) *orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemView{
			ResourceID: item.ResourceID,
			Name:       item.Name,
			Price:      item.Price,
		})
	}

	view := &orderView{
		ID:          o.ID,
		VendorID:    o.VendorID,
		VendorName:  o.VendorName,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      o.Status.String(),
		ActedBy:     o.ActedBy,
		CreatedAt:   o.CreatedAt,
	}
	if !o.ActedAt.IsZero() {
		actedAt := o.ActedAt
		view.ActedAt = &actedAt
	}

	return view
}

func toOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return views
}

type paymentView struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"orderId"`
	VendorName   string          `json:"vendorName"`
	SupplierName string          `json:"supplierName"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toPaymentView(p *entity.Payment) *paymentView {
	return &paymentView{
		ID:           p.ID,
		OrderID:      p.OrderID,
		VendorName:   p.VendorName,
		SupplierName: p.SupplierName,
		Amount:       p.Amount,
		Status:       p.Status.String(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPaymentViews(payments []*entity.Payment) []*paymentView {
	views := make([]*paymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, toPaymentView(p))
	}

	return views
}

type complaintView struct {
	ID         uuid.UUID  `json:"id"`
	PartyID    uuid.UUID  `json:"partyId"`
	PartyName  string     `json:"partyName"`
	Category   string     `json:"category"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

func toComplaintView(c *entity.Complaint) *complaintView {
	view := &complaintView{
		ID:        c.ID,
		PartyID:   c.PartyID,
		PartyName: c.PartyName,
		Category:  c.Category,
		Message:   c.Message,
		Status:    c.Status.String(),
		CreatedAt: c.CreatedAt,
	}
	if !c.ResolvedAt.IsZero() {
		resolvedAt := c.ResolvedAt
		view.ResolvedAt = &resolvedAt
	}

	return view
}

func toComplaintViews(complaints []*entity.Complaint) []*complaintView {
	views := make([]*complaintView, 0, len(complaints))
	for _, c := range complaints {
		views = append(views, toComplaintView(c))
	}

	return views
}

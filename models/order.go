// models/order.go
package models

import "time"

// Order status names exactly as the backend spells them.
const (
	OrderOpen       = "Open"
	OrderInProgress = "In Progress"
	OrderComplete   = "Complete"
	OrderCancel     = "Cancel"
)

// AnonymousUser is a buyer who checked out without an account.
type AnonymousUser struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// OrderItem is one purchased subscription line.
type OrderItem struct {
	Product    Product   `json:"product"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	ExpiryDate time.Time `json:"expiryDate"`
}

// Order model. Exactly one of Buyer/AnonymousBuyer is set.
type Order struct {
	ID               string         `json:"id"`
	Buyer            *User          `json:"buyer,omitempty"`
	AnonymousBuyer   *AnonymousUser `json:"anonymousBuyer,omitempty"`
	Collaborator     *Collaborator  `json:"collaborator,omitempty"`
	StatusName       string         `json:"statusName"`
	Items            []OrderItem    `json:"items"`
	TotalAmount      float64        `json:"totalAmount"`
	OrderDate        time.Time      `json:"orderDate"`
	StartDate        time.Time      `json:"startDate"`
	EndDate          time.Time      `json:"endDate"`
	ReferralCodeUsed string         `json:"referralCodeUsed,omitempty"`
}

// BuyerName resolves the display name regardless of buyer kind.
func (o Order) BuyerName() string {
	if o.Buyer != nil {
		return o.Buyer.Username
	}
	if o.AnonymousBuyer != nil {
		return o.AnonymousBuyer.Name
	}
	return ""
}

// CanProcess reports whether the "process" action is available: only an Open
// order can be taken by a collaborator.
func (o Order) CanProcess() bool { return o.StatusName == OrderOpen }

// CanComplete reports whether the "complete" action is available.
func (o Order) CanComplete() bool { return o.StatusName == OrderInProgress }

// CanCancel reports whether the order can still be cancelled. Cancel is a
// terminal alternative reachable from both non-terminal states.
func (o Order) CanCancel() bool {
	return o.StatusName == OrderOpen || o.StatusName == OrderInProgress
}

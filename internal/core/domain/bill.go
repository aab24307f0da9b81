package domain

import "time"

type BillStatus string

const (
	BillPending   BillStatus = "pending"
	BillPaid      BillStatus = "paid"
	BillOverdue   BillStatus = "overdue"
	BillCancelled BillStatus = "cancelled"
)

type BillType string

const (
	BillManagementFee BillType = "management_fee"
	BillUtility       BillType = "utility"
	BillParking       BillType = "parking"
	BillService       BillType = "service"
	BillOther         BillType = "other"
)

// Bill is a charge raised against an apartment. Amounts are kept in minor
// units (cents) to avoid float drift in the collection figures.
type Bill struct {
	ID              string     `json:"id"`
	BillNumber      string     `json:"bill_number"`
	ApartmentNumber string     `json:"apartment_number"`
	Building        string     `json:"building,omitempty"`
	Type            BillType   `json:"bill_type"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	AmountCents     int64      `json:"amount_cents"`
	DueDate         time.Time  `json:"due_date"`
	Status          BillStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

// Outstanding reports whether the bill still expects payment.
func (b Bill) Outstanding() bool {
	return b.Status == BillPending || b.Status == BillOverdue
}

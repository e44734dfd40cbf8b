package finance

type BillingStatus string

const (
	BillingPending   BillingStatus = "pending"
	BillingPaid      BillingStatus = "paid"
	BillingPartial   BillingStatus = "partial"
	BillingCancelled BillingStatus = "cancelled"
)

type BillingRecord struct {
	ID                  string        `json:"id"`
	PatientID           string        `json:"patientId"`
	Amount              float64       `json:"amount"`
	Currency            string        `json:"currency"`
	Status              BillingStatus `json:"status"`
	InsuranceProviderID *string       `json:"insuranceProviderId"`
	InvoiceNumber       *string       `json:"invoiceNumber"`
	CreatedAt           string        `json:"createdAt"`
	Description         *string       `json:"description"`
}

type InsuranceProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type Payment struct {
	ID        string  `json:"id"`
	BillingID string  `json:"billingId"`
	Amount    float64 `json:"amount"`
	Method    *string `json:"method"`
	Reference *string `json:"reference"`
	PaidAt    string  `json:"paidAt"`
}

package models

import "time"

// PaymentDetail is one element of a payment_details JSONB array. Amounts are
// stored as fixed two decimal strings under the keys the dashboard has always
// used.
type PaymentDetail struct {
	SedeIT        string    `json:"sede_it,omitempty"`
	SedePE        string    `json:"sede_pe,omitempty"`
	MetodoIT      string    `json:"metodo_it,omitempty"`
	MetodoPE      string    `json:"metodo_pe,omitempty"`
	Cantidad      string    `json:"cantidad"`
	Moneda        string    `json:"moneda"`
	MontoOriginal string    `json:"monto_original"`
	TipoCambio    string    `json:"tipo_cambio"`
	Total         string    `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	ProofPath     string    `json:"proof_path,omitempty"`
}

// ExpenseDetail is one element of an expense_details JSONB array.
type ExpenseDetail struct {
	PaymentDetail
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Document is one element of a documents JSONB array.
type Document struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Storage     string    `json:"storage"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

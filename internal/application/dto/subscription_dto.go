package dto

// SubscriptionStatusResponse situação do plano para GET /api/subscriptions/status.
// DaysLeft é nil para planos pagos.
type SubscriptionStatusResponse struct {
	ActivePlan    string `json:"active_plan"`
	DisplayStatus string `json:"display_status"`
	IsExpired     bool   `json:"is_expired"`
	DaysLeft      *int   `json:"days_left"`
}

// CheckoutRequest body para POST /api/subscriptions/checkout.
type CheckoutRequest struct {
	Provider string `json:"provider"` // stripe, mercadopago, pagbank
	Plan     string `json:"plan"`     // Mensal, Anual
}

// CheckoutResponse handle de checkout devolvido ao cliente.
// Exatamente um dos dois campos é preenchido: RedirectURL (Mercado Pago,
// PagBank) ou ClientSecret (Stripe payment element).
type CheckoutResponse struct {
	Provider     string `json:"provider"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

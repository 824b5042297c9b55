package entity

import "time"

// WebhookEvent registra uma notificação de pagamento já processada.
// A chave (Provider, EventID) é única e permite descartar entregas
// repetidas do mesmo evento.
type WebhookEvent struct {
	ID          string
	Provider    string // stripe, mercadopago, pagbank
	EventID     string // id do evento atribuído pelo provedor
	EventType   string
	ProcessedAt time.Time
}

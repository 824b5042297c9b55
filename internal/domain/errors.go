package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound               = errors.New("recurso não encontrado")
	ErrUserNotFound           = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists     = errors.New("o email já está cadastrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("não autorizado")
	ErrForbidden              = errors.New("acesso negado")
	ErrPlanExpired            = errors.New("período de teste expirado")
	ErrProviderNotConfigured  = errors.New("provedor de pagamento não configurado")
	ErrInvalidSignature       = errors.New("assinatura do webhook inválida")
	ErrMissingCheckoutURL     = errors.New("resposta do provedor sem URL de checkout")
	ErrReconcilerNotSupported = errors.New("reconciliação não implementada para este provedor")
)

// UpstreamError representa uma falha de um provedor de pagamento externo
// (resposta não-2xx ou erro de transporte). Carrega o status e a mensagem
// originais para o log e para a resposta ao cliente.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: erro do provedor (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/logger"
)

// ReconcileUseCase aplica o desfecho assíncrono de um pagamento ao plano
// persistido do perfil. Ciclo por invocação:
//
//	Recebido → Verificado → Usuário resolvido → Plano calculado → Persistido
//
// com saídas antecipadas: assinatura inválida (rejeita, o provedor reenvia),
// evento irrelevante ou usuário não resolvível (ignora com ack 200) e evento
// repetido (deduplicado pelo registro em webhook_events).
type ReconcileUseCase struct {
	providers   map[string]PaymentProvider
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	eventRepo   repository.WebhookEventRepository
	log         *logger.Logger
}

// NewReconcileUseCase constrói o caso de uso.
func NewReconcileUseCase(
	providers []PaymentProvider,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	eventRepo repository.WebhookEventRepository,
	log *logger.Logger,
) *ReconcileUseCase {
	m := make(map[string]PaymentProvider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &ReconcileUseCase{providers: m, profileRepo: profileRepo, userRepo: userRepo, eventRepo: eventRepo, log: log}
}

// Handle processa uma notificação de webhook do provedor nomeado.
//
// Retornos e mapeamento HTTP no handler:
//   - nil                          → 200 (persistido ou ignorado de propósito)
//   - domain.ErrInvalidSignature   → 400/401, o provedor reenvia
//   - domain.ErrReconcilerNotSupported → 501
//   - outro erro (escrita na DB)   → 500, o provedor reenvia
func (uc *ReconcileUseCase) Handle(ctx context.Context, providerName string, ev RawEvent) error {
	provider, ok := uc.providers[providerName]
	if !ok {
		return domain.ErrNotFound
	}

	upd, err := provider.Reconcile(ctx, ev)
	if err != nil {
		return err
	}
	if upd == nil {
		uc.log.Debug().Str("provider", providerName).Msg("webhook ignorado: evento não relevante")
		return nil
	}

	// Deduplicação de entregas repetidas do mesmo evento.
	if upd.EventID != "" {
		seen, err := uc.eventRepo.Exists(providerName, upd.EventID)
		if err != nil {
			return fmt.Errorf("reconcile: consultar eventos processados: %w", err)
		}
		if seen {
			uc.log.Info().Str("provider", providerName).Str("event_id", upd.EventID).
				Msg("webhook repetido, já processado")
			return nil
		}
	}

	userID := upd.UserID
	if userID == "" && upd.Email != "" {
		// Fallback do Stripe: evento sem client_reference_id, resolve pelo
		// email do pagador.
		user, err := uc.userRepo.FindByEmail(upd.Email)
		if err != nil {
			return fmt.Errorf("reconcile: buscar usuário por email: %w", err)
		}
		if user != nil {
			userID = user.ID
		}
	}
	if userID == "" {
		// Sem como correlacionar a um perfil: reconhece sem gravar para o
		// provedor não reenviar eternamente.
		uc.log.Warn().Str("provider", providerName).Str("event_id", upd.EventID).
			Msg("webhook sem referência de usuário resolvível, ignorado")
		return nil
	}

	if upd.Persist {
		if err := uc.profileRepo.UpdateActivePlan(userID, upd.Plan); err != nil {
			return fmt.Errorf("reconcile: atualizar plano: %w", err)
		}
		uc.log.Info().Str("provider", providerName).Str("user_id", userID).
			Str("plan", string(upd.Plan)).Msg("plano atualizado via webhook")
	}

	if upd.EventID != "" {
		// Melhor esforço: se o registro falhar depois da escrita do plano,
		// uma reentrega apenas regrava o mesmo valor.
		if err := uc.eventRepo.Record(&entity.WebhookEvent{
			ID:          uuid.New().String(),
			Provider:    providerName,
			EventID:     upd.EventID,
			EventType:   upd.EventType,
			ProcessedAt: time.Now(),
		}); err != nil {
			uc.log.Warn().Err(err).Str("provider", providerName).Str("event_id", upd.EventID).
				Msg("falha ao registrar evento processado")
		}
	}
	return nil
}

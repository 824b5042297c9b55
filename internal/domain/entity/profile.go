package entity

import "time"

// Plan é o plano de assinatura da igreja (tenant).
type Plan string

// Planos válidos. O valor persistido em profiles.active_plan deve ser sempre
// um destes três; qualquer outro valor é tratado como Experimental na leitura.
const (
	PlanExperimental Plan = "Experimental"
	PlanMensal       Plan = "Mensal"
	PlanAnual        Plan = "Anual"
)

// ParsePlan converte o valor persistido em um Plan conhecido.
// Valores desconhecidos ou legados caem deliberadamente no Experimental,
// que segue a política de período de teste.
func ParsePlan(s string) Plan {
	switch Plan(s) {
	case PlanMensal:
		return PlanMensal
	case PlanAnual:
		return PlanAnual
	default:
		return PlanExperimental
	}
}

// Paid indica se o plano é pago (sem janela de teste).
func (p Plan) Paid() bool {
	return p == PlanMensal || p == PlanAnual
}

// Profile representa a conta da igreja (um por usuário dono/tenant).
// CreatedAt é imutável e serve de âncora para o período de teste.
// ActivePlan só é escrito pelo cadastro (Experimental) e pelos
// reconciliadores de webhook após confirmação de pagamento.
type Profile struct {
	ID         string // mesmo id do usuário de auth
	ChurchName string
	ActivePlan Plan
	Theme      string // preferência de exibição (light, dark)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

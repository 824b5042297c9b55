package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

func TestParsePlan(t *testing.T) {
	cases := []struct {
		in   string
		want entity.Plan
	}{
		{"Mensal", entity.PlanMensal},
		{"Anual", entity.PlanAnual},
		{"Experimental", entity.PlanExperimental},
		{"", entity.PlanExperimental},
		{"mensal", entity.PlanExperimental}, // case sensitive de propósito
		{"Premium", entity.PlanExperimental},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.ParsePlan(tc.in), "ParsePlan(%q)", tc.in)
	}
}

func TestPlanPaid(t *testing.T) {
	assert.True(t, entity.PlanMensal.Paid())
	assert.True(t, entity.PlanAnual.Paid())
	assert.False(t, entity.PlanExperimental.Paid())
	assert.False(t, entity.Plan("qualquer").Paid())
}

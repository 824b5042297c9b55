package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
)

// fakeEntradaRepo repositório em memória para os testes do caso de uso.
type fakeEntradaRepo struct {
	byID map[string]*entity.Entrada
}

func newFakeEntradaRepo() *fakeEntradaRepo {
	return &fakeEntradaRepo{byID: map[string]*entity.Entrada{}}
}

func (r *fakeEntradaRepo) Create(e *entity.Entrada) error { r.byID[e.ID] = e; return nil }

func (r *fakeEntradaRepo) GetByID(id string) (*entity.Entrada, error) { return r.byID[id], nil }

func (r *fakeEntradaRepo) ListByUser(userID string, limit, offset int) ([]*entity.Entrada, error) {
	var out []*entity.Entrada
	for _, e := range r.byID {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntradaRepo) ListByPeriod(userID string, from, to time.Time) ([]*entity.Entrada, error) {
	return nil, nil
}

func (r *fakeEntradaRepo) SumByPeriod(userID string, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeEntradaRepo) Update(e *entity.Entrada) error { r.byID[e.ID] = e; return nil }
func (r *fakeEntradaRepo) Delete(id string) error         { delete(r.byID, id); return nil }

func validDizimo() dto.SaveEntradaRequest {
	return dto.SaveEntradaRequest{
		Tipo:       entity.EntradaTipoDizimo,
		MemberName: "Irmã Maria",
		Valor:      decimal.RequireFromString("150.00"),
		Date:       "2026-08-02",
	}
}

// ─── Create ───

func TestEntrada_Create_Dizimo(t *testing.T) {
	uc := usecase.NewEntradaUseCase(newFakeEntradaRepo())

	out, err := uc.Create("user-42", validDizimo())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "dizimo", out.Tipo)
	assert.Equal(t, "Irmã Maria", out.MemberName)
	assert.True(t, out.Valor.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, 2026, out.Date.Year())
}

// Ofertas podem ser anônimas; dízimo sem membro é inválido.
func TestEntrada_Create_Validacao(t *testing.T) {
	uc := usecase.NewEntradaUseCase(newFakeEntradaRepo())

	// Oferta anônima passa.
	oferta := dto.SaveEntradaRequest{
		Tipo:  entity.EntradaTipoOferta,
		Valor: decimal.RequireFromString("50.00"),
		Date:  "2026-08-02",
	}
	_, err := uc.Create("user-42", oferta)
	require.NoError(t, err)

	// Dízimo sem nome do membro.
	in := validDizimo()
	in.MemberName = ""
	_, err = uc.Create("user-42", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Valor zero ou negativo.
	in = validDizimo()
	in.Valor = decimal.Zero
	_, err = uc.Create("user-42", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validDizimo()
	in.Valor = decimal.RequireFromString("-10")
	_, err = uc.Create("user-42", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Tipo desconhecido.
	in = validDizimo()
	in.Tipo = "doacao"
	_, err = uc.Create("user-42", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Data malformada.
	in = validDizimo()
	in.Date = "02/08/2026"
	_, err = uc.Create("user-42", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Update / Delete: isolamento entre tenants ───

func TestEntrada_Update_OutroTenant(t *testing.T) {
	repo := newFakeEntradaRepo()
	uc := usecase.NewEntradaUseCase(repo)

	created, err := uc.Create("user-42", validDizimo())
	require.NoError(t, err)

	_, err = uc.Update("intruso", created.ID, validDizimo())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete("intruso", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// O dono consegue.
	in := validDizimo()
	in.Valor = decimal.RequireFromString("200.00")
	out, err := uc.Update("user-42", created.ID, in)
	require.NoError(t, err)
	assert.True(t, out.Valor.Equal(decimal.RequireFromString("200.00")))

	require.NoError(t, uc.Delete("user-42", created.ID))
	assert.Empty(t, repo.byID)
}

func TestEntrada_Update_Inexistente(t *testing.T) {
	uc := usecase.NewEntradaUseCase(newFakeEntradaRepo())

	_, err := uc.Update("user-42", "nao-existe", validDizimo())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

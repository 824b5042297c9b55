package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/auth"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
	pkgjwt "github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/jwt"
)

// ─── Dublês ───

type memUserRepo struct {
	users map[string]*entity.User // por email
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.users[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

type memProfileRepo struct {
	profiles map[string]*entity.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]*entity.Profile{}}
}

func (r *memProfileRepo) Create(p *entity.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *memProfileRepo) GetByID(id string) (*entity.Profile, error) { return r.profiles[id], nil }
func (r *memProfileRepo) UpdateSettings(_, _, _ string) error        { return nil }
func (r *memProfileRepo) UpdateActivePlan(string, entity.Plan) error { return nil }

// memTxRunner executa o callback direto sobre os repositórios em memória,
// opcionalmente injetando uma falha para simular rollback.
type memTxRunner struct {
	users    *memUserRepo
	profiles *memProfileRepo
	failWith error
}

func (tx *memTxRunner) Run(_ context.Context, fn func(repository.UserRepository, repository.ProfileRepository) error) error {
	if tx.failWith != nil {
		return tx.failWith
	}
	return fn(tx.users, tx.profiles)
}

func newAuthFixture() (*auth.AuthUseCase, *memUserRepo, *memProfileRepo, *memTxRunner) {
	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	tx := &memTxRunner{users: users, profiles: profiles}
	uc := auth.NewAuthUseCase(users, tx, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "churchonfirebase-test",
	})
	return uc, users, profiles, tx
}

// ─── Register ───

// Cadastro cria usuário e perfil juntos: senha com bcrypt, plano
// Experimental e created_at como âncora do período de teste.
func TestRegister_CriaUsuarioEPerfil(t *testing.T) {
	uc, users, profiles, _ := newAuthFixture()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "pastor@igreja.com",
		Password:   "senha-forte-123",
		Name:       "Pastor João",
		ChurchName: "Igreja Batista Central",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	assert.Equal(t, "pastor@igreja.com", out.Email)
	assert.Equal(t, "Pastor João", out.Name)

	user := users.users["pastor@igreja.com"]
	require.NotNil(t, user)
	assert.NotEqual(t, "senha-forte-123", user.PasswordHash, "a senha nunca é persistida em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte-123")))

	profile := profiles.profiles[out.ID]
	require.NotNil(t, profile, "o perfil compartilha o id do usuário")
	assert.Equal(t, "Igreja Batista Central", profile.ChurchName)
	assert.Equal(t, entity.PlanExperimental, profile.ActivePlan)
	assert.Equal(t, "light", profile.Theme)
	assert.False(t, profile.CreatedAt.IsZero())
}

// Sem nome informado o email vira o nome de exibição.
func TestRegister_NomeCaiNoEmail(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "pastor@igreja.com",
		Password:   "senha-forte-123",
		ChurchName: "Igreja Batista Central",
	})
	require.NoError(t, err)
	assert.Equal(t, "pastor@igreja.com", out.Name)
}

func TestRegister_CamposObrigatorios(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	cases := []dto.RegisterRequest{
		{Password: "senha-forte-123", ChurchName: "Igreja"},
		{Email: "pastor@igreja.com", ChurchName: "Igreja"},
		{Email: "pastor@igreja.com", Password: "senha-forte-123"},
	}
	for _, in := range cases {
		_, err := uc.Register(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	in := dto.RegisterRequest{
		Email:      "pastor@igreja.com",
		Password:   "senha-forte-123",
		ChurchName: "Igreja Batista Central",
	}
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Falha na transação não deixa usuário nem perfil para trás.
func TestRegister_FalhaTransacao(t *testing.T) {
	uc, users, profiles, tx := newAuthFixture()
	tx.failWith = errors.New("conexão perdida")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "pastor@igreja.com",
		Password:   "senha-forte-123",
		ChurchName: "Igreja Batista Central",
	})
	require.Error(t, err)
	assert.Empty(t, users.users)
	assert.Empty(t, profiles.profiles)
}

// ─── Login ───

func TestLogin_SucessoGeraTokenValido(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "pastor@igreja.com",
		Password:   "senha-forte-123",
		ChurchName: "Igreja Batista Central",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "pastor@igreja.com", Password: "senha-forte-123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "pastor@igreja.com", out.User.Email)

	userID, email, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "pastor@igreja.com", email)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "pastor@igreja.com",
		Password:   "senha-forte-123",
		ChurchName: "Igreja Batista Central",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "pastor@igreja.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@igreja.com", Password: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

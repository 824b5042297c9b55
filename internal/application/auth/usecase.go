package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/dto"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/entity"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/domain/repository"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner executa um callback com repositórios atados a uma transação.
// Implementado pela infraestrutura PostgreSQL.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticação: cadastro e login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	txRunner TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Register cria o usuário com senha bcrypt e o Profile da igreja junto, no
// plano Experimental, dentro de uma única transação. O created_at do perfil
// é a âncora do período de teste.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.ChurchName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		ID:         user.ID,
		ChurchName: in.ChurchName,
		ActivePlan: entity.PlanExperimental,
		Theme:      "light",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return profileRepo.Create(profile)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/senha, gera o JWT e devolve token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

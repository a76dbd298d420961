package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-admin-api/internal/config"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{SecretKey: "segredo-de-teste"}

	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(userRepo *mocks.MockUserRepository)
		expectErr error
	}{
		{
			name:     "Credenciais válidas - deve retornar token com as claims do usuário",
			email:    "Dono@Loja.com ",
			password: "Senha@Forte1",
			setup: func(userRepo *mocks.MockUserRepository) {
				// Email deve ser normalizado antes da consulta
				userRepo.EXPECT().GetUserByEmail("dono@loja.com").Return(&domain.User{
					ID:           42,
					Name:         "Dono",
					Email:        "dono@loja.com",
					Active:       true,
					RoleID:       domain.RoleMerchant,
					PasswordHash: hashPassword(t, "Senha@Forte1"),
				}, nil)
			},
		},
		{
			name:     "Usuário inexistente - deve retornar erro de não encontrado",
			email:    "ninguem@loja.com",
			password: "Senha@Forte1",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@loja.com").Return(nil, nil)
			},
			expectErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada - deve recusar o login",
			email:    "dono@loja.com",
			password: "Senha@Forte1",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("dono@loja.com").Return(&domain.User{
					ID:           42,
					Active:       false,
					PasswordHash: hashPassword(t, "Senha@Forte1"),
				}, nil)
			},
			expectErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta - deve recusar o login",
			email:    "dono@loja.com",
			password: "senha-errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("dono@loja.com").Return(&domain.User{
					ID:           42,
					Active:       true,
					PasswordHash: hashPassword(t, "Senha@Forte1"),
				}, nil)
			},
			expectErr: ErrInvalidCredentials,
		},
		{
			name:      "Email vazio - deve recusar sem consultar o banco",
			email:     "",
			password:  "Senha@Forte1",
			setup:     func(userRepo *mocks.MockUserRepository) {},
			expectErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := &Service{userRepo: userRepo, cfg: cfg}

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			// O token emitido deve ser aceito pela própria validação
			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, 42, claims.UserID)
			assert.Equal(t, "dono@loja.com", claims.UserEmail)
			assert.Equal(t, domain.RoleMerchant, claims.UserRoleID)
		})
	}
}

func TestService_ValidateToken_SegredoErrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("dono@loja.com").Return(&domain.User{
		ID:           42,
		Active:       true,
		PasswordHash: hashPassword(t, "Senha@Forte1"),
	}, nil)

	issuer := &Service{userRepo: userRepo, cfg: &config.Config{SecretKey: "segredo-a"}}
	verifier := &Service{userRepo: userRepo, cfg: &config.Config{SecretKey: "segredo-b"}}

	token, err := issuer.LoginUser("dono@loja.com", "Senha@Forte1")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{SecretKey: "segredo-de-teste"}

	t.Run("Novo usuário - deve criar desativado com perfil de lojista", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetUserByEmail("novo@loja.com").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "novo@loja.com", user.Email)
				assert.Equal(t, domain.RoleMerchant, user.RoleID)
				assert.False(t, user.Active)
				// A senha nunca é persistida em texto puro
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Forte1")))
				return user, nil
			})

		service := &Service{userRepo: userRepo, cfg: cfg}

		user, err := service.CreateUser(&domain.User{
			Name:         "Novo",
			Lastname:     "Lojista",
			Email:        "Novo@Loja.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Email já cadastrado - deve recusar", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetUserByEmail("novo@loja.com").Return(&domain.User{ID: 1}, nil)

		service := &Service{userRepo: userRepo, cfg: cfg}

		user, err := service.CreateUser(&domain.User{
			Name:         "Novo",
			Lastname:     "Lojista",
			Email:        "novo@loja.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{SecretKey: "segredo-de-teste"}

	t.Run("Solicitante sem perfil de administrador - deve recusar", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(42).Return(&domain.User{ID: 42, RoleID: domain.RoleMerchant}, nil)

		service := &Service{userRepo: userRepo, cfg: cfg}

		password, err := service.GenerateStrongPassword(42, 7)

		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
		assert.Empty(t, password)
	})

	t.Run("Administrador - deve gerar senha forte e persistir o hash", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)

		target := &domain.User{ID: 7, RoleID: domain.RoleMerchant}

		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
		userRepo.EXPECT().GetUserByID(7).Return(target, nil)
		userRepo.EXPECT().UpdateUser(target).Return(nil)

		service := &Service{userRepo: userRepo, cfg: cfg}

		password, err := service.GenerateStrongPassword(1, 7)

		assert.NoError(t, err)
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(password)))
	})
}

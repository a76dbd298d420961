package store

import (
	"errors"

	"github.com/vfg2006/commerce-admin-api/infrastructure/repository"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

var (
	ErrStoreNotFound = errors.New("loja não encontrada")
	ErrMissingName   = errors.New("o nome da loja é obrigatório")
)

// StoreManager expõe as operações de gestão de lojas do painel
type StoreManager interface {
	CreateStore(userID int, req *domain.CreateStoreRequest) (*domain.Store, error)
	GetStore(storeID string, userID int) (*domain.Store, error)
	ListStores(userID int) ([]*domain.Store, error)
	UpdateStore(storeID string, userID int, req *domain.UpdateStoreRequest) (*domain.Store, error)
	DeleteStore(storeID string, userID int) error
}

type Service struct {
	storeRepo repository.StoreRepository
}

func NewService(storeRepo repository.StoreRepository) StoreManager {
	return &Service{
		storeRepo: storeRepo,
	}
}

func (s *Service) CreateStore(userID int, req *domain.CreateStoreRequest) (*domain.Store, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	store := &domain.Store{
		ID:     id,
		UserID: userID,
		Name:   req.Name,
	}

	return s.storeRepo.CreateStore(store)
}

// GetStore retorna a loja apenas se ela pertencer ao usuário autenticado
func (s *Service) GetStore(storeID string, userID int) (*domain.Store, error) {
	store, err := s.storeRepo.GetStoreByIDAndUser(storeID, userID)
	if err != nil {
		return nil, err
	}

	if store == nil {
		return nil, ErrStoreNotFound
	}

	return store, nil
}

func (s *Service) ListStores(userID int) ([]*domain.Store, error) {
	return s.storeRepo.ListStoresByUser(userID)
}

func (s *Service) UpdateStore(storeID string, userID int, req *domain.UpdateStoreRequest) (*domain.Store, error) {
	if _, err := s.GetStore(storeID, userID); err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name == "" {
		return nil, ErrMissingName
	}

	req.ID = storeID
	if err := s.storeRepo.UpdateStore(req); err != nil {
		return nil, err
	}

	return s.storeRepo.GetStoreByID(storeID)
}

func (s *Service) DeleteStore(storeID string, userID int) error {
	if _, err := s.GetStore(storeID, userID); err != nil {
		return err
	}

	return s.storeRepo.DeleteStore(storeID)
}

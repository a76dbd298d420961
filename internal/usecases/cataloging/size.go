package cataloging

import (
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

func (s *Service) CreateSize(storeID string, userID int, req *domain.UpsertSizeRequest) (*domain.Size, error) {
	if req.Name == "" || req.Value == "" {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	size := &domain.Size{
		ID:      id,
		StoreID: storeID,
		Name:    req.Name,
		Value:   req.Value,
	}

	return s.sizeRepo.CreateSize(size)
}

func (s *Service) GetSize(sizeID string) (*domain.Size, error) {
	size, err := s.sizeRepo.GetSizeByID(sizeID)
	if err != nil {
		return nil, err
	}

	if size == nil {
		return nil, ErrResourceNotFound
	}

	return size, nil
}

func (s *Service) ListSizes(storeID string) ([]*domain.Size, error) {
	return s.sizeRepo.ListSizesByStore(storeID)
}

func (s *Service) UpdateSize(storeID, sizeID string, userID int, req *domain.UpsertSizeRequest) (*domain.Size, error) {
	if req.Name == "" || req.Value == "" {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	size, err := s.sizeRepo.GetSizeByID(sizeID)
	if err != nil {
		return nil, err
	}

	if size == nil || size.StoreID != storeID {
		return nil, ErrResourceNotFound
	}

	size.Name = req.Name
	size.Value = req.Value

	if err := s.sizeRepo.UpdateSize(size); err != nil {
		return nil, err
	}

	return size, nil
}

func (s *Service) DeleteSize(storeID, sizeID string, userID int) error {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return err
	}

	size, err := s.sizeRepo.GetSizeByID(sizeID)
	if err != nil {
		return err
	}

	if size == nil || size.StoreID != storeID {
		return ErrResourceNotFound
	}

	return s.sizeRepo.DeleteSize(sizeID)
}

package cataloging

import (
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

func (s *Service) CreateBillboard(storeID string, userID int, req *domain.UpsertBillboardRequest) (*domain.Billboard, error) {
	if req.Label == "" || req.ImageURL == "" {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	billboard := &domain.Billboard{
		ID:       id,
		StoreID:  storeID,
		Label:    req.Label,
		ImageURL: req.ImageURL,
	}

	return s.billboardRepo.CreateBillboard(billboard)
}

// GetBillboard é uma leitura pública, sem verificação de dono
func (s *Service) GetBillboard(billboardID string) (*domain.Billboard, error) {
	billboard, err := s.billboardRepo.GetBillboardByID(billboardID)
	if err != nil {
		return nil, err
	}

	if billboard == nil {
		return nil, ErrResourceNotFound
	}

	return billboard, nil
}

func (s *Service) ListBillboards(storeID string) ([]*domain.Billboard, error) {
	return s.billboardRepo.ListBillboardsByStore(storeID)
}

func (s *Service) UpdateBillboard(storeID, billboardID string, userID int, req *domain.UpsertBillboardRequest) (*domain.Billboard, error) {
	if req.Label == "" || req.ImageURL == "" {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	billboard, err := s.billboardRepo.GetBillboardByID(billboardID)
	if err != nil {
		return nil, err
	}

	if billboard == nil || billboard.StoreID != storeID {
		return nil, ErrResourceNotFound
	}

	billboard.Label = req.Label
	billboard.ImageURL = req.ImageURL

	if err := s.billboardRepo.UpdateBillboard(billboard); err != nil {
		return nil, err
	}

	return billboard, nil
}

func (s *Service) DeleteBillboard(storeID, billboardID string, userID int) error {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return err
	}

	billboard, err := s.billboardRepo.GetBillboardByID(billboardID)
	if err != nil {
		return err
	}

	if billboard == nil || billboard.StoreID != storeID {
		return ErrResourceNotFound
	}

	return s.billboardRepo.DeleteBillboard(billboardID)
}

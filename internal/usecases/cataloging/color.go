package cataloging

import (
	"regexp"

	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

// Valores de cor são hexadecimais no formato #RGB ou #RRGGBB
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func (s *Service) CreateColor(storeID string, userID int, req *domain.UpsertColorRequest) (*domain.Color, error) {
	if req.Name == "" || req.Value == "" {
		return nil, ErrMissingData
	}

	if !hexColorPattern.MatchString(req.Value) {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	color := &domain.Color{
		ID:      id,
		StoreID: storeID,
		Name:    req.Name,
		Value:   req.Value,
	}

	return s.colorRepo.CreateColor(color)
}

func (s *Service) GetColor(colorID string) (*domain.Color, error) {
	color, err := s.colorRepo.GetColorByID(colorID)
	if err != nil {
		return nil, err
	}

	if color == nil {
		return nil, ErrResourceNotFound
	}

	return color, nil
}

func (s *Service) ListColors(storeID string) ([]*domain.Color, error) {
	return s.colorRepo.ListColorsByStore(storeID)
}

func (s *Service) UpdateColor(storeID, colorID string, userID int, req *domain.UpsertColorRequest) (*domain.Color, error) {
	if req.Name == "" || req.Value == "" {
		return nil, ErrMissingData
	}

	if !hexColorPattern.MatchString(req.Value) {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	color, err := s.colorRepo.GetColorByID(colorID)
	if err != nil {
		return nil, err
	}

	if color == nil || color.StoreID != storeID {
		return nil, ErrResourceNotFound
	}

	color.Name = req.Name
	color.Value = req.Value

	if err := s.colorRepo.UpdateColor(color); err != nil {
		return nil, err
	}

	return color, nil
}

func (s *Service) DeleteColor(storeID, colorID string, userID int) error {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return err
	}

	color, err := s.colorRepo.GetColorByID(colorID)
	if err != nil {
		return err
	}

	if color == nil || color.StoreID != storeID {
		return ErrResourceNotFound
	}

	return s.colorRepo.DeleteColor(colorID)
}

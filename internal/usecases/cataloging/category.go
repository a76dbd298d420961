package cataloging

import (
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

func (s *Service) CreateCategory(storeID string, userID int, req *domain.UpsertCategoryRequest) (*domain.Category, error) {
	if req.Name == "" || req.BillboardID == "" {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	if err := s.checkBillboardReference(storeID, req.BillboardID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:          id,
		StoreID:     storeID,
		BillboardID: req.BillboardID,
		Name:        req.Name,
	}

	return s.categoryRepo.CreateCategory(category)
}

func (s *Service) GetCategory(categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, ErrResourceNotFound
	}

	return category, nil
}

func (s *Service) ListCategories(storeID string) ([]*domain.Category, error) {
	return s.categoryRepo.ListCategoriesByStore(storeID)
}

func (s *Service) UpdateCategory(storeID, categoryID string, userID int, req *domain.UpsertCategoryRequest) (*domain.Category, error) {
	if req.Name == "" || req.BillboardID == "" {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}

	if category == nil || category.StoreID != storeID {
		return nil, ErrResourceNotFound
	}

	if err := s.checkBillboardReference(storeID, req.BillboardID); err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.BillboardID = req.BillboardID

	if err := s.categoryRepo.UpdateCategory(category); err != nil {
		return nil, err
	}

	return s.categoryRepo.GetCategoryByID(categoryID)
}

func (s *Service) DeleteCategory(storeID, categoryID string, userID int) error {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return err
	}

	category, err := s.categoryRepo.GetCategoryByID(categoryID)
	if err != nil {
		return err
	}

	if category == nil || category.StoreID != storeID {
		return ErrResourceNotFound
	}

	return s.categoryRepo.DeleteCategory(categoryID)
}

// checkBillboardReference garante que o billboard referenciado existe e
// pertence à mesma loja da categoria
func (s *Service) checkBillboardReference(storeID, billboardID string) error {
	billboard, err := s.billboardRepo.GetBillboardByID(billboardID)
	if err != nil {
		return err
	}

	if billboard == nil || billboard.StoreID != storeID {
		return ErrInvalidReference
	}

	return nil
}

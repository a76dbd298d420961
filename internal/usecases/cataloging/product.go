package cataloging

import (
	"context"

	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

func (s *Service) CreateProduct(ctx context.Context, storeID string, userID int, req *domain.UpsertProductRequest) (*domain.Product, error) {
	if req.Name == "" || req.Price.IsZero() || req.CategoryID == "" || req.SizeID == "" || req.ColorID == "" {
		return nil, ErrMissingData
	}

	if req.Price.IsNegative() {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	if err := s.checkProductReferences(storeID, req); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          id,
		StoreID:     storeID,
		CategoryID:  req.CategoryID,
		SizeID:      req.SizeID,
		ColorID:     req.ColorID,
		Name:        req.Name,
		Price:       req.Price,
		IsFeatured:  req.IsFeatured,
		IsAvailable: req.IsAvailable,
		Images:      imagesFromURLs(req.ImageURLs),
	}

	return s.productRepo.CreateProduct(ctx, product)
}

func (s *Service) GetProduct(productID string) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, ErrResourceNotFound
	}

	return product, nil
}

func (s *Service) ListProducts(storeID string, filters *domain.ProductFilters) ([]*domain.Product, error) {
	return s.productRepo.ListProductsByStore(storeID, filters)
}

// UpdateProduct substitui os dados do produto e o conjunto de imagens de
// uma vez, na mesma transação
func (s *Service) UpdateProduct(ctx context.Context, storeID, productID string, userID int, req *domain.UpsertProductRequest) (*domain.Product, error) {
	if req.Name == "" || req.Price.IsZero() || req.CategoryID == "" || req.SizeID == "" || req.ColorID == "" {
		return nil, ErrMissingData
	}

	if req.Price.IsNegative() {
		return nil, ErrMissingData
	}

	if err := s.checkOwnership(storeID, userID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	if product == nil || product.StoreID != storeID {
		return nil, ErrResourceNotFound
	}

	if err := s.checkProductReferences(storeID, req); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.SizeID = req.SizeID
	product.ColorID = req.ColorID
	product.IsFeatured = req.IsFeatured
	product.IsAvailable = req.IsAvailable
	product.Images = imagesFromURLs(req.ImageURLs)

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetProductByID(productID)
}

func (s *Service) DeleteProduct(storeID, productID string, userID int) error {
	if err := s.checkOwnership(storeID, userID); err != nil {
		return err
	}

	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return err
	}

	if product == nil || product.StoreID != storeID {
		return ErrResourceNotFound
	}

	return s.productRepo.DeleteProduct(productID)
}

// checkProductReferences garante que categoria, tamanho e cor existem e
// pertencem à mesma loja do produto
func (s *Service) checkProductReferences(storeID string, req *domain.UpsertProductRequest) error {
	category, err := s.categoryRepo.GetCategoryByID(req.CategoryID)
	if err != nil {
		return err
	}
	if category == nil || category.StoreID != storeID {
		return ErrInvalidReference
	}

	size, err := s.sizeRepo.GetSizeByID(req.SizeID)
	if err != nil {
		return err
	}
	if size == nil || size.StoreID != storeID {
		return ErrInvalidReference
	}

	color, err := s.colorRepo.GetColorByID(req.ColorID)
	if err != nil {
		return err
	}
	if color == nil || color.StoreID != storeID {
		return ErrInvalidReference
	}

	return nil
}

func imagesFromURLs(urls []string) []domain.Image {
	images := make([]domain.Image, 0, len(urls))
	for _, url := range urls {
		images = append(images, domain.Image{URL: url})
	}
	return images
}

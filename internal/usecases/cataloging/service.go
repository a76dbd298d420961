package cataloging

import (
	"context"
	"errors"

	"github.com/vfg2006/commerce-admin-api/infrastructure/repository"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
)

var (
	ErrStoreNotFound    = errors.New("loja não encontrada")
	ErrResourceNotFound = errors.New("recurso não encontrado")
	ErrInvalidReference = errors.New("referência inválida para esta loja")
	ErrMissingData      = errors.New("dados obrigatórios ausentes")
)

// Cataloger expõe as operações de catálogo do painel: billboards,
// categorias, tamanhos, cores e produtos de uma loja.
type Cataloger interface {
	CreateBillboard(storeID string, userID int, req *domain.UpsertBillboardRequest) (*domain.Billboard, error)
	GetBillboard(billboardID string) (*domain.Billboard, error)
	ListBillboards(storeID string) ([]*domain.Billboard, error)
	UpdateBillboard(storeID, billboardID string, userID int, req *domain.UpsertBillboardRequest) (*domain.Billboard, error)
	DeleteBillboard(storeID, billboardID string, userID int) error

	CreateCategory(storeID string, userID int, req *domain.UpsertCategoryRequest) (*domain.Category, error)
	GetCategory(categoryID string) (*domain.Category, error)
	ListCategories(storeID string) ([]*domain.Category, error)
	UpdateCategory(storeID, categoryID string, userID int, req *domain.UpsertCategoryRequest) (*domain.Category, error)
	DeleteCategory(storeID, categoryID string, userID int) error

	CreateSize(storeID string, userID int, req *domain.UpsertSizeRequest) (*domain.Size, error)
	GetSize(sizeID string) (*domain.Size, error)
	ListSizes(storeID string) ([]*domain.Size, error)
	UpdateSize(storeID, sizeID string, userID int, req *domain.UpsertSizeRequest) (*domain.Size, error)
	DeleteSize(storeID, sizeID string, userID int) error

	CreateColor(storeID string, userID int, req *domain.UpsertColorRequest) (*domain.Color, error)
	GetColor(colorID string) (*domain.Color, error)
	ListColors(storeID string) ([]*domain.Color, error)
	UpdateColor(storeID, colorID string, userID int, req *domain.UpsertColorRequest) (*domain.Color, error)
	DeleteColor(storeID, colorID string, userID int) error

	CreateProduct(ctx context.Context, storeID string, userID int, req *domain.UpsertProductRequest) (*domain.Product, error)
	GetProduct(productID string) (*domain.Product, error)
	ListProducts(storeID string, filters *domain.ProductFilters) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, storeID, productID string, userID int, req *domain.UpsertProductRequest) (*domain.Product, error)
	DeleteProduct(storeID, productID string, userID int) error
}

type Service struct {
	storeRepo     repository.StoreRepository
	billboardRepo repository.BillboardRepository
	categoryRepo  repository.CategoryRepository
	sizeRepo      repository.SizeRepository
	colorRepo     repository.ColorRepository
	productRepo   repository.ProductRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	billboardRepo repository.BillboardRepository,
	categoryRepo repository.CategoryRepository,
	sizeRepo repository.SizeRepository,
	colorRepo repository.ColorRepository,
	productRepo repository.ProductRepository,
) Cataloger {
	return &Service{
		storeRepo:     storeRepo,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		sizeRepo:      sizeRepo,
		colorRepo:     colorRepo,
		productRepo:   productRepo,
	}
}

// checkOwnership garante que a loja existe e pertence ao usuário. Toda escrita
// de catálogo passa por aqui antes de tocar o banco.
func (s *Service) checkOwnership(storeID string, userID int) error {
	store, err := s.storeRepo.GetStoreByIDAndUser(storeID, userID)
	if err != nil {
		return err
	}

	if store == nil {
		return ErrStoreNotFound
	}

	return nil
}

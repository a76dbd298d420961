package cataloging

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	storeRepo     *mocks.MockStoreRepository
	billboardRepo *mocks.MockBillboardRepository
	categoryRepo  *mocks.MockCategoryRepository
	sizeRepo      *mocks.MockSizeRepository
	colorRepo     *mocks.MockColorRepository
	productRepo   *mocks.MockProductRepository
}

func newCatalogService(ctrl *gomock.Controller) (*Service, *catalogMocks) {
	m := &catalogMocks{
		storeRepo:     mocks.NewMockStoreRepository(ctrl),
		billboardRepo: mocks.NewMockBillboardRepository(ctrl),
		categoryRepo:  mocks.NewMockCategoryRepository(ctrl),
		sizeRepo:      mocks.NewMockSizeRepository(ctrl),
		colorRepo:     mocks.NewMockColorRepository(ctrl),
		productRepo:   mocks.NewMockProductRepository(ctrl),
	}

	service := &Service{
		storeRepo:     m.storeRepo,
		billboardRepo: m.billboardRepo,
		categoryRepo:  m.categoryRepo,
		sizeRepo:      m.sizeRepo,
		colorRepo:     m.colorRepo,
		productRepo:   m.productRepo,
	}

	return service, m
}

func TestService_CreateBillboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	tests := []struct {
		name      string
		req       *domain.UpsertBillboardRequest
		setup     func(m *catalogMocks)
		expectErr error
	}{
		{
			name:      "Dados obrigatórios ausentes - deve recusar antes de consultar a loja",
			req:       &domain.UpsertBillboardRequest{Label: "", ImageURL: "https://cdn.example.com/banner.png"},
			setup:     func(m *catalogMocks) {},
			expectErr: ErrMissingData,
		},
		{
			name: "Loja de outro usuário - deve recusar a escrita",
			req:  &domain.UpsertBillboardRequest{Label: "Verão", ImageURL: "https://cdn.example.com/banner.png"},
			setup: func(m *catalogMocks) {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(nil, nil)
			},
			expectErr: ErrStoreNotFound,
		},
		{
			name: "Dados válidos - deve criar o billboard com ID gerado",
			req:  &domain.UpsertBillboardRequest{Label: "Verão", ImageURL: "https://cdn.example.com/banner.png"},
			setup: func(m *catalogMocks) {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				m.billboardRepo.EXPECT().
					CreateBillboard(gomock.Any()).
					DoAndReturn(func(billboard *domain.Billboard) (*domain.Billboard, error) {
						assert.NotEmpty(t, billboard.ID)
						assert.Equal(t, "STR001", billboard.StoreID)
						assert.Equal(t, "Verão", billboard.Label)
						return billboard, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newCatalogService(ctrl)
			tt.setup(m)

			billboard, err := service.CreateBillboard("STR001", 10, tt.req)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, billboard)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, billboard)
		})
	}
}

func TestService_DeleteBillboard_OutraLoja(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newCatalogService(ctrl)

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}
	foreign := &domain.Billboard{ID: "BLB001", StoreID: "STR999", Label: "Inverno"}

	m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
	m.billboardRepo.EXPECT().GetBillboardByID("BLB001").Return(foreign, nil)

	err := service.DeleteBillboard("STR001", "BLB001", 10)

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestService_CreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	tests := []struct {
		name      string
		setup     func(m *catalogMocks)
		expectErr error
	}{
		{
			name: "Billboard de outra loja - deve recusar a referência",
			setup: func(m *catalogMocks) {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				m.billboardRepo.EXPECT().GetBillboardByID("BLB001").Return(&domain.Billboard{
					ID:      "BLB001",
					StoreID: "STR999",
				}, nil)
			},
			expectErr: ErrInvalidReference,
		},
		{
			name: "Billboard inexistente - deve recusar a referência",
			setup: func(m *catalogMocks) {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				m.billboardRepo.EXPECT().GetBillboardByID("BLB001").Return(nil, nil)
			},
			expectErr: ErrInvalidReference,
		},
		{
			name: "Billboard da própria loja - deve criar a categoria",
			setup: func(m *catalogMocks) {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				m.billboardRepo.EXPECT().GetBillboardByID("BLB001").Return(&domain.Billboard{
					ID:      "BLB001",
					StoreID: "STR001",
				}, nil)
				m.categoryRepo.EXPECT().
					CreateCategory(gomock.Any()).
					DoAndReturn(func(category *domain.Category) (*domain.Category, error) {
						assert.Equal(t, "STR001", category.StoreID)
						assert.Equal(t, "BLB001", category.BillboardID)
						assert.Equal(t, "Camisetas", category.Name)
						return category, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newCatalogService(ctrl)
			tt.setup(m)

			req := &domain.UpsertCategoryRequest{Name: "Camisetas", BillboardID: "BLB001"}
			category, err := service.CreateCategory("STR001", 10, req)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, category)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, category)
		})
	}
}

func TestService_CreateColor_ValidacaoDeValor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	tests := []struct {
		name      string
		value     string
		expectErr error
	}{
		{name: "Hexadecimal de seis dígitos - deve aceitar", value: "#1a2b3c"},
		{name: "Hexadecimal de três dígitos - deve aceitar", value: "#fff"},
		{name: "Sem cerquilha - deve recusar", value: "1a2b3c", expectErr: ErrMissingData},
		{name: "Dígito inválido - deve recusar", value: "#1a2b3g", expectErr: ErrMissingData},
		{name: "Tamanho inválido - deve recusar", value: "#1a2b", expectErr: ErrMissingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newCatalogService(ctrl)

			if tt.expectErr == nil {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				m.colorRepo.EXPECT().
					CreateColor(gomock.Any()).
					DoAndReturn(func(color *domain.Color) (*domain.Color, error) {
						return color, nil
					})
			}

			req := &domain.UpsertColorRequest{Name: "Azul", Value: tt.value}
			color, err := service.CreateColor("STR001", 10, req)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, color)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.value, color.Value)
		})
	}
}

func TestService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &domain.Store{ID: "STR001", Name: "Loja A", UserID: 10}

	validReq := func() *domain.UpsertProductRequest {
		return &domain.UpsertProductRequest{
			Name:        "Camiseta",
			Price:       decimal.RequireFromString("49.90"),
			CategoryID:  "CAT001",
			SizeID:      "SIZ001",
			ColorID:     "CLR001",
			IsAvailable: true,
			ImageURLs:   []string{"https://cdn.example.com/camiseta.png"},
		}
	}

	expectReferences := func(m *catalogMocks) {
		m.categoryRepo.EXPECT().GetCategoryByID("CAT001").Return(&domain.Category{ID: "CAT001", StoreID: "STR001"}, nil)
		m.sizeRepo.EXPECT().GetSizeByID("SIZ001").Return(&domain.Size{ID: "SIZ001", StoreID: "STR001"}, nil)
		m.colorRepo.EXPECT().GetColorByID("CLR001").Return(&domain.Color{ID: "CLR001", StoreID: "STR001"}, nil)
	}

	tests := []struct {
		name      string
		req       *domain.UpsertProductRequest
		setup     func(m *catalogMocks)
		expectErr error
	}{
		{
			name: "Preço zerado - deve recusar",
			req: func() *domain.UpsertProductRequest {
				req := validReq()
				req.Price = decimal.Zero
				return req
			}(),
			setup:     func(m *catalogMocks) {},
			expectErr: ErrMissingData,
		},
		{
			name: "Preço negativo - deve recusar",
			req: func() *domain.UpsertProductRequest {
				req := validReq()
				req.Price = decimal.RequireFromString("-10.00")
				return req
			}(),
			setup:     func(m *catalogMocks) {},
			expectErr: ErrMissingData,
		},
		{
			name: "Tamanho de outra loja - deve recusar a referência",
			req:  validReq(),
			setup: func(m *catalogMocks) {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				m.categoryRepo.EXPECT().GetCategoryByID("CAT001").Return(&domain.Category{ID: "CAT001", StoreID: "STR001"}, nil)
				m.sizeRepo.EXPECT().GetSizeByID("SIZ001").Return(&domain.Size{ID: "SIZ001", StoreID: "STR999"}, nil)
			},
			expectErr: ErrInvalidReference,
		},
		{
			name: "Dados válidos - deve criar o produto com as imagens informadas",
			req:  validReq(),
			setup: func(m *catalogMocks) {
				m.storeRepo.EXPECT().GetStoreByIDAndUser("STR001", 10).Return(store, nil)
				expectReferences(m)
				m.productRepo.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, product *domain.Product) (*domain.Product, error) {
						assert.NotEmpty(t, product.ID)
						assert.Equal(t, "STR001", product.StoreID)
						assert.Len(t, product.Images, 1)
						assert.Equal(t, "https://cdn.example.com/camiseta.png", product.Images[0].URL)
						return product, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newCatalogService(ctrl)
			tt.setup(m)

			product, err := service.CreateProduct(context.Background(), "STR001", 10, tt.req)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, product)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, product)
		})
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/shop-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sellerStore = entities.Store{ID: "store-1", OwnerID: seller.Subject, Name: "Gadgets"}

func TestProductService_CreateProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockProductRepo, stores *mocks.MockStoreReader)

	valid := entities.Product{Name: "Phone", Price: dec("199.99"), Stock: 3, StoreID: "store-1"}

	testCases := []struct {
		name         string
		identity     entities.Identity
		product      entities.Product
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "seller in own store",
			identity: seller,
			product:  valid,
			mockBehavior: func(repo *mocks.MockProductRepo, stores *mocks.MockStoreReader) {
				stores.EXPECT().GetStore(mock.Anything, "store-1").Return(sellerStore, nil)
				repo.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.ID != "" && p.Name == "Phone"
				})).Return(nil)
			},
		},
		{
			name:     "admin in any store",
			identity: admin,
			product:  valid,
			mockBehavior: func(repo *mocks.MockProductRepo, stores *mocks.MockStoreReader) {
				stores.EXPECT().GetStore(mock.Anything, "store-1").Return(sellerStore, nil)
				repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:     "other seller",
			identity: entities.Identity{Subject: "seller-2", Roles: []entities.Role{entities.RoleSeller}, Active: true},
			product:  valid,
			mockBehavior: func(repo *mocks.MockProductRepo, stores *mocks.MockStoreReader) {
				stores.EXPECT().GetStore(mock.Anything, "store-1").Return(sellerStore, nil)
			},
			wantErr: entities.ErrUnauthorizedAccess,
		},
		{
			name:         "customer",
			identity:     customer,
			product:      valid,
			mockBehavior: func(*mocks.MockProductRepo, *mocks.MockStoreReader) {},
			wantErr:      entities.ErrUnauthorizedAccess,
		},
		{
			name:     "unknown store",
			identity: seller,
			product:  valid,
			mockBehavior: func(repo *mocks.MockProductRepo, stores *mocks.MockStoreReader) {
				stores.EXPECT().GetStore(mock.Anything, "store-1").Return(entities.Store{}, entities.ErrStoreNotFound)
			},
			wantErr: entities.ErrStoreNotFound,
		},
		{
			name:     "negative stock",
			identity: seller,
			product:  entities.Product{Name: "Phone", Price: dec("1"), Stock: -1, StoreID: "store-1"},
			mockBehavior: func(repo *mocks.MockProductRepo, stores *mocks.MockStoreReader) {
				stores.EXPECT().GetStore(mock.Anything, "store-1").Return(sellerStore, nil)
			},
			wantErr: entities.ErrInvalidInput,
		},
		{
			name:     "zero price",
			identity: seller,
			product:  entities.Product{Name: "Phone", Price: dec("0"), StoreID: "store-1"},
			mockBehavior: func(repo *mocks.MockProductRepo, stores *mocks.MockStoreReader) {
				stores.EXPECT().GetStore(mock.Anything, "store-1").Return(sellerStore, nil)
			},
			wantErr: entities.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			stores := mocks.NewMockStoreReader(t)
			tc.mockBehavior(repo, stores)

			svc := service.NewProductService(discardLogger(), repo, stores, mocks.NewMockCache(t))
			got, err := svc.CreateProduct(context.Background(), tc.identity, tc.product)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockProductRepo, c *mocks.MockCache)

	product := entities.Product{ID: "A", Name: "Phone", Price: dec("10.50"), Stock: 2}
	data, err := product.Marshal()
	require.NoError(t, err)
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "from cache",
			mockBehavior: func(repo *mocks.MockProductRepo, c *mocks.MockCache) {
				c.EXPECT().Get("A").Return(data, true)
			},
		},
		{
			name: "from repo",
			mockBehavior: func(repo *mocks.MockProductRepo, c *mocks.MockCache) {
				c.EXPECT().Get("A").Return(nil, false)
				repo.EXPECT().GetProduct(mock.Anything, "A").Return(product, nil)
				c.EXPECT().Set("A", mock.Anything).Return()
			},
		},
		{
			name: "broken cache entry",
			mockBehavior: func(repo *mocks.MockProductRepo, c *mocks.MockCache) {
				c.EXPECT().Get("A").Return([]byte("garbage"), true)
				c.EXPECT().Delete("A").Return()
				repo.EXPECT().GetProduct(mock.Anything, "A").Return(product, nil)
				c.EXPECT().Set("A", mock.Anything).Return()
			},
		},
		{
			name: "repo fails",
			mockBehavior: func(repo *mocks.MockProductRepo, c *mocks.MockCache) {
				c.EXPECT().Get("A").Return(nil, false)
				repo.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			c := mocks.NewMockCache(t)
			tc.mockBehavior(repo, c)

			svc := service.NewProductService(discardLogger(), repo, mocks.NewMockStoreReader(t), c)
			got, err := svc.GetProduct(context.Background(), "A")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, product.Name, got.Name)
			assert.True(t, product.Price.Equal(got.Price))
		})
	}
}

func TestProductService_UpdateInvalidatesCache(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	stores := mocks.NewMockStoreReader(t)
	lru := cache.NewLRUCache("test_products", 10, time.Minute)
	svc := service.NewProductService(discardLogger(), repo, stores, lru)
	ctx := context.Background()

	product := entities.Product{ID: "A", Name: "Phone", Price: dec("10.00"), Stock: 2, StoreID: "store-1"}
	repo.EXPECT().GetProduct(mock.Anything, "A").Return(product, nil)
	stores.EXPECT().GetStore(mock.Anything, "store-1").Return(sellerStore, nil)

	_, err := svc.GetProduct(ctx, "A")
	require.NoError(t, err)
	_, cached := lru.Get("A")
	require.True(t, cached)

	price := dec("12.00")
	repo.EXPECT().UpdateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
		return p.Price.Equal(price) && p.Name == "Phone"
	})).Return(nil)

	got, err := svc.UpdateProduct(ctx, seller, "A", service.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price))

	_, cached = lru.Get("A")
	assert.False(t, cached)
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	stores := mocks.NewMockStoreReader(t)
	c := mocks.NewMockCache(t)
	svc := service.NewProductService(discardLogger(), repo, stores, c)

	repo.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{ID: "A", StoreID: "store-1"}, nil)
	stores.EXPECT().GetStore(mock.Anything, "store-1").Return(sellerStore, nil)
	repo.EXPECT().DeleteProduct(mock.Anything, "A").Return(nil)
	c.EXPECT().Delete("A").Return()

	assert.NoError(t, svc.DeleteProduct(context.Background(), seller, "A"))
}

func TestProductService_ListProducts(t *testing.T) {
	testCases := []struct {
		name       string
		query      entities.ProductQuery
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: entities.ProductQuery{}, wantLimit: 20, wantOffset: 0},
		{name: "capped", query: entities.ProductQuery{Limit: 500, Offset: 40}, wantLimit: 100, wantOffset: 40},
		{name: "negative offset", query: entities.ProductQuery{Limit: 5, Offset: -3}, wantLimit: 5, wantOffset: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			repo.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(q entities.ProductQuery) bool {
				return q.Limit == tc.wantLimit && q.Offset == tc.wantOffset && q.Search == "phone"
			})).Return([]entities.Product{}, nil)

			svc := service.NewProductService(discardLogger(), repo, mocks.NewMockStoreReader(t), mocks.NewMockCache(t))
			q := tc.query
			q.Search = "  phone "
			_, err := svc.ListProducts(context.Background(), q)
			assert.NoError(t, err)
		})
	}
}

func TestProductService_WarmUpCache(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	c := mocks.NewMockCache(t)
	repo.EXPECT().LatestProducts(mock.Anything, 2).Return([]entities.Product{{ID: "A"}, {ID: "B"}}, nil)
	c.EXPECT().Set("A", mock.Anything).Return()
	c.EXPECT().Set("B", mock.Anything).Return()

	svc := service.NewProductService(discardLogger(), repo, mocks.NewMockStoreReader(t), c)
	assert.NoError(t, svc.WarmUpCache(context.Background(), 2))
}

package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreService_CreateStore(t *testing.T) {
	testCases := []struct {
		name         string
		identity     entities.Identity
		store        entities.Store
		mockBehavior func(repo *mocks.MockStoreRepo)
		wantErr      error
	}{
		{
			name:     "seller",
			identity: seller,
			store:    entities.Store{Name: "Gadgets", OwnerID: "someone-else"},
			mockBehavior: func(repo *mocks.MockStoreRepo) {
				repo.EXPECT().CreateStore(mock.Anything, mock.MatchedBy(func(s entities.Store) bool {
					return s.OwnerID == seller.Subject && s.ID != ""
				})).Return(nil)
			},
		},
		{
			name:         "customer",
			identity:     customer,
			store:        entities.Store{Name: "Gadgets"},
			mockBehavior: func(*mocks.MockStoreRepo) {},
			wantErr:      entities.ErrUnauthorizedAccess,
		},
		{
			name:         "blank name",
			identity:     seller,
			store:        entities.Store{Name: " "},
			mockBehavior: func(*mocks.MockStoreRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockStoreRepo(t)
			tc.mockBehavior(repo)

			got, err := service.NewStoreService(discardLogger(), repo).CreateStore(context.Background(), tc.identity, tc.store)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.identity.Subject, got.OwnerID)
		})
	}
}

func TestReviewService_CreateReview(t *testing.T) {
	testCases := []struct {
		name         string
		review       entities.Review
		mockBehavior func(repo *mocks.MockReviewRepo, products *mocks.MockProductReader)
		wantErr      error
	}{
		{
			name:   "OK",
			review: entities.Review{ProductID: "A", Rating: 5, Comment: "great"},
			mockBehavior: func(repo *mocks.MockReviewRepo, products *mocks.MockProductReader) {
				products.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{ID: "A"}, nil)
				repo.EXPECT().CreateReview(mock.Anything, mock.MatchedBy(func(r entities.Review) bool {
					return r.UserID == customer.Subject && r.Rating == 5
				})).Return(nil)
			},
		},
		{
			name:         "rating too low",
			review:       entities.Review{ProductID: "A", Rating: 0},
			mockBehavior: func(*mocks.MockReviewRepo, *mocks.MockProductReader) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "rating too high",
			review:       entities.Review{ProductID: "A", Rating: 6},
			mockBehavior: func(*mocks.MockReviewRepo, *mocks.MockProductReader) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:   "unknown product",
			review: entities.Review{ProductID: "Z", Rating: 3},
			mockBehavior: func(repo *mocks.MockReviewRepo, products *mocks.MockProductReader) {
				products.EXPECT().GetProduct(mock.Anything, "Z").Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:   "second review",
			review: entities.Review{ProductID: "A", Rating: 4},
			mockBehavior: func(repo *mocks.MockReviewRepo, products *mocks.MockProductReader) {
				products.EXPECT().GetProduct(mock.Anything, "A").Return(entities.Product{ID: "A"}, nil)
				repo.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(entities.ErrDuplicateReview)
			},
			wantErr: entities.ErrDuplicateReview,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReviewRepo(t)
			products := mocks.NewMockProductReader(t)
			tc.mockBehavior(repo, products)

			_, err := service.NewReviewService(discardLogger(), repo, products).CreateReview(context.Background(), customer, tc.review)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReviewService_DeleteReview(t *testing.T) {
	repo := mocks.NewMockReviewRepo(t)
	svc := service.NewReviewService(discardLogger(), repo, mocks.NewMockProductReader(t))
	ctx := context.Background()

	repo.EXPECT().GetReview(mock.Anything, "r-1").Return(entities.Review{ID: "r-1", UserID: customer.Subject}, nil)
	repo.EXPECT().DeleteReview(mock.Anything, "r-1").Return(nil).Twice()

	assert.ErrorIs(t, svc.DeleteReview(ctx, stranger, "r-1"), entities.ErrUnauthorizedAccess)
	assert.NoError(t, svc.DeleteReview(ctx, customer, "r-1"))
	assert.NoError(t, svc.DeleteReview(ctx, admin, "r-1"))
}

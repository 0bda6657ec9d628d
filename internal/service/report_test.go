package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportService_SalesByDay(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		identity entities.Identity
		to       time.Time
		callRepo bool
		wantErr  error
	}{
		{name: "OK", identity: admin, to: from.AddDate(0, 1, 0), callRepo: true},
		{name: "not admin", identity: seller, to: from.AddDate(0, 1, 0), wantErr: entities.ErrUnauthorizedAccess},
		{name: "empty range", identity: admin, to: from, wantErr: entities.ErrInvalidInput},
		{name: "too wide", identity: admin, to: from.AddDate(2, 0, 0), wantErr: entities.ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReportRepo(t)
			if tc.callRepo {
				repo.EXPECT().SalesByDay(mock.Anything, from, tc.to).
					Return([]entities.SalesByDay{{Orders: 2, Amount: dec("50.00")}}, nil)
			}

			rows, err := service.NewReportService(discardLogger(), repo).SalesByDay(context.Background(), tc.identity, from, tc.to)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, rows, 1)
		})
	}
}

func TestReportService_SalesByCategory(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	repo := mocks.NewMockReportRepo(t)
	repo.EXPECT().SalesByCategory(mock.Anything, from, to).Return([]entities.SalesByCategory{}, nil)

	_, err := service.NewReportService(discardLogger(), repo).SalesByCategory(context.Background(), admin, from, to)
	assert.NoError(t, err)
}

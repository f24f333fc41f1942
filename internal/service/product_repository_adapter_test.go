package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/mocks"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepositoryAdapter_InTransaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fnErr   error
		expect  func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "commits on success",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name:  "rolls back on error",
			fnErr: errors.New("save failed"),
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			tt.expect(mock)

			inner := mocks.NewProductStore()
			repo := service.NewProductRepositoryAdapter(inner, db)

			var got store.ProductStore
			err = repo.InTransaction(context.Background(), func(ctx context.Context, products store.ProductStore) error {
				got = products
				return tt.fnErr
			})

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.fnErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Same(t, inner, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepositoryAdapter_DelegatesReads(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	inner := mocks.NewProductStore()
	repo := service.NewProductRepositoryAdapter(inner, db)

	_, err = repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrProductNotFound)
	assert.Equal(t, []string{"GetByID"}, inner.Calls)
}

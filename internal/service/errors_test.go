package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateStoreError_PassThrough(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewBufferLogger()
	already := &OperationError{Kind: ErrInternal, Op: "earlier"}

	tests := []struct {
		name string
		err  error
	}{
		{"not found", store.ErrProductNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrNotFound)},
		{"validation", domain.ErrProductTitleEmpty},
		{"already translated", already},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.err, translateStoreError(log, "op", tt.err))
		})
	}

	assert.Nil(t, translateStoreError(log, "op", nil))
	assert.Empty(t, buf.String())
}

func TestTranslateStoreError_Duplicate(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewBufferLogger()
	dbErr := &store.DBError{
		Kind:   store.ErrDuplicate,
		Code:   "23505",
		Detail: "Key (slug)=(shirt) already exists.",
		Err:    errors.New("pg"),
	}

	err := translateStoreError(log, "create product", dbErr)

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.ErrorIs(t, err, ErrDuplicateResource)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Equal(t, "23505", opErr.Code)
	assert.Equal(t, "Key (slug)=(shirt) already exists.", opErr.Detail)
	assert.ErrorIs(t, err, store.ErrDuplicate)
	assert.NotContains(t, buf.String(), `"level":"ERROR"`)
}

func TestTranslateStoreError_DuplicateWithoutDetail(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewBufferLogger()
	err := translateStoreError(log, "register", store.ErrEmailExists)

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.ErrorIs(t, err, ErrDuplicateResource)
	assert.Equal(t, store.ErrEmailExists.Error(), opErr.Detail)
}

func TestTranslateStoreError_Internal(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewBufferLogger()

	t.Run("classified database error", func(t *testing.T) {
		err := translateStoreError(log, "update product", &store.DBError{
			Kind:   store.ErrCheckViolation,
			Code:   "23514",
			Detail: "price must be positive",
		})

		var opErr *OperationError
		require.ErrorAs(t, err, &opErr)
		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, "23514", opErr.Code)
		assert.Equal(t, "update product failed: internal error (code 23514): price must be positive", err.Error())
	})

	t.Run("plain error", func(t *testing.T) {
		cause := context.DeadlineExceeded
		err := translateStoreError(log, "list products", cause)

		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "list products failed: internal error", err.Error())
	})

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "unexpected storage failure")
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := &NotFoundError{Term: "red_shirt", Err: store.ErrProductNotFound}
	assert.Equal(t, "not found id red_shirt", err.Error())
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

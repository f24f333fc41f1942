package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind error
		wantCode string
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", Detail: "Key (slug)=(cap) already exists."}, store.ErrDuplicate, "23505"},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, store.ErrForeignKey, "23503"},
		{"check violation", &pgconn.PgError{Code: "23514"}, store.ErrCheckViolation, "23514"},
		{"not null violation", &pgconn.PgError{Code: "23502"}, store.ErrNotNull, "23502"},
		{"wrapped unique violation", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), store.ErrDuplicate, "23505"},
		{"unclassified", &pgconn.PgError{Code: "42P01"}, nil, "42P01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)

			var dbErr *store.DBError
			require.ErrorAs(t, mapped, &dbErr)
			assert.Equal(t, tt.wantCode, dbErr.Code)
			if tt.wantKind != nil {
				assert.ErrorIs(t, mapped, tt.wantKind)
			} else {
				assert.Nil(t, dbErr.Kind)
			}

			var pgErr *pgconn.PgError
			assert.ErrorAs(t, mapped, &pgErr, "driver error must stay reachable")
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrNotFound)

	plain := errors.New("connection reset")
	assert.Same(t, plain, MapError(plain))
}

func TestMapError_KeepsDetail(t *testing.T) {
	t.Parallel()

	mapped := MapError(&pgconn.PgError{Code: "23505", Detail: "Key (title)=(Cap) already exists."})

	var dbErr *store.DBError
	require.ErrorAs(t, mapped, &dbErr)
	assert.Equal(t, "Key (title)=(Cap) already exists.", dbErr.Detail)
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	mapped := MapUniqueViolation(&pgconn.PgError{Code: "23505"}, store.ErrEmailExists)
	assert.ErrorIs(t, mapped, store.ErrEmailExists)
	assert.ErrorIs(t, mapped, store.ErrDuplicate)

	other := MapUniqueViolation(&pgconn.PgError{Code: "23503"}, store.ErrEmailExists)
	assert.NotErrorIs(t, other, store.ErrEmailExists)
	assert.ErrorIs(t, other, store.ErrForeignKey)
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), store.ErrProductNotFound))
	assert.ErrorIs(t, CheckRowsAffected(sqlmock.NewResult(0, 0), store.ErrProductNotFound), store.ErrProductNotFound)
	assert.Error(t, CheckRowsAffected(nil, store.ErrProductNotFound))

	failing := sqlmock.NewErrorResult(errors.New("no count"))
	assert.ErrorContains(t, CheckRowsAffected(failing, store.ErrProductNotFound), "failed to get rows affected")
}

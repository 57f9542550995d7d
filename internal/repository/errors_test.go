package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"gorm translated wrapped", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, true},
		{"postgres foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, false},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1213, Message: "Deadlock"}, false},
		{"not found", gorm.ErrRecordNotFound, false},
		{"plain", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestMapWriteError(t *testing.T) {
	assert.NoError(t, mapWriteError(nil))

	dup := mapWriteError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_users_email"})
	assert.ErrorIs(t, dup, ErrDuplicateKey)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, dup, &pgErr)
	assert.Equal(t, "idx_users_email", pgErr.ConstraintName)

	translated := mapWriteError(gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translated, ErrDuplicateKey)
	assert.ErrorIs(t, translated, gorm.ErrDuplicatedKey)

	other := errors.New("disk full")
	assert.Same(t, other, mapWriteError(other))
}

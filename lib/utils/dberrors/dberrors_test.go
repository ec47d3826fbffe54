package dberrors

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run(`unique violation check`, func(t *testing.T) {
		require.False(t, IsUniqueViolation(nil))
		require.False(t, IsUniqueViolation(errors.New("connection refused")))
		require.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
		require.True(t, IsUniqueViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create failed")))
		require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
		require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	})
}

package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_IsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "mysql duplicate entry",
			err:  errors.New("Error 1062: Duplicate entry 'alice' for key 'users.username'"),
			want: true,
		},
		{
			name: "sqlite unique constraint",
			err:  errors.New("UNIQUE constraint failed: follows.follower_id, follows.following_id"),
			want: true,
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}

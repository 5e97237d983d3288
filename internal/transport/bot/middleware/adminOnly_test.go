package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"valuebets/internal/transport/bot/middleware"
)

func TestIsFrom(t *testing.T) {
	tests := []struct {
		name   string
		update telego.Update
		want   bool
	}{
		{
			name:   "message from admin",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 42}}},
			want:   true,
		},
		{
			name:   "message from someone else",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 7}}},
		},
		{
			name:   "channel post without sender",
			update: telego.Update{Message: &telego.Message{}},
		},
		{
			name:   "callback from admin",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 42}}},
			want:   true,
		},
		{
			name: "empty update",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, middleware.IsFrom(tt.update, 42))
		})
	}
}

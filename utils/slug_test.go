package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"CAPCUT PRO (pc version)", "capcut-pro-pc-version"},
		{"CANVA PRO (official)", "canva-pro-official"},
		{"  CHAT-GPT (personal)  ", "chat-gpt-personal"},
		{"WINDOWS 11 PRODUCT KEY", "windows-11-product-key"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CreateSlug(tt.name), "slug of %q", tt.name)
	}
}

func TestFormatTaka(t *testing.T) {
	assert.Equal(t, "৳498.00", FormatTaka(decimal.NewFromInt(498)))
	assert.Equal(t, "৳49.50", FormatTaka(decimal.RequireFromString("49.5")))
	assert.Equal(t, "৳0.00", FormatTaka(decimal.Zero))
}

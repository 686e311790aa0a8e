package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEur(t *testing.T) {
	tests := []struct {
		name string
		eur  float64
		want Cents
	}{
		{"whole euros", 400, 40000},
		{"cents", 18.50, 1850},
		{"rounds half up", 0.005, 1},
		{"rounds down below half", 0.004, 0},
		{"float drift", 4.70, 470},
		{"negative rounds half away from zero", -0.005, -1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromEur(tt.eur))
		})
	}
}

func TestCents_String(t *testing.T) {
	assert.Equal(t, "472.00", FromEur(472).String())
	assert.Equal(t, "18.50", FromEur(18.5).String())
	assert.Equal(t, "0.05", Cents(5).String())
}

func TestCents_MulInt(t *testing.T) {
	assert.Equal(t, FromEur(72), FromEur(18).MulInt(4))
	assert.Equal(t, Cents(0), FromEur(18).MulInt(0))
}

func TestCents_Eur(t *testing.T) {
	assert.InDelta(t, 4.72, Cents(472).Eur(), 1e-9)
}

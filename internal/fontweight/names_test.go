package fontweight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightFromName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"thin", "Roboto Thin", 100, true},
		{"extra light spaced", "Inter Extra Light", 200, true},
		{"ultralight", "SF-UltraLight", 200, true},
		{"light", "Lato Light", 300, true},
		{"regular", "Regular", 400, true},
		{"book", "Gotham Book", 400, true},
		{"medium", "Medium", 500, true},
		{"semibold", "Source Sans SemiBold", 600, true},
		{"demi bold", "Futura Demi Bold", 600, true},
		{"bold", "Arial Bold", 700, true},
		{"extra bold spaced", "Inter Extra Bold", 800, true},
		{"extrabold", "ExtraBold", 800, true},
		{"heavy", "Avenir Heavy", 900, true},
		{"numeric", "NotoSans-600", 600, true},
		{"numeric not a weight", "Font 123", 0, false},
		{"abbreviation bd", "Helvetica bd", 700, true},
		{"abbreviation lt", "Frutiger LT", 300, true},
		{"nothing", "MyFont", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeightFromName(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightName(t *testing.T) {
	assert.Equal(t, "Thin", WeightName(100))
	assert.Equal(t, "Regular", WeightName(400))
	assert.Equal(t, "SemiBold", WeightName(600))
	assert.Equal(t, "Black", WeightName(900))
	assert.Equal(t, "350", WeightName(350))
}

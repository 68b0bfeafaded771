package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Laptop Dell", "laptop dell"},
		{"  CAMIÓN   de   Carga ", "camion de carga"},
		{"Niño-Pequeño #5", "ninopequeno 5"},
		{"AF.EC.JP.LAP.001", "afecjplap001"},
		{"\tline\nitem", "line item"},
		{"", ""},
		{"¡¿?!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestProductName(t *testing.T) {
	assert.Equal(t, "LAPTOP DELL XPS 13", ProductName("laptop  dell xps 13"))
	assert.Equal(t, "SILLA ERGONOMICA", ProductName("Silla ergonómica!"))
	assert.Equal(t, "", ProductName("   "))
}

func TestLetters(t *testing.T) {
	assert.Equal(t, "LAPTOP", Letters("la-p 7top"))
	assert.Equal(t, "ESCRITORIO", Letters("Escritorio 2"))
	assert.Equal(t, "AB", Letters("a1b"))
}

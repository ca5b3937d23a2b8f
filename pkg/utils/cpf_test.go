package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidCPF(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
		"123.456.789-09",
	}
	for _, cpf := range valid {
		require.True(t, ValidCPF(cpf), cpf)
	}

	invalid := []string{
		"",
		"123",
		"529.982.247-26", // wrong check digit
		"111.111.111-11", // repeated sequence
		"000.000.000-00",
		"abc.def.ghi-jk",
		"529.982.247-255", // too long
	}
	for _, cpf := range invalid {
		require.False(t, ValidCPF(cpf), cpf)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	require.Len(t, a, 32)
	require.NotEqual(t, a, b)
}

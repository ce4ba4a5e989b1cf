package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Memes de Sexta-Feira", "memes-de-sexta-feira"},
		{"Eleições 2026: o que muda?", "eleicoes-2026-o-que-muda"},
		{"Opinião & Análise", "opiniao-analise"},
		{"  Título   com   espaços  ", "titulo-com-espacos"},
		{"Ação!!!", "acao"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, GenerateSlug(tc.input), "input: %q", tc.input)
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Sao Joao e Conceicao", RemoveDiacritics("São João e Conceição"))
	assert.Equal(t, "plain ascii", RemoveDiacritics("plain ascii"))
}

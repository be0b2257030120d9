package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentifier_Keywords(t *testing.T) {
	tests := map[string]Kind{
		"dee":      DEE,
		"ma":       MA,
		"mana":     MANA,
		"mgbe":     MGBE,
		"gosi":     GOSI,
		"eziokwu":  EZIOKWU,
		"ụgha":     UGHA,
		"aha":      IDENTIFIER,
		"eziokwu2": IDENTIFIER,
	}
	for ident, want := range tests {
		assert.Equal(t, want, LookupIdentifier(ident), "ident=%q", ident)
	}
}

func TestKeywordTable_UsesCanonicalLiteralConstants(t *testing.T) {
	assert.Equal(t, EZIOKWU, Keywords[TrueLiteral])
	assert.Equal(t, UGHA, Keywords[FalseLiteral])
}

func TestToken_String(t *testing.T) {
	tok := New(NUMBER, "42", 3)
	assert.Equal(t, "NUMBER(42)@3", tok.String())
}

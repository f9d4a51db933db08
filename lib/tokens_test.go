package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGateString(t *testing.T) {
	require.Equal(t, "AND", GateAnd.String())
	require.Equal(t, "OR", GateOr.String())
	require.Equal(t, "NOT", GateNot.String())
	require.Equal(t, "NAND", GateNand.String())
	require.Equal(t, "NOR", GateNor.String())
	require.Equal(t, "XOR", GateXor.String())
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "(", Token{Type: TokenTypeParenOpen}.String())
	require.Equal(t, ")", Token{Type: TokenTypeParenClose}.String())
	require.Equal(t, "0", Token{Type: TokenTypeTerminalID}.String())
	require.Equal(t, "65535", Token{Type: TokenTypeTerminalID, Terminal: 65535}.String())
	require.Equal(t, "NAND", Token{Type: TokenTypeGate, Gate: GateNand}.String())
}

func TestGateFromWord(t *testing.T) {
	gate, err := gateFromWord("nAnD")
	require.NoError(t, err)
	require.Equal(t, GateNand, gate)

	_, err = gateFromWord("norx")
	gateErr, ok := err.(*NoSuchGateError)
	require.True(t, ok, "error type")
	require.Equal(t, "NORX", gateErr.Word)
}

package lib

import (
	"strings"
)

// Gate identifies one of the six supported logic gates.
type Gate int

const (
	GateAnd Gate = iota
	GateOr
	GateNot
	GateNand
	GateNor
	GateXor
)

var gatesByName = map[string]Gate{
	"AND":  GateAnd,
	"OR":   GateOr,
	"NOT":  GateNot,
	"NAND": GateNand,
	"NOR":  GateNor,
	"XOR":  GateXor,
}

func (g Gate) String() string {
	switch g {
	case GateAnd:
		return "AND"
	case GateOr:
		return "OR"
	case GateNot:
		return "NOT"
	case GateNand:
		return "NAND"
	case GateNor:
		return "NOR"
	case GateXor:
		return "XOR"
	}
	return "INVALID"
}

// gateFromWord resolves an alphabetic word to a gate. Matching is
// case-insensitive: the word is uppercased before the lookup, and the
// uppercased form is what a NoSuchGateError carries.
func gateFromWord(word string) (Gate, error) {
	upper := strings.ToUpper(word)
	gate, ok := gatesByName[upper]
	if !ok {
		return 0, &NoSuchGateError{Word: upper}
	}
	return gate, nil
}

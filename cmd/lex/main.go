package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/graeme-hill/gatelex/lib"
)

func main() {
	expr := strings.Join(os.Args[1:], " ")
	tokens, err := lib.Tokenize(expr)
	if err != nil {
		panic(err)
	}

	for _, tok := range tokens {
		fmt.Println(tok)
	}
}

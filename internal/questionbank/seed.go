package questionbank

import (
	_ "embed"
	"sync"
)

//go:embed default_bank.yaml
var defaultCatalog []byte

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the built-in catalog. It panics if the embedded catalog
// is invalid, which the package tests guard against.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Parse(defaultCatalog)
		if err != nil {
			panic("questionbank: invalid embedded catalog: " + err.Error())
		}
		defaultBank = b
	})
	return defaultBank
}

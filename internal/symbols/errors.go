package symbols

import "fmt"

func errNotExported(name string) error {
	return fmt.Errorf("symbol '%s' is not exported", name)
}

func errAlreadyDeclared(name string) error {
	return fmt.Errorf("symbol '%s' is already declared", name)
}

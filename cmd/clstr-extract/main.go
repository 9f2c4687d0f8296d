// cmd/clstr-extract/main.go
package main

import (
	"clstr/internal/appshell"
	"clstr/internal/extractapp"
)

func main() {
	appshell.Main(extractapp.RunContext)
}

// cmd/clstr-filter/main.go
package main

import (
	"clstr/internal/appshell"
	"clstr/internal/filterapp"
)

func main() {
	appshell.Main(filterapp.RunContext)
}

// cmd/clstr-stats/main.go
package main

import (
	"clstr/internal/appshell"
	"clstr/internal/statsapp"
)

func main() {
	appshell.Main(statsapp.RunContext)
}

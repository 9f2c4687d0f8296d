// cmd/clstr-top/main.go
package main

import (
	"clstr/internal/appshell"
	"clstr/internal/topapp"
)

func main() {
	appshell.Main(topapp.RunContext)
}

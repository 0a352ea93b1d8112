// cmd/vsq-hypermut/main.go
package main

import (
	"vsq/internal/appshell"
	"vsq/internal/hypermutapp"
)

func main() {
	appshell.Main(hypermutapp.RunContext)
}

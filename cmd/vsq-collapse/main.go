// cmd/vsq-collapse/main.go
package main

import (
	"vsq/internal/appshell"
	"vsq/internal/collapseapp"
)

func main() {
	appshell.Main(collapseapp.RunContext)
}

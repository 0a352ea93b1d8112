// cmd/vsq-diversity/main.go
package main

import (
	"vsq/internal/appshell"
	"vsq/internal/diversityapp"
)

func main() {
	appshell.Main(diversityapp.RunContext)
}

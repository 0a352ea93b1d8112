// cmd/vsq-locator/main.go
package main

import (
	"vsq/internal/appshell"
	"vsq/internal/locatorapp"
)

func main() {
	appshell.Main(locatorapp.RunContext)
}

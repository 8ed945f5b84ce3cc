package main

import (
	"newsstudio/cmd/cmd"
	"newsstudio/internal/logger"
)

func main() {
	logger.Init()
	cmd.Execute()
}

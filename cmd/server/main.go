package main

import (
	"mining_backend/internal/app"
	"mining_backend/pkg/logger"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		logger.L().WithError(err).Fatal("server stopped")
	}
}

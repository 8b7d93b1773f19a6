package main

import (
	"os"

	"compliance-ai/backend/internal/app"
)

// @title           Compliance AI Assistant API
// @version         1.0
// @description     Assessment chat, document chatbot and finding normalization for the compliance assistant.
// @host            localhost:8000
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}

package main

import (
	"os"

	"sheet-ai/backend/internal/app"
)

//	@title			AI Spreadsheet Backend
//	@version		1.0
//	@description	Backend service for AI-assisted spreadsheet calculations and tool-augmented chat.

//	@BasePath	/api

func main() {
	os.Exit(app.Run())
}

package main

import "welfare-fraud-system/internal/bootstrap/ingestion"

// @title Welfare Fraud Detection API
// @version 1.0
// @description Система обнаружения мошенничества в выплатах социальных схем
// @host localhost:8080
// @BasePath /api/v1
func main() { ingestion.StartIngestionService() }

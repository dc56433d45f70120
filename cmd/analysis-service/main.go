package main

import "welfare-fraud-system/internal/bootstrap/analysis"

func main() { analysis.StartAnalysisService() }

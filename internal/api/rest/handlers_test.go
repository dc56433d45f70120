package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"welfare-fraud-system/internal/fraud"
	"welfare-fraud-system/internal/models"
	redismocks "welfare-fraud-system/internal/redis/mocks"
	"welfare-fraud-system/internal/services"
	servicemocks "welfare-fraud-system/internal/services/mocks"
	"welfare-fraud-system/internal/snapshot"
	"welfare-fraud-system/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(handlers *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.POST("/datasets/upload", handlers.HandleUpload)
		api.GET("/datasets", handlers.GetAllDatasets)
		api.GET("/datasets/generate", handlers.GenerateSampleDataset)
		api.GET("/datasets/:dataset_id", handlers.GetDatasetStatus)
		api.DELETE("/datasets", handlers.ClearAllDatasets)

		api.POST("/auth/register", handlers.HandleRegister)
		api.POST("/auth/login", handlers.HandleLogin)
	}

	return router
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandlers_HandleUpload_Success(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	response := &models.UploadResponse{
		DatasetID:       "ds_test_123",
		Status:          "pending_analysis",
		RecordsAccepted: 2,
		Message:         "Dataset accepted for analysis",
	}

	mockService.On("ProcessUpload", mock.AnythingOfType("*models.RawTable"), "claims.csv", "auditor@gov.in").Return(response, nil)

	csv := "Citizen ID,Aadhaar Verified,Claim Count,Account Status,Scheme Amount\nC-001,TRUE,2,ACTIVE,4500\nC-002,FALSE,5,SUSPENDED,9000\n"

	body := &bytes.Buffer{}
	formWriter := multipart.NewWriter(body)
	part, err := formWriter.CreateFormFile("file", "claims.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, formWriter.WriteField("uploaded_by", "auditor@gov.in"))
	require.NoError(t, formWriter.Close())

	req := httptest.NewRequest("POST", "/api/v1/datasets/upload", body)
	req.Header.Set("Content-Type", formWriter.FormDataContentType())
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var result models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "ds_test_123", result.DatasetID)
	assert.Equal(t, "pending_analysis", result.Status)

	mockService.AssertExpectations(t)
}

func TestHandlers_HandleUpload_NoFile(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	req := httptest.NewRequest("POST", "/api/v1/datasets/upload", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result["error"], "No file provided")

	mockService.AssertNotCalled(t, "ProcessUpload")
}

func TestHandlers_HandleUpload_SchemaError(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	schemaErr := &fraud.SchemaError{Missing: []string{"aadhaar_verified"}}
	mockService.On("ProcessUpload", mock.Anything, mock.Anything, mock.Anything).Return(nil, schemaErr)

	body, contentType := multipartUpload(t, "claims.csv", "Citizen ID\nC-001\n")

	req := httptest.NewRequest("POST", "/api/v1/datasets/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result["error"], "missing required columns")
}

func TestHandlers_HandleUpload_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	mockService.On("ProcessUpload", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("broker unavailable"))

	body, contentType := multipartUpload(t, "claims.csv", "Citizen ID\nC-001\n")

	req := httptest.NewRequest("POST", "/api/v1/datasets/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_GetDatasetStatus_Success(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	fraudDetected := 2
	status := &models.DatasetStatusResponse{
		DatasetID:     "ds_test_123",
		SourceFile:    "claims.csv",
		RecordCount:   10,
		Status:        "analyzed",
		FraudDetected: &fraudDetected,
	}

	mockService.On("GetDatasetStatus", "ds_test_123").Return(status, nil)

	req := httptest.NewRequest("GET", "/api/v1/datasets/ds_test_123", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.DatasetStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "ds_test_123", result.DatasetID)
	assert.Equal(t, 2, *result.FraudDetected)

	mockService.AssertExpectations(t)
}

func TestHandlers_GetDatasetStatus_NotFound(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	mockService.On("GetDatasetStatus", "ds_missing").Return(nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/datasets/ds_missing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_GetAllDatasets(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	datasets := []*models.DatasetStatusResponse{
		{DatasetID: "ds_2", Status: "analyzed"},
		{DatasetID: "ds_1", Status: "pending_analysis"},
	}

	mockService.On("GetAllDatasets", 100).Return(datasets, nil)

	req := httptest.NewRequest("GET", "/api/v1/datasets", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result, "datasets")

	mockService.AssertExpectations(t)
}

func TestHandlers_GetAllDatasets_WithLimit(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	mockService.On("GetAllDatasets", 25).Return([]*models.DatasetStatusResponse{}, nil)

	req := httptest.NewRequest("GET", "/api/v1/datasets?limit=25", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandlers_ClearAllDatasets(t *testing.T) {
	mockService := new(servicemocks.MockDatasetService)
	handlers := NewHandlers(mockService, new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	mockService.On("ClearAllDatasets").Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/datasets", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result["message"], "All datasets cleared successfully")

	mockService.AssertExpectations(t)
}

func TestHandlers_GenerateSampleDataset(t *testing.T) {
	handlers := NewHandlers(new(servicemocks.MockDatasetService), new(servicemocks.MockAuthService))
	router := setupTestRouter(handlers)

	req := httptest.NewRequest("GET", "/api/v1/datasets/generate?count=10", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.RawTable
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Headers, 5)
	assert.Len(t, result.Rows, 10)
}

func TestHandlers_HandleRegister_Success(t *testing.T) {
	mockAuth := new(servicemocks.MockAuthService)
	handlers := NewHandlers(new(servicemocks.MockDatasetService), mockAuth)
	router := setupTestRouter(handlers)

	response := &models.AuthResponse{
		Message: "Officer registered successfully",
		User: models.OfficerInfo{
			Name:       "Asha Verma",
			Email:      "asha.verma@gov.in",
			Department: "Pension",
			Role:       "Welfare Audit Officer",
		},
	}

	mockAuth.On("Register", mock.AnythingOfType("*models.RegisterRequest")).Return(response, nil)

	body, _ := json.Marshal(models.RegisterRequest{
		Name:       "Asha Verma",
		Email:      "asha.verma@gov.in",
		Password:   "strong-password",
		Department: "Pension",
	})

	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var result models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Welfare Audit Officer", result.User.Role)

	mockAuth.AssertExpectations(t)
}

func TestHandlers_HandleRegister_ValidationError(t *testing.T) {
	mockAuth := new(servicemocks.MockAuthService)
	handlers := NewHandlers(new(servicemocks.MockDatasetService), mockAuth)
	router := setupTestRouter(handlers)

	mockAuth.On("Register", mock.Anything).Return(nil, &services.ValidationError{Message: "Password must be at least 8 characters"})

	body, _ := json.Marshal(models.RegisterRequest{
		Name:       "Asha Verma",
		Email:      "asha.verma@gov.in",
		Password:   "short",
		Department: "Pension",
	})

	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result["error"], "at least 8 characters")
}

func TestHandlers_HandleRegister_DuplicateEmail(t *testing.T) {
	mockAuth := new(servicemocks.MockAuthService)
	handlers := NewHandlers(new(servicemocks.MockDatasetService), mockAuth)
	router := setupTestRouter(handlers)

	mockAuth.On("Register", mock.Anything).Return(nil, storage.ErrDuplicateEmail)

	body, _ := json.Marshal(models.RegisterRequest{
		Name:       "Asha Verma",
		Email:      "asha.verma@gov.in",
		Password:   "strong-password",
		Department: "Pension",
	})

	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlers_HandleLogin_Success(t *testing.T) {
	mockAuth := new(servicemocks.MockAuthService)
	handlers := NewHandlers(new(servicemocks.MockDatasetService), mockAuth)
	router := setupTestRouter(handlers)

	response := &models.AuthResponse{Message: "Login successful"}
	mockAuth.On("Login", mock.AnythingOfType("*models.LoginRequest")).Return(response, nil)

	body, _ := json.Marshal(models.LoginRequest{Email: "asha.verma@gov.in", Password: "strong-password"})

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandlers_HandleLogin_InvalidCredentials(t *testing.T) {
	mockAuth := new(servicemocks.MockAuthService)
	handlers := NewHandlers(new(servicemocks.MockDatasetService), mockAuth)
	router := setupTestRouter(handlers)

	mockAuth.On("Login", mock.Anything).Return(nil, services.ErrInvalidCredentials)

	body, _ := json.Marshal(models.LoginRequest{Email: "asha.verma@gov.in", Password: "wrong"})

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func setupReportRouter(handlers *ReportHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", handlers.GetDashboard)
		api.GET("/claims", handlers.GetClaims)
		api.GET("/fraud-alerts", handlers.GetFraudAlerts)
		api.GET("/watchlist", handlers.GetWatchlist)
		api.POST("/simulate-attack", handlers.SimulateAttack)
	}

	return router
}

func reportHandlersWithSnapshot(t *testing.T, redisClient *redismocks.MockClientInterface) *ReportHandlers {
	t.Helper()

	cache := snapshot.NewCache()
	analyzer := fraud.NewAnalyzer(fraud.LedgerRules())

	records := []models.Record{
		{CitizenID: "C-001", AadhaarVerified: "TRUE", AccountStatus: "ACTIVE", SchemeAmount: 1000},
		{CitizenID: "C-002", AadhaarVerified: "FALSE", ClaimCount: 5, AccountStatus: "CLOSED", SchemeAmount: 9000},
	}
	analyzed, summary := analyzer.Analyze(records)
	cache.Replace("ds_1", analyzed, summary)

	return NewReportHandlers(services.NewReportService(cache, fraud.LedgerRules()), redisClient)
}

func TestReportHandlers_GetDashboard(t *testing.T) {
	handlers := reportHandlersWithSnapshot(t, new(redismocks.MockClientInterface))
	router := setupReportRouter(handlers)

	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "ds_1", result.DatasetID)
	assert.Equal(t, 2, result.Summary.TotalTransactions)
	assert.Equal(t, 1, result.Summary.FraudDetected)
	assert.Len(t, result.Transactions, 2)
}

func TestReportHandlers_GetDashboard_NoSnapshot(t *testing.T) {
	cache := snapshot.NewCache()
	handlers := NewReportHandlers(services.NewReportService(cache, fraud.LedgerRules()), new(redismocks.MockClientInterface))
	router := setupReportRouter(handlers)

	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "No dataset uploaded", result["error"])
}

func TestReportHandlers_GetClaims(t *testing.T) {
	handlers := reportHandlersWithSnapshot(t, new(redismocks.MockClientInterface))
	router := setupReportRouter(handlers)

	req := httptest.NewRequest("GET", "/api/v1/claims?limit=1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result["claims"], 1)
	assert.Equal(t, "C-002", result["claims"][0].CitizenID)
}

func TestReportHandlers_GetFraudAlerts(t *testing.T) {
	handlers := reportHandlersWithSnapshot(t, new(redismocks.MockClientInterface))
	router := setupReportRouter(handlers)

	req := httptest.NewRequest("GET", "/api/v1/fraud-alerts", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.FraudAlertsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, "C-002", result.Alerts[0].CitizenID)
}

func TestReportHandlers_GetWatchlist(t *testing.T) {
	redisClient := new(redismocks.MockClientInterface)
	redisClient.On("GetWatchlist").Return([]string{"C-002", "C-777"}, nil)

	handlers := reportHandlersWithSnapshot(t, redisClient)
	router := setupReportRouter(handlers)

	req := httptest.NewRequest("GET", "/api/v1/watchlist", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []string{"C-002", "C-777"}, result["watchlist"])

	redisClient.AssertExpectations(t)
}

func TestReportHandlers_SimulateAttack(t *testing.T) {
	handlers := reportHandlersWithSnapshot(t, new(redismocks.MockClientInterface))
	router := setupReportRouter(handlers)

	req := httptest.NewRequest("POST", "/api/v1/simulate-attack", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.ThreatAlert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "attack_detected", result.Status)
	assert.NotEmpty(t, result.Threat)
	assert.Equal(t, "Trigger audit + freeze suspicious accounts", result.RecommendedAction)
}

package models

import "time"

// --- API Requests ---

type DemandPredictionRequest struct {
	CompanyID int      `json:"company_id"`
	Budget    *float64 `json:"budget,omitempty"`
	DaysAhead int      `json:"days_ahead"`
}

type PaymentRecommendationRequest struct {
	CompanyID int `json:"company_id"`
}

type BusinessInsightRequest struct {
	CompanyID int `json:"company_id"`
}

type BusinessQueryRequest struct {
	CompanyID int    `json:"company_id"`
	Query     string `json:"query"`
}

type TrainModelRequest struct {
	CompanyID int `json:"company_id"`
}

// --- API Responses ---

type DemandPredictionResponse struct {
	Predictions     []ItemForecast   `json:"predictions"`
	Recommendations []Recommendation `json:"recommendations"`
	Source          string           `json:"source"`
	Timestamp       time.Time        `json:"timestamp"`
}

type PaymentRecommendationResponse struct {
	Recommendations []CustomerRecommendation `json:"recommendations"`
	RiskAssessment  RiskAssessment           `json:"risk_assessment"`
	Timestamp       time.Time                `json:"timestamp"`
}

type BusinessInsightResponse struct {
	Insights  []Insight       `json:"insights"`
	Summary   BusinessSummary `json:"summary"`
	Timestamp time.Time       `json:"timestamp"`
}

type QueryResponse struct {
	Response    string    `json:"response"`
	Confidence  float64   `json:"confidence"`
	DataSources []string  `json:"data_sources"`
	Source      string    `json:"source"`
	Timestamp   time.Time `json:"timestamp"`
}

type TrainResponse struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	DemandModel   bool      `json:"demand_model"`
	PaymentModel  bool      `json:"payment_model"`
	BusinessModel bool      `json:"business_model"`
	Timestamp     time.Time `json:"timestamp"`
}

// --- Model Status ---

type DemandModelStatus struct {
	IsTrained           bool       `json:"is_trained"`
	LastTrained         *time.Time `json:"last_trained"`
	DataPointsAvailable int        `json:"data_points_available"`
	ModelAccuracy       *float64   `json:"model_accuracy"`
	ReadyForPrediction  bool       `json:"ready_for_prediction"`
}

type PaymentModelStatus struct {
	IsTrained               bool       `json:"is_trained"`
	LastTrained             *time.Time `json:"last_trained"`
	ModelAccuracy           *float64   `json:"model_accuracy"`
	CustomersAnalyzed       int        `json:"customers_analyzed"`
	ReadyForRecommendations bool       `json:"ready_for_recommendations"`
}

type BusinessModelStatus struct {
	IsTrained         bool       `json:"is_trained"`
	LastTrained       *time.Time `json:"last_trained"`
	DataSources       []string   `json:"data_sources"`
	InsightsGenerated int        `json:"insights_generated"`
	ReadyForAnalysis  bool       `json:"ready_for_analysis"`
}

type ModelStatusResponse struct {
	CompanyID     int                 `json:"company_id"`
	DemandModel   DemandModelStatus   `json:"demand_model"`
	PaymentModel  PaymentModelStatus  `json:"payment_model"`
	BusinessModel BusinessModelStatus `json:"business_model"`
	Timestamp     time.Time           `json:"timestamp"`
}

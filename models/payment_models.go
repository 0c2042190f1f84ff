package models

import "time"

// --- Payment Recommendations ---

// PaymentStrategy describes how to chase payments from a customer in
// a given risk band.
type PaymentStrategy struct {
	Approach            string   `json:"approach"`
	CommunicationStyle  string   `json:"communication_style"`
	FollowUpIntervals   []int    `json:"follow_up_intervals"`
	CollectionMethods   []string `json:"collection_methods"`
	EscalationThreshold int      `json:"escalation_threshold"`
}

// CustomerRecommendation is the per-customer payment collection plan.
type CustomerRecommendation struct {
	CustomerID           int             `json:"customer_id"`
	CustomerName         string          `json:"customer_name"`
	CurrentCreditBalance float64         `json:"current_credit_balance"`
	RecommendedPayment   float64         `json:"recommended_payment"`
	RecommendedFrequency string          `json:"recommended_frequency"`
	RiskLevel            string          `json:"risk_level"`
	RiskScore            int             `json:"risk_score"`
	PaymentHistoryScore  float64         `json:"payment_history_score"`
	AvgPaymentDays       float64         `json:"avg_payment_days"`
	PaymentStrategy      PaymentStrategy `json:"payment_strategy"`
	Priority             string          `json:"priority"`
	LastUpdated          time.Time       `json:"last_updated"`
	Note                 string          `json:"note,omitempty"`
}

// RiskAssessment summarizes payment risk across the whole customer
// base of a company.
type RiskAssessment struct {
	OverallRiskLevel       string    `json:"overall_risk_level"`
	TotalCustomers         int       `json:"total_customers"`
	HighRiskCount          int       `json:"high_risk_count"`
	MediumRiskCount        int       `json:"medium_risk_count"`
	LowRiskCount           int       `json:"low_risk_count"`
	RiskPercentage         float64   `json:"risk_percentage"`
	TotalOutstandingAmount float64   `json:"total_outstanding_amount"`
	AveragePaymentDays     float64   `json:"average_payment_days"`
	OnTimePaymentRate      float64   `json:"on_time_payment_rate"`
	Recommendations        []string  `json:"recommendations"`
	AssessmentDate         time.Time `json:"assessment_date"`
	Note                   string    `json:"note,omitempty"`
}

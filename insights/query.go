package insights

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-service/models"
	"ai-service/utils"
)

// Answer provenance labels.
const (
	SourceDeterministic = "deterministic"
	SourceGemini        = "gemini"
)

var (
	profitWords    = []string{"profit", "margin", "loss"}
	salesWords     = []string{"sale", "revenue", "income"}
	expenseWords   = []string{"expense", "cost", "spend"}
	customerWords  = []string{"customer", "client"}
	inventoryWords = []string{"inventory", "stock", "product"}
)

// Query answers a business question by keyword routing over the
// company's data. Topics are checked in a fixed order, so a question
// touching several topics gets the first match. Unrecognized
// questions get the generic help answer and failures degrade to an
// apology with near-zero confidence.
func (e *Engine) Query(companyID int, query string) (ans models.QueryAnswer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[query] processing failed for company %d: %v", companyID, r)
			ans = models.QueryAnswer{
				Answer:      "I apologize, but I'm having trouble processing your query right now. Please try rephrasing your question.",
				Confidence:  0.1,
				DataSources: []string{},
				Source:      SourceDeterministic,
			}
		}
	}()

	q := strings.ToLower(query)
	switch {
	case containsAny(q, profitWords):
		return e.profitAnswer(companyID)
	case containsAny(q, salesWords):
		return e.salesAnswer(companyID)
	case containsAny(q, expenseWords):
		return e.expenseAnswer(companyID)
	case containsAny(q, customerWords):
		return e.customerAnswer(companyID)
	case containsAny(q, inventoryWords):
		return e.inventoryAnswer(companyID)
	default:
		return generalAnswer()
	}
}

// QueryWithNarrative answers the question and, when a narrator is
// configured, rewrites the answer text through the language model.
// Narration failures keep the deterministic answer.
func (e *Engine) QueryWithNarrative(ctx context.Context, companyID int, query string) models.QueryAnswer {
	ans := e.Query(companyID, query)
	if e.narrator == nil {
		return ans
	}
	text, err := e.narrator.Rephrase(ctx, query, ans.Answer)
	if err != nil {
		log.Printf("[query] narrative failed, keeping deterministic answer: %v", err)
		return ans
	}
	ans.Answer = text
	ans.Source = SourceGemini
	return ans
}

func (e *Engine) profitAnswer(companyID int) models.QueryAnswer {
	margin := avgMargin(e.gen.Business(companyID))
	verdict := "There's room for improvement."
	if margin >= 25 {
		verdict = "This is excellent!"
	}
	return models.QueryAnswer{
		Answer:      fmt.Sprintf("Your average profit margin is %.1f%%. %s", margin, verdict),
		Confidence:  0.9,
		DataSources: []string{"sales_data", "profit_analysis"},
		Source:      SourceDeterministic,
	}
}

func (e *Engine) salesAnswer(companyID int) models.QueryAnswer {
	sales := avgSales(e.gen.Business(companyID))
	verdict := "Room for growth."
	if sales >= 100000 {
		verdict = "Great performance!"
	}
	return models.QueryAnswer{
		Answer:      fmt.Sprintf("Your average monthly sales are Rs %s. %s", utils.FormatAmount(sales), verdict),
		Confidence:  0.9,
		DataSources: []string{"sales_data"},
		Source:      SourceDeterministic,
	}
}

func (e *Engine) expenseAnswer(companyID int) models.QueryAnswer {
	expenses := avgExpenses(e.gen.Business(companyID))
	verdict := "Consider cost optimization."
	if expenses <= 50000 {
		verdict = "Well controlled!"
	}
	return models.QueryAnswer{
		Answer:      fmt.Sprintf("Your average monthly expenses are Rs %s. %s", utils.FormatAmount(expenses), verdict),
		Confidence:  0.9,
		DataSources: []string{"expense_data"},
		Source:      SourceDeterministic,
	}
}

func (e *Engine) customerAnswer(companyID int) models.QueryAnswer {
	retention := avgRetention(e.gen.Business(companyID))
	verdict := "Focus on customer satisfaction."
	if retention >= 0.8 {
		verdict = "Excellent retention!"
	}
	return models.QueryAnswer{
		Answer:      fmt.Sprintf("Your customer retention rate is %s. %s", utils.FormatPercent(retention), verdict),
		Confidence:  0.9,
		DataSources: []string{"customer_data"},
		Source:      SourceDeterministic,
	}
}

func (e *Engine) inventoryAnswer(companyID int) models.QueryAnswer {
	turnover := avgTurnover(e.gen.Business(companyID))
	verdict := "Consider faster turnover."
	if turnover >= 6 {
		verdict = "Well optimized!"
	}
	return models.QueryAnswer{
		Answer:      fmt.Sprintf("Your inventory turns %.1f times per year. %s", turnover, verdict),
		Confidence:  0.9,
		DataSources: []string{"inventory_data"},
		Source:      SourceDeterministic,
	}
}

func generalAnswer() models.QueryAnswer {
	return models.QueryAnswer{
		Answer: "I can help you analyze your sales, profits, expenses, customers, and inventory. " +
			`Try asking specific questions like "What is my profit margin?" or "How are my sales trending?"`,
		Confidence:  0.5,
		DataSources: []string{"business_intelligence"},
		Source:      SourceDeterministic,
	}
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

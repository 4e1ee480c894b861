package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation. It can
// ask the other experts through function calls.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user owns (or owned) a home and has just computed a full return analysis
			of that investment: costs, mortgage, sale proceeds, IRR, and a comparison
			against a stock-market benchmark.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. Figures about the user's investment always
			come from the Analyst, never from your own guesses.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert that knows the computed analysis. The full
// markdown report is part of its system instruction, so every answer is
// grounded in the actual numbers.
func NewAnalyst(report string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is the investment Analyst. He has the complete return analysis
		of the user's home investment: every cost, the mortgage amortization, the sale
		proceeds, the IRR, and the benchmark comparison.
		Ask the Analyst whenever you need a figure from the user's analysis.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst. You answer questions about one specific home
			investment using only the analysis report below. Quote figures exactly as
			they appear; say so when the report does not contain the answer.

			` + report}}},
		},
	}
}

// NewAdvisor creates the expert that knows markets and financial products,
// grounded through Google Search.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert financial advisor, well aware of real-estate
		markets, mortgage products and index funds, and of the latest related news.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in real-estate and financial markets. You leverage Google
			Search to ground your assertions. You can get the latest news and relate
			them to the user's situation.
		`}}},
		},
	}
}

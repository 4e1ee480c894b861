package homeinvest

import (
	"strings"
	"testing"
)

const sampleStats = `{
	"symbol": "SPY",
	"returns": {
		"annualized": 7.1,
		"ytd": 12.4
	}
}`

func TestBenchmarkRate(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Percent
	}{
		{"default path", "", 7.1},
		{"explicit path", "$.returns.annualized", 7.1},
		{"other field", "$.returns.ytd", 12.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BenchmarkRate(strings.NewReader(sampleStats), tt.path)
			if err != nil {
				t.Fatalf("BenchmarkRate: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("rate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBenchmarkRateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"not json", "annualized: 7.1", ""},
		{"missing field", `{"returns": {}}`, ""},
		{"not a number", `{"returns": {"annualized": "seven"}}`, ""},
		{"bad path", sampleStats, "$.returns["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BenchmarkRate(strings.NewReader(tt.doc), tt.path); err == nil {
				t.Error("BenchmarkRate succeeded, want error")
			}
		})
	}
}

package homeinvest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultBenchmarkRatePath extracts the annualized return from a stats
// document shaped like:
//
//	{
//	    "symbol": "SPY",
//	    "returns": {
//	        "annualized": 7.1,
//	        "ytd": 12.4
//	    }
//	}
const DefaultBenchmarkRatePath = "$.returns.annualized"

// BenchmarkRate reads a JSON stats document and extracts the benchmark
// annual return (in percent points) at the given jsonpath expression.
// An empty path uses DefaultBenchmarkRatePath.
func BenchmarkRate(r io.Reader, path string) (Percent, error) {
	if path == "" {
		path = DefaultBenchmarkRatePath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("cannot decode benchmark stats: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate %q on benchmark stats: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("benchmark rate at %q is not a number: %v", path, jval)
	}
	return Percent(val), nil
}

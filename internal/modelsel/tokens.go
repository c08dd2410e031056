package modelsel

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// DefaultEncodingModel selects the BPE encoding used by CountTokens when no
// model is given.
const DefaultEncodingModel = "gpt-4"

// CountTokens returns an exact BPE token count for text using the encoding
// of model. It exists to sanity-check EstimateTokens; the encoding may have
// to be fetched on first use.
func CountTokens(text, model string) (int, error) {
	if model == "" {
		model = DefaultEncodingModel
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return 0, fmt.Errorf("loading encoding for model %q: %w", model, err)
	}
	return len(enc.Encode(text, nil, nil)), nil
}

package format

import (
	"github.com/charmbracelet/log"
	tiktoken "github.com/pkoukk/tiktoken-go"
)

// charsPerToken is the rough fallback ratio used when the real tokenizer
// cannot be loaded.
const charsPerToken = 4

// estimatorEncoding is the BPE encoding used for token estimates.
const estimatorEncoding = "cl100k_base"

// Estimator estimates the token count of rendered documents. With a
// loaded encoding it counts real BPE tokens; otherwise it falls back to a
// character-ratio approximation.
type Estimator struct {
	enc *tiktoken.Tiktoken
}

// NewEstimator loads the tokenizer, falling back silently to the
// character approximation when the encoding is unavailable (for example
// with no network access to fetch the BPE ranks).
func NewEstimator() *Estimator {
	enc, err := tiktoken.GetEncoding(estimatorEncoding)
	if err != nil {
		log.Debug("Tokenizer unavailable, using character approximation", "encoding", estimatorEncoding, "error", err)
		return &Estimator{}
	}
	return &Estimator{enc: enc}
}

// Count returns the estimated token count for text.
func (e *Estimator) Count(text string) int {
	if e.enc != nil {
		return len(e.enc.EncodeOrdinary(text))
	}
	return len(text) / charsPerToken
}

package trade

import "time"

// Status is the terminal outcome of one trade's pipeline run.
type Status int32

const (
	StatusSuccess Status = iota
	StatusValidationFailed
	StatusEnrichmentFailed
	StatusProcessingFailed
	StatusDatabaseFailed
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusValidationFailed:
		return "VALIDATION_FAILED"
	case StatusEnrichmentFailed:
		return "ENRICHMENT_FAILED"
	case StatusProcessingFailed:
		return "PROCESSING_FAILED"
	case StatusDatabaseFailed:
		return "DATABASE_FAILED"
	case StatusTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ProcessingResult is produced exactly once per dispatched trade.
// ErrorMessage is non-empty iff Status != StatusSuccess.
type ProcessingResult struct {
	TradeID          string    `json:"trade_id"`
	Status           Status    `json:"status"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	ProcessedAt      time.Time `json:"processed_at"`
}

// Success builds a successful result.
func Success(tradeID string) ProcessingResult {
	return ProcessingResult{
		TradeID:     tradeID,
		Status:      StatusSuccess,
		ProcessedAt: time.Now(),
	}
}

// Failure builds a failed result with the given status and message.
func Failure(tradeID string, status Status, errorMessage string) ProcessingResult {
	return ProcessingResult{
		TradeID:      tradeID,
		Status:       status,
		ErrorMessage: errorMessage,
		ProcessedAt:  time.Now(),
	}
}

// Timeout builds a timeout result with the fixed timeout message.
func Timeout(tradeID string) ProcessingResult {
	return ProcessingResult{
		TradeID:      tradeID,
		Status:       StatusTimeout,
		ErrorMessage: "Processing timeout exceeded",
		ProcessedAt:  time.Now(),
	}
}

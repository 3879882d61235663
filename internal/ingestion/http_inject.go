package ingestion

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// InjectHandler accepts one trade payload over HTTP and runs it through
// the dispatcher inline. Admin/testing surface, not the throughput
// path: the response body is the ProcessingResult.
type InjectHandler struct {
	dispatcher TradeDispatcher
	log        zerolog.Logger
}

func NewInjectHandler(dispatcher TradeDispatcher, logger zerolog.Logger) *InjectHandler {
	return &InjectHandler{dispatcher: dispatcher, log: logger}
}

func (h *InjectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	tr, err := ParseTrade(body)
	if err != nil {
		h.log.Warn().Err(err).Msg("inject: unparseable trade")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	h.log.Info().Str("trade_id", tr.ID()).Str("trade_type", tr.TradeType().String()).
		Msg("inject: received trade")

	result := h.dispatcher.Process(tr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ross/mindnotes/internal/live"
)

// EventsHandler streams feed events over Server-Sent Events
// (GET /api/events). Note snapshots and image-directory events share the
// same stream; the retained snapshot is delivered right after connect.
type EventsHandler struct {
	feed *live.Feed
}

// NewEventsHandler creates an SSE handler over the given feed.
func NewEventsHandler(feed *live.Feed) *EventsHandler {
	return &EventsHandler{feed: feed}
}

func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := h.feed.Subscribe()
	defer h.feed.Unsubscribe(ch)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(ev.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, payload)
			flusher.Flush()
		}
	}
}

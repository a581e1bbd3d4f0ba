package restserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tmcasey/channelflow/internal/storage"
	"github.com/tmcasey/channelflow/pkg/export"
	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

const defaultListLimit = 50

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{controller: ctrl}
}

// calculationResponse is the JSON body returned for a computed or stored
// calculation.
type calculationResponse struct {
	ID        string                          `json:"id"`
	CreatedAt string                          `json:"created_at"`
	Profile   *hydraulics.WaterSurfaceProfile `json:"profile"`
	Summary   export.Summary                  `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Calculate computes (or retrieves) the profile for the posted parameters.
func (h *Handlers) Calculate(w http.ResponseWriter, req *http.Request) {
	var params hydraulics.ChannelParams
	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err))
		return
	}

	rec, err := h.controller.manager.Calculate(req.Context(), params)
	if err != nil {
		h.writeError(w, statusForError(err), err)
		return
	}
	h.writeCalculation(w, http.StatusOK, rec)
}

// Get returns a stored calculation by ID.
func (h *Handlers) Get(w http.ResponseWriter, req *http.Request) {
	rec, err := h.controller.manager.Get(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, statusForError(err), err)
		return
	}
	h.writeCalculation(w, http.StatusOK, rec)
}

// List returns summaries of recent calculations.
func (h *Handlers) List(w http.ResponseWriter, req *http.Request) {
	limit := defaultListLimit
	if v := req.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		limit = parsed
	}

	list, err := h.controller.manager.List(req.Context(), limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []storage.CalculationSummary{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

// Export renders a stored calculation as csv, json, or html.
func (h *Handlers) Export(w http.ResponseWriter, req *http.Request) {
	rec, err := h.controller.manager.Get(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, statusForError(err), err)
		return
	}

	format := req.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.ID+".csv"))
		err = export.WriteCSV(w, rec.Profile)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		err = export.WriteJSON(w, rec.Profile)
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = export.WriteHTML(w, rec.Profile)
	default:
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported export format %q", format))
		return
	}
	if err != nil {
		h.controller.logger.Errorf("export of calculation %s failed: %v", rec.ID, err)
	}
}

// Health is a liveness endpoint.
func (h *Handlers) Health(w http.ResponseWriter, req *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) writeCalculation(w http.ResponseWriter, status int, rec *storage.CalculationRecord) {
	h.writeJSON(w, status, calculationResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Profile:   rec.Profile,
		Summary:   export.Summarize(rec.Profile),
	})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.controller.logger.Errorf("encoding response: %v", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusForError maps engine and storage errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, hydraulics.ErrInvalidInput),
		errors.Is(err, hydraulics.ErrConfiguration),
		errors.Is(err, hydraulics.ErrGeometricDomain):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

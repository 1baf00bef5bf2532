package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kantodex/kantodex/pkg/contact"
	"github.com/kantodex/kantodex/pkg/dex"
	"github.com/kantodex/kantodex/pkg/display"
)

// stateResponse is the wire form of a display state.
type stateResponse struct {
	Surface     string        `json:"surface"`
	Suggestions []*dex.Entity `json:"suggestions,omitempty"`
	Results     []*dex.Entity `json:"results,omitempty"`
	Message     string        `json:"message,omitempty"`
	Input       string        `json:"input"`
}

func writeState(w http.ResponseWriter, st display.State) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stateResponse{
		Surface:     st.Surface.String(),
		Suggestions: st.Suggestions,
		Results:     st.Results,
		Message:     st.Message,
		Input:       st.Input,
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeState(w, s.Coordinator.State())
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	writeState(w, s.Coordinator.Input(r.Context(), r.URL.Query().Get("q")))
}

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeState(w, s.Coordinator.Submit(r.Context(), req.Query))
}

func (s *Server) handleType(w http.ResponseWriter, r *http.Request) {
	writeState(w, s.Coordinator.FilterType(r.Context(), r.PathValue("label")))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	writeState(w, s.Coordinator.Reset())
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "submission log not configured", http.StatusServiceUnavailable)
		return
	}
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := contact.Validate(sub); err != nil {
		if errors.Is(err, contact.ErrInvalidSubmission) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.DB.Append(r.Context(), sub.Name, sub.Email, sub.Message); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "submission log not configured", http.StatusServiceUnavailable)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	subs, err := s.DB.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subs)
}

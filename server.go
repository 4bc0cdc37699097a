package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Request body of the sensitivity endpoint.
type SensitivityRequest struct {
	Parameter    string        `json:"parameter"`
	RangePercent float64       `json:"range_percent"`
	NumPoints    int           `json:"num_points"`
	Input        *BiomassInput `json:"input"`
}

// Request body of the optimization endpoint.
type OptimizationRequest struct {
	Parameter   string                   `json:"parameter"`
	Objective   string                   `json:"objective"`
	Constraints *OptimizationConstraints `json:"constraints"`
	Input       *BiomassInput            `json:"input"`
}

// JSON and websocket boundary of the calculation core.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

func write_json(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("err: %v", err)
	}
}

func write_error(w http.ResponseWriter, status int, err error) {
	write_json(w, status, map[string]string{"detail": err.Error()})
}

/*
Decode a BiomassInput request body; an absent field set falls back to the
reference bagasse input. Every request is validated before any
calculation runs.
*/
func decode_input(body *json.RawMessage) (*BiomassInput, error) {
	in := default_biomass_input()
	if body != nil && len(*body) > 0 {
		if err := json.Unmarshal(*body, in); err != nil {
			return nil, err
		}
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// POST /api/calculate
func (self *Server) handle_calculate(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	in, err := decode_input(&body)
	if err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	write_json(w, http.StatusOK, NewCombustionCalculator(in).calculate_all())
}

// POST /api/sensitivity
func (self *Server) handle_sensitivity(w http.ResponseWriter, r *http.Request) {
	req := SensitivityRequest{RangePercent: 50, NumPoints: 20}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	parameter, err := parse_parameter(req.Parameter)
	if err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	in := req.Input
	if in == nil {
		in = default_biomass_input()
	}
	if err := in.validate(); err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	analysis, err := NewSensitivityAnalyzer(in).analyze_parameter(parameter, req.RangePercent, req.NumPoints)
	if err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	write_json(w, http.StatusOK, analysis)
}

// POST /api/optimize
func (self *Server) handle_optimize(w http.ResponseWriter, r *http.Request) {
	req := OptimizationRequest{Objective: string(ObjectiveEfficiency)}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	parameter, err := parse_parameter(req.Parameter)
	if err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}
	objective, err := parse_objective(req.Objective)
	if err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	in := req.Input
	if in == nil {
		in = default_biomass_input()
	}
	if err := in.validate(); err != nil {
		write_error(w, http.StatusBadRequest, err)
		return
	}

	outcome := NewOptimizer(in).optimize_parameter(parameter, objective, req.Constraints)
	write_json(w, http.StatusOK, outcome)
}

// GET /api/cities
func (self *Server) handle_cities(w http.ResponseWriter, r *http.Request) {
	write_json(w, http.StatusOK, get_all_cities())
}

// serve_ws handles websocket requests from the peer.
func (self *Server) serve_ws(w http.ResponseWriter, r *http.Request) {
	conn, err := self.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("err: %v", err)
		return
	}
	defer conn.Close()

	hub := NewHub(conn)
	go hub.handle_request()
	go hub.handle_response()

	for {
		var msg Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("err: %v", err)
			return
		}
		hub.msg <- msg
	}
}

// Build the route table of the boundary.
func (self *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate", self.handle_calculate)
	mux.HandleFunc("/api/sensitivity", self.handle_sensitivity)
	mux.HandleFunc("/api/optimize", self.handle_optimize)
	mux.HandleFunc("/api/cities", self.handle_cities)
	mux.HandleFunc("/ws", self.serve_ws)
	return mux
}

func (self *Server) Serve() {
	log.Printf("Listening on `%s`", self.addr)
	if err := http.ListenAndServe(self.addr, self.routes()); err != nil {
		log.Fatalf("ListenAndServe: %v", err)
	}
}

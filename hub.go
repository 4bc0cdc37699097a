package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// One websocket message.
type Msg struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

/*
Hub dispatches the messages of one websocket connection to the
calculation core and pushes the replies back to the client.
*/
type Hub struct {
	conn *websocket.Conn
	// request
	msg chan Msg
	// response
	reply chan Msg
}

func NewHub(conn *websocket.Conn) *Hub {
	return &Hub{
		conn:  conn,
		msg:   make(chan Msg, 10),
		reply: make(chan Msg, 10),
	}
}

func (self *Hub) push(msg_type string, body interface{}) {
	content, err := json.Marshal(body)
	if err != nil {
		log.Printf("err: %v", err)
		return
	}
	self.reply <- Msg{Type: msg_type, Content: content}
}

func (self *Hub) push_error(err error) {
	self.push("error", map[string]string{"detail": err.Error()})
}

func (self *Hub) handle_response() {
	for {
		select {
		case reply := <-self.reply:
			if err := self.conn.WriteJSON(&reply); err != nil {
				log.Printf("err: %v", err)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (self *Hub) handle_request() {
	for msg := range self.msg {
		switch msg.Type {
		case "calculate":
			in, err := decode_input(&msg.Content)
			if err != nil {
				self.push_error(err)
				continue
			}
			self.push("results", NewCombustionCalculator(in).calculate_all())

		case "sensitivity":
			req := SensitivityRequest{RangePercent: 50, NumPoints: 20}
			if err := json.Unmarshal(msg.Content, &req); err != nil {
				self.push_error(err)
				continue
			}
			analysis, err := self.run_sensitivity(&req)
			if err != nil {
				self.push_error(err)
				continue
			}
			self.push("sensitivity", analysis)

		case "optimize":
			var req OptimizationRequest
			if err := json.Unmarshal(msg.Content, &req); err != nil {
				self.push_error(err)
				continue
			}
			outcome, err := self.run_optimization(&req)
			if err != nil {
				self.push_error(err)
				continue
			}
			self.push("optimize", outcome)

		case "cities":
			self.push("cities", get_all_cities())

		default:
			self.push_error(fmt.Errorf("unknown message type `%s`", msg.Type))
		}
	}
}

func (self *Hub) run_sensitivity(req *SensitivityRequest) (*ParameterAnalysis, error) {
	parameter, err := parse_parameter(req.Parameter)
	if err != nil {
		return nil, err
	}

	in := req.Input
	if in == nil {
		in = default_biomass_input()
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	return NewSensitivityAnalyzer(in).analyze_parameter(parameter, req.RangePercent, req.NumPoints)
}

func (self *Hub) run_optimization(req *OptimizationRequest) (*OptimizationOutcome, error) {
	parameter, err := parse_parameter(req.Parameter)
	if err != nil {
		return nil, err
	}

	objective_name := req.Objective
	if objective_name == "" {
		objective_name = string(ObjectiveEfficiency)
	}
	objective, err := parse_objective(objective_name)
	if err != nil {
		return nil, err
	}

	in := req.Input
	if in == nil {
		in = default_biomass_input()
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	return NewOptimizer(in).optimize_parameter(parameter, objective, req.Constraints), nil
}

package board

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"seabattle/game"
)

// Wire codes for the envelope exchanged with a remote match server.
const (
	CodeReqObserve = iota
	CodeRespObserve
	CodeReqFire
	CodeRespFire
	CodeRespFail
)

// Message is the envelope every frame travels in: a code naming the
// payload type, and the payload itself.
type Message struct {
	Code    int             `json:"code"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ObservationPayload carries one turn's snapshot from the server.
type ObservationPayload struct {
	Board          string `json:"board"` // row-major, one symbol per cell
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	LastShotHit    bool   `json:"last_shot_hit"`
	PowerAvailable bool   `json:"power_available"`
	PowerUsed      bool   `json:"power_used"`
	Finished       bool   `json:"finished"`
}

// ShotPayload carries the agent's shot to the server.
type ShotPayload struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Power string `json:"power,omitempty"`
}

// FailPayload carries the server's error details.
type FailPayload struct {
	Message string `json:"message"`
}

// RemoteBoard plays against a match server over a websocket. Calls are
// strictly request/response; the connection is owned by the board and
// closed with it.
type RemoteBoard struct {
	conn *websocket.Conn
}

// DialRemoteBoard connects to the match server at url.
func DialRemoteBoard(url string) (*RemoteBoard, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	return &RemoteBoard{conn: conn}, nil
}

// NewRemoteBoard wraps an already established connection.
func NewRemoteBoard(conn *websocket.Conn) *RemoteBoard {
	return &RemoteBoard{conn: conn}
}

func (b *RemoteBoard) Observe() (game.Observation, error) {
	payload, err := b.roundTrip(CodeReqObserve, nil, CodeRespObserve)
	if err != nil {
		return game.Observation{}, err
	}

	var obs ObservationPayload
	if err := json.Unmarshal(payload, &obs); err != nil {
		return game.Observation{}, fmt.Errorf("malformed observation payload: %w", err)
	}
	grid, err := game.ParseBoard(obs.Rows, obs.Cols, obs.Board)
	if err != nil {
		return game.Observation{}, err
	}
	return game.Observation{
		Board:          grid,
		LastShotHit:    obs.LastShotHit,
		PowerAvailable: obs.PowerAvailable,
		PowerUsed:      obs.PowerUsed,
		Finished:       obs.Finished,
	}, nil
}

func (b *RemoteBoard) Fire(shot game.Shot) error {
	payload := ShotPayload{
		Row:   shot.Target.Row,
		Col:   shot.Target.Col,
		Power: shot.Power.String(),
	}
	_, err := b.roundTrip(CodeReqFire, payload, CodeRespFire)
	return err
}

// Close shuts the connection down.
func (b *RemoteBoard) Close() error {
	return b.conn.Close()
}

// roundTrip sends one request and decodes the matching response envelope.
func (b *RemoteBoard) roundTrip(reqCode int, payload any, respCode int) (json.RawMessage, error) {
	msg := Message{Code: reqCode}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		msg.Payload = raw
	}
	if err := b.conn.WriteJSON(msg); err != nil {
		return nil, fmt.Errorf("failed to send request %d: %w", reqCode, err)
	}

	var resp Message
	if err := b.conn.ReadJSON(&resp); err != nil {
		return nil, fmt.Errorf("failed to read response to %d: %w", reqCode, err)
	}
	switch resp.Code {
	case respCode:
		return resp.Payload, nil
	case CodeRespFail:
		var fail FailPayload
		if err := json.Unmarshal(resp.Payload, &fail); err != nil {
			return nil, fmt.Errorf("server rejected request %d", reqCode)
		}
		return nil, fmt.Errorf("server rejected request %d: %s", reqCode, fail.Message)
	default:
		return nil, fmt.Errorf("unexpected response code %d to request %d", resp.Code, reqCode)
	}
}

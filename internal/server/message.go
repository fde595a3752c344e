package server

import (
	"encoding/json"

	"github.com/cardsharp/pokerduel/internal/duel"
	"github.com/cardsharp/pokerduel/poker"
)

// MessageType identifies the kind of websocket message.
type MessageType string

const (
	MessageTypeEvaluate MessageType = "evaluate"
	MessageTypeResult   MessageType = "result"
	MessageTypeError    MessageType = "error"
)

// String returns the message type as a string.
func (t MessageType) String() string {
	return string(t)
}

// Message is the envelope for all websocket traffic.
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a message with the given payload.
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Data: raw}, nil
}

// EvaluateData asks the server to evaluate one duel line: ten
// whitespace-separated card tokens, first five the player's hand.
type EvaluateData struct {
	Line string `json:"line"`
}

// HandSummary describes one classified hand in a result.
type HandSummary struct {
	Cards    string   `json:"cards"`
	Category string   `json:"category"`
	Deciding []string `json:"deciding,omitempty"`
	Kickers  []string `json:"kickers,omitempty"`
}

// ResultData is the verdict for an evaluate request.
type ResultData struct {
	Player   HandSummary `json:"player"`
	Opponent HandSummary `json:"opponent"`
	Outcome  string      `json:"outcome"`
}

// ErrorData reports a failed request. The connection stays open; bad input is
// the client's problem, not a transport fault.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// resultDataFrom converts a duel result into the wire representation.
func resultDataFrom(res duel.Result) ResultData {
	return ResultData{
		Player:   summarize(res.Player, res.PlayerPlay),
		Opponent: summarize(res.Opponent, res.OpponentPlay),
		Outcome:  res.Outcome.String(),
	}
}

func summarize(hand poker.Hand, play poker.ClassifiedHand) HandSummary {
	return HandSummary{
		Cards:    hand.String(),
		Category: play.Category.String(),
		Deciding: rankStrings(play.Deciding),
		Kickers:  rankStrings(play.Kickers),
	}
}

func rankStrings(ranks []poker.Rank) []string {
	if len(ranks) == 0 {
		return nil
	}
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.String()
	}
	return out
}

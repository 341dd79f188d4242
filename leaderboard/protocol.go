package leaderboard

import "encoding/json"

// Wire message types (JSON text frames)
const (
	msgSubmit = "submit"
	msgAck    = "ack"
	msgScores = "scores"
)

// message is the single envelope used in both directions; unused fields are omitted
type message struct {
	Type    string  `json:"type"`
	Seq     uint64  `json:"seq,omitempty"`
	Name    string  `json:"name,omitempty"`
	Score   int     `json:"score,omitempty"`
	OK      bool    `json:"ok,omitempty"`
	ID      string  `json:"id,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
}

func encodeMessage(m *message) ([]byte, error) {
	return json.Marshal(m)
}

func decodeMessage(data []byte) (*message, error) {
	var m message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

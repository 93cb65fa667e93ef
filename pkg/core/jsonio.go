package core

import (
	"encoding/json"
	"io"
)

// MarshalTickets pretty-prints tickets as JSON for humans or pipelines.
func MarshalTickets(w io.Writer, tickets []Ticket) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tickets)
}

// UnmarshalTickets decodes tickets JSON, useful for ingestion tests.
func UnmarshalTickets(r io.Reader) ([]Ticket, error) {
	var ts []Ticket
	if err := json.NewDecoder(r).Decode(&ts); err != nil {
		return nil, err
	}
	return ts, nil
}

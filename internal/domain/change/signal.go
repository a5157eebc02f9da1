// Package change defines the invalidation signals exchanged between the
// server and displays. A signal says that something in a store changed, never
// what changed; receivers always refetch.
package change

import (
	"encoding/json"
	"time"

	"signage-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

type Type string

const (
	MenuUpdate      Type = "menu_update"
	PromotionUpdate Type = "promotion_update"
	StoreUpdate     Type = "store_update"
)

var ErrMalformedEnvelope = errs.New("malformed change envelope")

type Signal struct {
	Type      Type
	StoreID   uuid.UUID
	Timestamp time.Time
}

func NewSignal(t Type, storeID uuid.UUID, at time.Time) Signal {
	return Signal{Type: t, StoreID: storeID, Timestamp: at}
}

// Envelope is the wire shape. Data is informational and never read back.
type Envelope struct {
	Type      Type            `json:"type"`
	StoreID   uuid.UUID       `json:"store_id"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type envelopeData struct {
	Source string `json:"source,omitempty"`
}

// Encode renders the signal as an envelope, tagging it with its producer.
func (s Signal) Encode(source string) ([]byte, error) {
	data, err := json.Marshal(envelopeData{Source: source})
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		Type:      s.Type,
		StoreID:   s.StoreID,
		Data:      data,
		Timestamp: s.Timestamp.UTC(),
	})
}

// Decode reads an envelope and keeps only its type and store id. Unknown
// types are accepted, since any signal means refetch.
func Decode(raw []byte) (Signal, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Signal{}, errs.Mark(err, ErrMalformedEnvelope)
	}
	if env.Type == "" || env.StoreID == uuid.Nil {
		return Signal{}, ErrMalformedEnvelope
	}
	return Signal{Type: env.Type, StoreID: env.StoreID, Timestamp: env.Timestamp}, nil
}

package change

import (
	"encoding/json"

	"github.com/google/uuid"
)

type Action string

const (
	ActionJoin  Action = "join-store"
	ActionLeave Action = "leave-store"
)

// Subscription is the message a display sends to announce or drop interest
// in a store.
type Subscription struct {
	Action  Action    `json:"action"`
	StoreID uuid.UUID `json:"store_id"`
}

func Join(storeID uuid.UUID) Subscription {
	return Subscription{Action: ActionJoin, StoreID: storeID}
}

func Leave(storeID uuid.UUID) Subscription {
	return Subscription{Action: ActionLeave, StoreID: storeID}
}

func ParseSubscription(raw []byte) (Subscription, bool) {
	var s Subscription
	if err := json.Unmarshal(raw, &s); err != nil {
		return Subscription{}, false
	}
	if s.StoreID == uuid.Nil || (s.Action != ActionJoin && s.Action != ActionLeave) {
		return Subscription{}, false
	}
	return s, true
}

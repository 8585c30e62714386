package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventMatchInputsChanged = "match_inputs_changed"

// MatchInputsChangedEvent tells dashboards to refetch matches. ProjectID is
// omitted when every project may be affected.
type MatchInputsChangedEvent struct {
	Type      string     `json:"type"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Source    string     `json:"source"`
	Timestamp string     `json:"timestamp"`
}

// Notifier broadcasts change events through a hub.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyMatchInputsChanged(source string, projectID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchInputsChangedEvent{
		Type:      EventMatchInputsChanged,
		Source:    source,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	if projectID != uuid.Nil {
		id := projectID
		evt.ProjectID = &id
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

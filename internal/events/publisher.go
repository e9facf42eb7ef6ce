package events

import "time"

// Event names published on document mutations
const (
	DocumentCreated       = "document.created"
	DocumentUpdated       = "document.updated"
	DocumentArchived      = "document.archived"
	DocumentRelationAdded = "document.relation-added"
)

// Event is the payload fanned out to the team and document rooms when a
// mutation lands.
type Event struct {
	Event      string    `json:"event"`
	DocumentID string    `json:"document_id"`
	TeamID     string    `json:"team_id"`
	Version    int       `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher is the notification contract the document service calls on every
// version-chain or relation mutation.
type Publisher interface {
	PublishDocumentEvent(evt Event)
}

// NopPublisher discards events; used where no hub is wired (tests, scripts)
type NopPublisher struct{}

// PublishDocumentEvent implements Publisher
func (NopPublisher) PublishDocumentEvent(Event) {}

// TeamRoom returns the room name for a team topic
func TeamRoom(teamID string) string {
	return "team:" + teamID
}

// DocumentRoom returns the room name for a document topic
func DocumentRoom(documentID string) string {
	return "document:" + documentID
}

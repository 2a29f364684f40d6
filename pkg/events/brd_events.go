package events

import "time"

// Event codes emitted by the wizard.
const (
	BrdSessionCreated  = "BRD_SESSION_CREATED"
	BrdFieldUpdated    = "BRD_FIELD_UPDATED"
	BrdSubmissionReady = "BRD_SUBMISSION_READY"
)

func NewSessionCreatedEvent(sessionId, userId string) Event {
	return BaseEvent{
		Type: BrdSessionCreated,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
		},
		OccurredAt: time.Now(),
	}
}

func NewFieldUpdatedEvent(sessionId, field, source string, score int) Event {
	return BaseEvent{
		Type: BrdFieldUpdated,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"field":      field,
			"source":     source,
			"score":      score,
		},
		OccurredAt: time.Now(),
	}
}

func NewSubmissionReadyEvent(sessionId string, totalScore int) Event {
	return BaseEvent{
		Type: BrdSubmissionReady,
		Data: map[string]interface{}{
			"session_id":  sessionId,
			"total_score": totalScore,
		},
		OccurredAt: time.Now(),
	}
}

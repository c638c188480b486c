package dto

import "time"

// ActivityResponse entrada del log de actividad.
type ActivityResponse struct {
	ID          int       `json:"id"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    int       `json:"entity_id"`
	EntityName  string    `json:"entity_name"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

package domain

import "time"

// ConservationStatus follows the IUCN Red List categories.
type ConservationStatus string

const (
	StatusLeastConcern         ConservationStatus = "least_concern"
	StatusNearThreatened       ConservationStatus = "near_threatened"
	StatusVulnerable           ConservationStatus = "vulnerable"
	StatusEndangered           ConservationStatus = "endangered"
	StatusCriticallyEndangered ConservationStatus = "critically_endangered"
	StatusExtinctInWild        ConservationStatus = "extinct_in_wild"
)

// Animal is an educational animal profile shown alongside quizzes.
type Animal struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Species            string             `json:"species"`
	Habitat            string             `json:"habitat"`
	Diet               string             `json:"diet"`
	ConservationStatus ConservationStatus `json:"conservation_status"`
	FunFacts           []string           `json:"fun_facts,omitempty"`
	ImageURL           string             `json:"image_url,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

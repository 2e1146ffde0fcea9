package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudyProgress is one checklist entry, keyed by (user, material) so that two
// accounts sharing a device never see each other's state.
type StudyProgress struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	MaterialId uuid.UUID
	Completed  bool
	UpdatedAt  time.Time
}

package common

import (
	"github.com/google/uuid"
)

// NewFrameID generates a unique event frame ID
// Format: frm_<uuid>
func NewFrameID() string {
	return "frm_" + uuid.New().String()
}

// NewConflictEventID generates a unique conflict event ID
// Format: evt_<uuid>
func NewConflictEventID() string {
	return "evt_" + uuid.New().String()
}

// NewActivationID generates a unique signal activation ID
// Format: act_<uuid>
func NewActivationID() string {
	return "act_" + uuid.New().String()
}

// NewItemID generates a unique raw item ID
// Format: itm_<uuid>
func NewItemID() string {
	return "itm_" + uuid.New().String()
}

package domain

// TransitionAction is the fixed name of a status-transition endpoint.
// The backend owns transition legality; the client only offers plausible
// next steps and surfaces rejections.
type TransitionAction string

// List of transition actions exposed by the driver backend.
const (
	ActionPickup         TransitionAction = "pickup"
	ActionInTransit      TransitionAction = "in-transit"
	ActionOutForDelivery TransitionAction = "out-for-delivery"
	ActionDeliver        TransitionAction = "deliver"
	ActionFail           TransitionAction = "fail"
	ActionCollectCOD     TransitionAction = "cod-collect"
	ActionReportDelay    TransitionAction = "report-delay"
)

var allowedActions = [...]TransitionAction{
	ActionPickup, ActionInTransit, ActionOutForDelivery,
	ActionDeliver, ActionFail, ActionCollectCOD, ActionReportDelay,
}

// Valid checks if the TransitionAction is valid.
func (a TransitionAction) Valid() bool {
	for _, v := range allowedActions {
		if a == v {
			return true
		}
	}
	return false
}

// TransitionRequest describes one status-transition POST.
// It always carries the shipment id; the remaining fields depend on the action.
type TransitionRequest struct {
	Action          TransitionAction `json:"-"`
	ShipmentID      int64            `json:"shipment_id"`
	Notes           *string          `json:"notes"`
	FailureReason   string           `json:"failure_reason,omitempty"`
	DelayReason     string           `json:"delay_reason,omitempty"`
	AmountCollected *float64         `json:"amount_collected,omitempty"`
	Signature       *string          `json:"signature,omitempty"`
	PhotoProof      *string          `json:"photo_proof,omitempty"`
}

// The backend expects an enum-friendly reason code; free text travels in Notes.
const (
	FailureReasonOther = "OTHER"
	DelayReasonOther   = "OTHER"
)

// NextActions returns the transitions plausibly available from status.
// isCOD adds the COD collection step where it applies.
func NextActions(status ShipmentStatus, isCOD bool) []TransitionAction {
	var actions []TransitionAction
	switch status {
	case StatusPending, StatusAssigned:
		actions = []TransitionAction{ActionPickup}
	case StatusPickedUp:
		actions = []TransitionAction{ActionInTransit, ActionReportDelay}
	case StatusInTransit:
		actions = []TransitionAction{ActionOutForDelivery, ActionReportDelay}
	case StatusOutForDelivery:
		actions = []TransitionAction{ActionDeliver, ActionFail, ActionReportDelay}
	default:
		return nil
	}
	if isCOD && status == StatusOutForDelivery {
		actions = append(actions, ActionCollectCOD)
	}
	return actions
}

package request

import "strings"

// PixChargeRequest is the body of POST /api/generate-pix.
type PixChargeRequest struct {
	ChargeID string `json:"chargeId"`
	MemberID string `json:"memberId"`
}

// IsComplete reports whether both identifiers are present.
func (r PixChargeRequest) IsComplete() bool {
	return strings.TrimSpace(r.ChargeID) != "" && strings.TrimSpace(r.MemberID) != ""
}

package application

import "github.com/dealscout/dealscout/internal/domain/valuation"

// ReferenceData is what the static tables know about a make and model.
type ReferenceData struct {
	Make        string `json:"make"`
	Model       string `json:"model"`
	Found       bool   `json:"found"`
	MSRPBase    int    `json:"msrp_base,omitempty"`
	MSRPHigh    int    `json:"msrp_high,omitempty"`
	MSRPMid     int    `json:"msrp_mid,omitempty"`
	Reliability int    `json:"reliability"`
}

// LookupReference resolves make and model against the MSRP and reliability
// tables.
func LookupReference(vehicleMake, model string) ReferenceData {
	ref := ReferenceData{
		Make:        vehicleMake,
		Model:       model,
		Reliability: valuation.ReliabilityScore(vehicleMake),
	}
	if r, ok := valuation.LookupMSRP(vehicleMake, model); ok {
		ref.Found = true
		ref.MSRPBase = r.Base
		ref.MSRPHigh = r.High
		ref.MSRPMid = r.Mid()
	}
	return ref
}

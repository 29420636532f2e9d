package entities

import "time"

// DiscoveryReport holds the four analytical sections derived from a
// discovery meeting transcript.
type DiscoveryReport struct {
	RiskTolerance       string `json:"riskTolerance"`
	FactFind            string `json:"factFind"`
	CapacityForLoss     string `json:"capacityForLoss"`
	FinancialObjectives string `json:"financialObjectives"`
}

// Sections returns the report as titled sections in display order
func (r *DiscoveryReport) Sections() []ReportSection {
	return []ReportSection{
		{Title: "Risk Tolerance", Content: r.RiskTolerance},
		{Title: "Fact Find", Content: r.FactFind},
		{Title: "Capacity for Loss", Content: r.CapacityForLoss},
		{Title: "Financial Objectives", Content: r.FinancialObjectives},
	}
}

// StoredDiscoveryReport is the on-disk form of a report
type StoredDiscoveryReport struct {
	ClientID    string          `json:"clientId"`
	MeetingID   string          `json:"meetingId"`
	MeetingDate string          `json:"meetingDate"`
	MeetingType string          `json:"meetingType"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Report      DiscoveryReport `json:"report"`
}

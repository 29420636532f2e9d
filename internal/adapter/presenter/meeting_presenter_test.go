package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/usecase/email"
)

func TestToDiscoveryReportResponseFlattensSections(t *testing.T) {
	stored := &entities.StoredDiscoveryReport{
		ClientID:    "1",
		MeetingID:   "m-1",
		MeetingDate: "2024-03-05T14:30:00Z",
		MeetingType: "discovery",
		GeneratedAt: time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC),
		Report:      entities.DiscoveryReport{RiskTolerance: "r", FactFind: "f", CapacityForLoss: "c", FinancialObjectives: "o"},
	}

	b, err := json.Marshal(ToDiscoveryReportResponse(stored))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "r", got["riskTolerance"])
	assert.Equal(t, "o", got["financialObjectives"])
	assert.Equal(t, "m-1", got["meetingId"])
	assert.NotContains(t, got, "report")

	assert.Nil(t, ToDiscoveryReportResponse(nil))
}

func TestToSendEmailResponse(t *testing.T) {
	b, err := json.Marshal(ToSendEmailResponse(email.Result{Success: false, Error: "invalid recipient email address"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"invalid recipient email address"}`, string(b))
}

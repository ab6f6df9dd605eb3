package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leads() []LeadSummary {
	return []LeadSummary{
		{ID: "a", Name: "Asha", Status: "new"},
		{ID: "b", Name: "Ravi", Status: "demo"},
	}
}

func TestParseScoresDropsUnknownIDs(t *testing.T) {
	arguments := `{"scores":[
		{"id":"a","score":70,"reason":"new lead"},
		{"id":"ghost","score":90,"reason":"not in input"}
	]}`

	scores, err := parseScores(arguments, leads())
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, "a", scores[0].ID)
	require.Equal(t, 70, scores[0].Score)
}

func TestParseScoresAllowsSubset(t *testing.T) {
	scores, err := parseScores(`{"scores":[{"id":"b","score":95,"reason":"demo scheduled"}]}`, leads())
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, "b", scores[0].ID)
}

func TestParseScoresClampsRange(t *testing.T) {
	arguments := `{"scores":[
		{"id":"a","score":180,"reason":"over"},
		{"id":"b","score":-4,"reason":"under"}
	]}`

	scores, err := parseScores(arguments, leads())
	require.NoError(t, err)
	require.Equal(t, 100, scores[0].Score)
	require.Equal(t, 0, scores[1].Score)
}

func TestParseScoresRejectsMalformedPayload(t *testing.T) {
	_, err := parseScores(`{"scores":"not a list"}`, leads())
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = parseScores(`not json`, leads())
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = parseScores(`{"scores":[{"score":10}]}`, leads())
	require.ErrorIs(t, err, ErrUnavailable, "entries without an id are rejected by the schema")
}

func TestNewGatewayRequiresAPIKey(t *testing.T) {
	_, err := NewGateway(GatewayConfig{})
	require.Error(t, err)
}

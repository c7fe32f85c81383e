package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerMarshalRating(t *testing.T) {
	tests := []struct {
		name   string
		number float64
		want   string
	}{
		{"inteira", 4, "4"},
		{"fracionada", 3.5, "3.5"},
		{"negativa", -2, "-2"},
		{"muito grande", 1e20, "100000000000000000000"},
		{"acima de int64", 1e300, "1e+300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(Answer{Kind: KindRating, Number: tt.number})
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestAnswerLargeRatingSurvivesRoundTrip(t *testing.T) {
	in := Response{QuestionID: "online_interest", Answer: Answer{Kind: KindRating, Number: 1e20}}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	var out Response
	require.NoError(t, json.Unmarshal(data, &out))

	got, ok := out.Answer.Score()
	require.True(t, ok)
	assert.Equal(t, 1e20, got)
}

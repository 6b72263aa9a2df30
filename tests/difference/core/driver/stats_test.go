package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

func TestStats(t *testing.T) {
	s := NewStats()
	s.ObserveAction(KindDeliver)
	s.ObserveAction(KindDeliver)
	s.ObserveAction(KindDelegate)
	s.ObserveEvents([]types.Event{types.EventJail, types.EventJail, types.EventConsumerAddVal})
	s.ObserveTrace()

	counts, err := s.Counts()
	require.NoError(t, err)
	require.Equal(t, map[string]float64{
		"ccv_model_traces_total":                  1,
		"ccv_model_actions_total/" + KindDeliver:  2,
		"ccv_model_actions_total/" + KindDelegate: 1,
		"ccv_model_events_total/jail":             2,
		"ccv_model_events_total/consumerAddVal":   1,
	}, counts)

	var buf bytes.Buffer
	require.NoError(t, s.Report(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"ccv_model_actions_total/Delegate 1",
		"ccv_model_actions_total/Deliver 2",
		"ccv_model_events_total/consumerAddVal 1",
		"ccv_model_events_total/jail 2",
		"ccv_model_traces_total 1",
	}, lines)
}

func TestStatsSeparateRegistries(t *testing.T) {
	a, b := NewStats(), NewStats()
	a.ObserveTrace()
	counts, err := b.Counts()
	require.NoError(t, err)
	require.Zero(t, counts["ccv_model_traces_total"])
}

package core

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/kylelemons/godebug/pretty"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/interchain-security-model/x/ccv/history"
	"github.com/cosmos/interchain-security-model/x/ccv/model"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Driver replays traces against a fresh model and reports the first point
// where the model disagrees with the recorded consequences.
type Driver struct {
	logger log.Logger
	stats  *Stats
}

func NewDriver(logger log.Logger, stats *Stats) *Driver {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if stats == nil {
		stats = NewStats()
	}
	return &Driver{
		logger: logger.With("module", "driver"),
		stats:  stats,
	}
}

func (d *Driver) Stats() *Stats {
	return d.stats
}

// Run replays a single trace. After the last action the recorded events, if
// any, are compared and the properties are checked over the block history.
func (d *Driver) Run(trace TraceData) error {
	return d.run(trace, func(int) {})
}

// run replays trace, calling before ahead of every action.
func (d *Driver) run(trace TraceData, before func(ix int)) error {
	params, err := ParamsFromConstants(trace.Constants)
	if err != nil {
		return err
	}
	events := types.NewEventLog()
	hist := history.NewInMemBlockHistory()
	m, err := model.NewModel(d.logger, params, types.DefaultInitState(params), hist, events)
	if err != nil {
		return err
	}

	for i, ac := range trace.Actions {
		before(i)
		if err := Apply(m, ac.Action); err != nil {
			return errorsmod.Wrapf(err, "action %d (%s)", i, ac.Action.Kind)
		}
		d.stats.ObserveAction(ac.Action.Kind)
		if diff := pretty.Compare(ac.Consequence, ConsequenceOf(m)); diff != "" {
			return errorsmod.Wrapf(types.ErrTraceMismatch, "action %d (%s): expected -, got +\n%s", i, ac.Action.Kind, diff)
		}
	}

	got := make([]string, 0, events.Len())
	for _, e := range events.Events() {
		got = append(got, string(e))
	}
	if trace.Events != nil {
		if diff := pretty.Compare(trace.Events, got); diff != "" {
			return errorsmod.Wrapf(types.ErrTraceMismatch, "events: expected -, got +\n%s", diff)
		}
	}
	d.stats.ObserveEvents(events.Events())

	if err := hist.CheckProperties(); err != nil {
		return err
	}
	d.stats.ObserveTrace()
	d.logger.Debug("replayed trace", "actions", len(trace.Actions), "events", len(got))
	return nil
}

// RunAll replays traces in order and stops at the first failure. The
// returned Traces points at the failing trace.
func (d *Driver) RunAll(data []TraceData) (*Traces, error) {
	traces := &Traces{Data: data}
	for i := range data {
		traces.CurrentTraceIx = i
		traces.CurrentActionIx = 0
		before := func(ix int) { traces.CurrentActionIx = ix }
		if err := d.run(data[i], before); err != nil {
			return traces, errorsmod.Wrapf(err, "trace %d", i)
		}
	}
	return traces, nil
}

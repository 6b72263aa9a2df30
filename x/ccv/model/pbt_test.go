package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/cosmos/interchain-security-model/x/ccv/history"
	"github.com/cosmos/interchain-security-model/x/ccv/model"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// machine drives a model with random actions. At most NumValidators-2
// validators are ever slashed, so the active set can never become empty.
type machine struct {
	params    types.Params
	m         *model.Model
	history   *history.BlockHistory
	events    *types.EventLog
	slashable []types.Validator
	lastOpID  uint64
	actions   []func(*model.Model) error
}

func newMachine(t *rapid.T) *machine {
	params := types.DefaultParams()
	hist := history.NewInMemBlockHistory()
	events := types.NewEventLog()
	m, err := model.NewModel(nil, params, types.DefaultInitState(params), hist, events)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	vals := make([]types.Validator, params.NumValidators)
	for i := range vals {
		vals[i] = i
	}
	perm := rapid.Permutation(vals).Draw(t, "vals")
	return &machine{
		params:    params,
		m:         m,
		history:   hist,
		events:    events,
		slashable: perm[:params.NumValidators-2],
	}
}

// do applies a to the model and records it for replay.
func (mc *machine) do(t *rapid.T, a func(*model.Model) error) {
	mc.actions = append(mc.actions, a)
	if err := a(mc.m); err != nil {
		t.Fatalf("action: %v", err)
	}
}

func (mc *machine) val(t *rapid.T) types.Validator {
	return rapid.IntRange(0, mc.params.NumValidators-1).Draw(t, "val")
}

func (mc *machine) chain(t *rapid.T) types.Chain {
	return rapid.SampledFrom([]types.Chain{types.P, types.C}).Draw(t, "chain")
}

func (mc *machine) Delegate(t *rapid.T) {
	val, amt := mc.val(t), rapid.Int64Range(1, 5000).Draw(t, "amt")
	mc.do(t, func(m *model.Model) error { m.Delegate(val, amt); return nil })
}

func (mc *machine) Undelegate(t *rapid.T) {
	val, amt := mc.val(t), rapid.Int64Range(1, 5000).Draw(t, "amt")
	mc.do(t, func(m *model.Model) error { m.Undelegate(val, amt); return nil })
}

func (mc *machine) ConsumerSlash(t *rapid.T) {
	val := rapid.SampledFrom(mc.slashable).Draw(t, "val")
	h := rapid.Int64Range(0, mc.m.Height(types.C)).Draw(t, "infractionHeight")
	isDowntime := rapid.Bool().Draw(t, "isDowntime")
	mc.do(t, func(m *model.Model) error { m.ConsumerInitiatedSlash(val, h, isDowntime); return nil })
}

func (mc *machine) ProviderSlash(t *rapid.T) {
	val := mc.val(t)
	h := rapid.Int64Range(0, mc.m.Height(types.P)).Draw(t, "infractionHeight")
	mc.do(t, func(m *model.Model) error { m.ProviderSlash(val, h); return nil })
}

func (mc *machine) UpdateClient(t *rapid.T) {
	chain := mc.chain(t)
	mc.do(t, func(m *model.Model) error { m.UpdateClient(chain); return nil })
}

func (mc *machine) Deliver(t *rapid.T) {
	chain := mc.chain(t)
	num := rapid.IntRange(1, mc.params.MaxNumPacketsForDeliver).Draw(t, "numPackets")
	mc.do(t, func(m *model.Model) error { m.Deliver(chain, num); return nil })
}

func (mc *machine) EndAndBeginBlock(t *rapid.T) {
	chain := mc.chain(t)
	mc.do(t, func(m *model.Model) error { return m.EndAndBeginBlock(chain) })
}

// Check runs after every action and verifies that all required invariants hold.
func (mc *machine) Check(t *rapid.T) {
	if err := mc.history.CheckProperties(); err != nil {
		t.Fatal(err)
	}
	opID := mc.m.StakingKeeper.NextOpID()
	if opID < mc.lastOpID {
		t.Fatalf("next opID went from %d to %d", mc.lastOpID, opID)
	}
	mc.lastOpID = opID
	for _, e := range mc.m.StakingKeeper.UndelegationQueue() {
		if e.OpID >= opID {
			t.Fatalf("undelegation has opID %d, next is %d", e.OpID, opID)
		}
	}
	if len(mc.m.StakingKeeper.LastValidators()) == 0 {
		t.Fatalf("empty active set")
	}
}

func (mc *machine) repeat(t *rapid.T) {
	t.Repeat(map[string]func(*rapid.T){
		"Delegate":         mc.Delegate,
		"Undelegate":       mc.Undelegate,
		"ConsumerSlash":    mc.ConsumerSlash,
		"ProviderSlash":    mc.ProviderSlash,
		"UpdateClient":     mc.UpdateClient,
		"Deliver":          mc.Deliver,
		"EndAndBeginBlock": mc.EndAndBeginBlock,
		"":                 mc.Check,
	})
}

// go test -v -run TestModelProperties -rapid.checks=1000 -rapid.steps=1000
func TestModelProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		newMachine(t).repeat(t)
	})
}

// TestModelDeterminism replays the actions of a random run on a fresh model
// and requires the same state and events.
func TestModelDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mc := newMachine(t)
		mc.repeat(t)

		replay := types.NewEventLog()
		m, err := model.NewModel(nil, mc.params, types.DefaultInitState(mc.params), nil, replay)
		if err != nil {
			t.Fatal(err)
		}
		for _, a := range mc.actions {
			if err := a(m); err != nil {
				t.Fatal(err)
			}
		}
		if diff := cmp.Diff(mc.m.PropertiesSystemState(), m.PropertiesSystemState()); diff != "" {
			t.Fatalf("state differs on replay (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(mc.events.Events(), replay.Events()); diff != "" {
			t.Fatalf("events differ on replay (-want +got):\n%s", diff)
		}
	})
}

package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

type Action struct {
	Amt              int64  `json:"amt,omitempty"`
	Chain            string `json:"chain,omitempty"`
	InfractionHeight int64  `json:"infractionHeight,omitempty"`
	IsDowntime       bool   `json:"isDowntime"`
	Kind             string `json:"kind"`
	NumPackets       int    `json:"numPackets,omitempty"`
	Val              int    `json:"val,omitempty"`
}

// Validate checks that the action can be applied to a model with params p.
func (a Action) Validate(p types.Params) error {
	switch a.Kind {
	case KindDelegate, KindUndelegate, KindConsumerSlash, KindProviderSlash:
		if a.Val < 0 || p.NumValidators <= a.Val {
			return errorsmod.Wrapf(types.ErrInvalidValidator, "%s of validator %d", a.Kind, a.Val)
		}
		if a.Amt < 0 || a.InfractionHeight < 0 {
			return errorsmod.Wrapf(types.ErrInvalidAction, "%s with negative amount or height", a.Kind)
		}
	case KindUpdateClient, KindEndAndBeginBlock:
		return types.Chain(a.Chain).Validate()
	case KindDeliver:
		if a.NumPackets < 0 {
			return errorsmod.Wrapf(types.ErrInvalidAction, "deliver %d packets", a.NumPackets)
		}
		return types.Chain(a.Chain).Validate()
	default:
		return errorsmod.Wrapf(types.ErrInvalidAction, "unknown kind %q", a.Kind)
	}
	return nil
}

// Consequence is the state of the model after an action.
type Consequence struct {
	Delegation          []int64               `json:"delegation,omitempty"`
	DelegatorTokens     int64                 `json:"delegatorTokens,omitempty"`
	Jailed              []*int64              `json:"jailed,omitempty"`
	OutstandingDowntime []bool                `json:"outstandingDowntime,omitempty"`
	ConsumerPower       []*int64              `json:"consumerPower,omitempty"`
	Status              []string              `json:"status,omitempty"`
	Tokens              []int64               `json:"tokens,omitempty"`
	H                   map[types.Chain]int64 `json:"h,omitempty"`
	T                   map[types.Chain]int64 `json:"t,omitempty"`
}

type ActionAndConsequence struct {
	Action      Action      `json:"action"`
	Consequence Consequence `json:"consequence"`
	Ix          int         `json:"ix"`
}

type TraceData struct {
	Actions   []ActionAndConsequence `json:"actions"`
	Constants json.RawMessage        `json:"constants"`
	Events    []string               `json:"events"`
	Meta      struct {
		Commit string `json:"commit"`
		Diff   string `json:"diff"`
		Seed   int64  `json:"seed"`
	} `json:"meta"`
}

// LoadTraces reads a JSON array of traces from fn.
func LoadTraces(fn string) ([]TraceData, error) {
	/* #nosec */
	fd, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	/* #nosec */
	defer fd.Close()

	bz, err := io.ReadAll(fd)
	if err != nil {
		return nil, err
	}
	return ParseTraces(bz)
}

// ParseTraces decodes a JSON array of traces.
func ParseTraces(bz []byte) ([]TraceData, error) {
	var ret []TraceData
	if err := json.Unmarshal(bz, &ret); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAction, err.Error())
	}
	return ret, nil
}

// WriteTraces writes traces to fn as a JSON array.
func WriteTraces(fn string, traces []TraceData) error {
	bz, err := json.MarshalIndent(traces, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fn, bz, 0o600)
}

// Traces stores a list of traces
// and gives a diagnostic for debugging
// failed tests.
type Traces struct {
	// index of trace in json
	CurrentTraceIx int
	// index of current action
	CurrentActionIx int
	// traces
	Data []TraceData
}

// Diagnostic returns a string for diagnosing errors
func (t *Traces) Diagnostic() string {
	if len(t.Actions()) <= t.CurrentActionIx {
		return fmt.Sprintf("\n[diagnostic][trace %d, action %d]", t.CurrentTraceIx, t.CurrentActionIx)
	}
	return fmt.Sprintf("\n[diagnostic][trace %d, action %d, kind %s]", t.CurrentTraceIx, t.CurrentActionIx, t.Action().Kind)
}

func (t *Traces) Trace() TraceData {
	return t.Data[t.CurrentTraceIx]
}

func (t *Traces) Actions() []ActionAndConsequence {
	return t.Trace().Actions
}

func (t *Traces) Action() Action {
	return t.Data[t.CurrentTraceIx].Actions[t.CurrentActionIx].Action
}

func (t *Traces) Consequence() Consequence {
	return t.Data[t.CurrentTraceIx].Actions[t.CurrentActionIx].Consequence
}

package core

import (
	"math/rand"

	errorsmod "cosmossdk.io/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/interchain-security-model/x/ccv/model"
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// GeneratorConfig controls the shape of generated traces.
type GeneratorConfig struct {
	NumActions       int
	DelegateAmtMin   int64
	DelegateAmtMax   int64
	UndelegateAmtMin int64
	UndelegateAmtMax int64
	// Weights gives the relative frequency of each action kind. Kinds
	// without a weight are never generated.
	Weights map[string]int
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NumActions:       200,
		DelegateAmtMin:   1000,
		DelegateAmtMax:   5000,
		UndelegateAmtMin: 1000,
		UndelegateAmtMax: 5000,
		Weights: map[string]int{
			KindDelegate:         2,
			KindUndelegate:       2,
			KindConsumerSlash:    1,
			KindProviderSlash:    1,
			KindUpdateClient:     1,
			KindDeliver:          4,
			KindEndAndBeginBlock: 4,
		},
	}
}

func (cfg GeneratorConfig) Validate() error {
	if cfg.NumActions < 0 {
		return errorsmod.Wrapf(types.ErrInvalidAction, "num actions cannot be negative, got %d", cfg.NumActions)
	}
	if cfg.DelegateAmtMax < cfg.DelegateAmtMin || cfg.DelegateAmtMin < 0 {
		return errorsmod.Wrapf(types.ErrInvalidAction, "bad delegate range [%d, %d]", cfg.DelegateAmtMin, cfg.DelegateAmtMax)
	}
	if cfg.UndelegateAmtMax < cfg.UndelegateAmtMin || cfg.UndelegateAmtMin < 0 {
		return errorsmod.Wrapf(types.ErrInvalidAction, "bad undelegate range [%d, %d]", cfg.UndelegateAmtMin, cfg.UndelegateAmtMax)
	}
	total := 0
	for _, kind := range AllKinds() {
		if cfg.Weights[kind] < 0 {
			return errorsmod.Wrapf(types.ErrInvalidAction, "negative weight for %s", kind)
		}
		total += cfg.Weights[kind]
	}
	if total == 0 {
		return errorsmod.Wrap(types.ErrInvalidAction, "all action weights are zero")
	}
	return nil
}

// Generator produces random traces by running actions against a model and
// recording the consequences. The same seed always produces the same trace.
//
// Two constraints keep generated traces executable on a real system:
// only NumValidators-2 validators are ever slashed by the consumer, so the
// validator set cannot become empty, and light clients are updated before
// their trusting period runs out.
type Generator struct {
	logger log.Logger
	params types.Params
	cfg    GeneratorConfig
	stats  *Stats
}

func NewGenerator(logger log.Logger, params types.Params, cfg GeneratorConfig, stats *Stats) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if stats == nil {
		stats = NewStats()
	}
	return &Generator{
		logger: logger.With("module", "driver-gen"),
		params: params,
		cfg:    cfg,
		stats:  stats,
	}, nil
}

// run is the state of a single trace being generated.
type run struct {
	*Generator
	rng       *rand.Rand
	m         *model.Model
	slashable []types.Validator
	// trusted is the time of the latest counterparty header known to the
	// light client on each chain.
	trusted map[types.Chain]int64
}

// Generate produces one trace from seed.
func (g *Generator) Generate(seed int64) (TraceData, error) {
	events := types.NewEventLog()
	init := types.DefaultInitState(g.params)
	m, err := model.NewModel(g.logger, g.params, init, nil, events)
	if err != nil {
		return TraceData{}, err
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404
	r := &run{
		Generator: g,
		rng:       rng,
		m:         m,
		trusted:   map[types.Chain]int64{P: init.T[C], C: init.T[P]},
	}
	if n := g.params.NumValidators - 2; 0 < n {
		r.slashable = rng.Perm(g.params.NumValidators)[:n]
	}

	trace := TraceData{
		Actions:   make([]ActionAndConsequence, 0, g.cfg.NumActions),
		Constants: Constants(g.params, g.cfg),
	}
	trace.Meta.Seed = seed
	for i := 0; i < g.cfg.NumActions; i++ {
		a := r.next()
		if err := Apply(m, a); err != nil {
			return TraceData{}, errorsmod.Wrapf(err, "seed %d action %d (%s)", seed, i, a.Kind)
		}
		r.observe(a)
		g.stats.ObserveAction(a.Kind)
		trace.Actions = append(trace.Actions, ActionAndConsequence{
			Action:      a,
			Consequence: ConsequenceOf(m),
			Ix:          i,
		})
	}
	for _, e := range events.Events() {
		trace.Events = append(trace.Events, string(e))
	}
	g.stats.ObserveEvents(events.Events())
	g.stats.ObserveTrace()
	g.logger.Debug("generated trace", "seed", seed, "actions", len(trace.Actions), "events", events.Len())
	return trace, nil
}

// lastCommittedTime returns the time of the last committed block of chain.
func (r *run) lastCommittedTime(chain types.Chain) int64 {
	return r.m.Time(chain) - r.params.BlockSeconds
}

// expiring is true if the light client on chain would expire during its
// next block.
func (r *run) expiring(chain types.Chain) bool {
	return r.trusted[chain]+r.params.TrustingSeconds <= r.m.Time(chain)+r.params.BlockSeconds
}

func (r *run) observe(a Action) {
	chain := types.Chain(a.Chain)
	switch a.Kind {
	case KindUpdateClient, KindDeliver:
		r.trusted[chain] = r.lastCommittedTime(chain.Other())
	}
}

func (r *run) next() Action {
	for _, chain := range []types.Chain{P, C} {
		if r.expiring(chain) && r.trusted[chain] < r.lastCommittedTime(chain.Other()) {
			return Action{Kind: KindUpdateClient, Chain: string(chain)}
		}
	}
	for {
		switch kind := r.kind(); kind {
		case KindDelegate:
			return Action{
				Kind: kind,
				Val:  r.rng.Intn(r.params.NumValidators),
				Amt:  r.amount(r.cfg.DelegateAmtMin, r.cfg.DelegateAmtMax),
			}
		case KindUndelegate:
			return Action{
				Kind: kind,
				Val:  r.rng.Intn(r.params.NumValidators),
				Amt:  r.amount(r.cfg.UndelegateAmtMin, r.cfg.UndelegateAmtMax),
			}
		case KindConsumerSlash:
			if len(r.slashable) == 0 {
				continue
			}
			return Action{
				Kind:             kind,
				Val:              r.slashable[r.rng.Intn(len(r.slashable))],
				InfractionHeight: r.rng.Int63n(r.m.Height(C) + 1),
				IsDowntime:       r.rng.Intn(2) == 0,
			}
		case KindProviderSlash:
			return Action{
				Kind:             kind,
				Val:              r.rng.Intn(r.params.NumValidators),
				InfractionHeight: r.rng.Int63n(r.m.Height(P) + 1),
			}
		case KindUpdateClient:
			return Action{Kind: kind, Chain: string(r.chain())}
		case KindDeliver:
			return Action{
				Kind:       kind,
				Chain:      string(r.chain()),
				NumPackets: 1 + r.rng.Intn(r.params.MaxNumPacketsForDeliver),
			}
		case KindEndAndBeginBlock:
			return Action{Kind: kind, Chain: string(r.blockChain())}
		}
	}
}

// kind picks an action kind with probability proportional to its weight.
func (r *run) kind() string {
	total := 0
	for _, kind := range AllKinds() {
		total += r.cfg.Weights[kind]
	}
	x := r.rng.Intn(total)
	for _, kind := range AllKinds() {
		if x < r.cfg.Weights[kind] {
			return kind
		}
		x -= r.cfg.Weights[kind]
	}
	panic("unreachable")
}

func (r *run) chain() types.Chain {
	if r.rng.Intn(2) == 0 {
		return P
	}
	return C
}

// blockChain picks the chain to produce a block on. A chain whose light
// client would expire yields to its counterparty, which produces the newer
// header it needs.
func (r *run) blockChain() types.Chain {
	chain := r.chain()
	if !r.expiring(chain) {
		return chain
	}
	if !r.expiring(chain.Other()) {
		return chain.Other()
	}
	if r.m.Time(chain.Other()) < r.m.Time(chain) {
		return chain.Other()
	}
	return chain
}

func (r *run) amount(lo, hi int64) int64 {
	return lo + r.rng.Int63n(hi-lo+1)
}

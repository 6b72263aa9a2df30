package core

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// ParamsFromConstants reads model params from the constants object of a
// trace. Missing constants keep their default. Numbers may be encoded as
// JSON numbers or strings.
func ParamsFromConstants(raw json.RawMessage) (types.Params, error) {
	p := types.DefaultParams()
	if len(raw) == 0 {
		return p, nil
	}
	if !gjson.ValidBytes(raw) {
		return types.Params{}, errorsmod.Wrap(types.ErrInvalidParams, "constants are not valid JSON")
	}
	constants := gjson.ParseBytes(raw)

	ints := map[string]*int{
		"NUM_VALIDATORS":              &p.NumValidators,
		"MAX_VALIDATORS":              &p.MaxValidators,
		"MAX_NUM_PACKETS_FOR_DELIVER": &p.MaxNumPacketsForDeliver,
	}
	for key, field := range ints {
		if r := constants.Get(key); r.Exists() {
			v, err := cast.ToIntE(r.Value())
			if err != nil {
				return types.Params{}, errorsmod.Wrapf(types.ErrInvalidParams, "%s: %v", key, err)
			}
			*field = v
		}
	}

	int64s := map[string]*int64{
		"BLOCK_SECONDS":            &p.BlockSeconds,
		"UNBONDING_SECONDS_P":      &p.UnbondingSecondsP,
		"UNBONDING_SECONDS_C":      &p.UnbondingSecondsC,
		"TRUSTING_SECONDS":         &p.TrustingSeconds,
		"JAIL_SECONDS":             &p.JailSeconds,
		"INITIAL_DELEGATOR_TOKENS": &p.InitialDelegatorTokens,
	}
	for key, field := range int64s {
		if r := constants.Get(key); r.Exists() {
			v, err := cast.ToInt64E(r.Value())
			if err != nil {
				return types.Params{}, errorsmod.Wrapf(types.ErrInvalidParams, "%s: %v", key, err)
			}
			*field = v
		}
	}

	if r := constants.Get("SOFT_OPT_OUT_THRESHOLD"); r.Exists() {
		v, err := cast.ToStringE(r.Value())
		if err != nil {
			return types.Params{}, errorsmod.Wrapf(types.ErrInvalidParams, "SOFT_OPT_OUT_THRESHOLD: %v", err)
		}
		p.SoftOptOutThreshold = v
	}
	return p, p.Validate()
}

// Constants returns the constants object recorded in generated traces.
func Constants(p types.Params, cfg GeneratorConfig) json.RawMessage {
	bz, err := json.Marshal(struct {
		types.Params
		P                string `json:"P"`
		C                string `json:"C"`
		DelegateAmtMin   int64  `json:"DELEGATE_AMT_MIN"`
		DelegateAmtMax   int64  `json:"DELEGATE_AMT_MAX"`
		UndelegateAmtMin int64  `json:"UNDELEGATE_AMT_MIN"`
		UndelegateAmtMax int64  `json:"UNDELEGATE_AMT_MAX"`
	}{
		Params:           p,
		P:                string(P),
		C:                string(C),
		DelegateAmtMin:   cfg.DelegateAmtMin,
		DelegateAmtMax:   cfg.DelegateAmtMax,
		UndelegateAmtMin: cfg.UndelegateAmtMin,
		UndelegateAmtMax: cfg.UndelegateAmtMax,
	})
	if err != nil {
		panic(err)
	}
	return bz
}

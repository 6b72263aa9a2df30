package types

import (
	"fmt"
	"os"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"gopkg.in/yaml.v2"
)

const (
	DefaultNumValidators           = 4
	DefaultMaxValidators           = 2
	DefaultBlockSeconds            = 6
	DefaultUnbondingSecondsP       = 70
	DefaultUnbondingSecondsC       = 50
	DefaultTrustingSeconds         = 49
	DefaultJailSeconds             = 9999999999
	DefaultInitialDelegatorTokens  = 10000000000000
	DefaultMaxNumPacketsForDeliver = 6

	// Soft opt-out is disabled in the difference tests: every validator can
	// be slashed.
	DefaultSoftOptOutThreshold = "0"
)

// Params are the fixed constants of a model run. They must match the
// configuration of the system under test.
type Params struct {
	NumValidators           int    `yaml:"num_validators" json:"NUM_VALIDATORS"`
	MaxValidators           int    `yaml:"max_validators" json:"MAX_VALIDATORS"`
	BlockSeconds            int64  `yaml:"block_seconds" json:"BLOCK_SECONDS"`
	UnbondingSecondsP       int64  `yaml:"unbonding_seconds_p" json:"UNBONDING_SECONDS_P"`
	UnbondingSecondsC       int64  `yaml:"unbonding_seconds_c" json:"UNBONDING_SECONDS_C"`
	TrustingSeconds         int64  `yaml:"trusting_seconds" json:"TRUSTING_SECONDS"`
	JailSeconds             int64  `yaml:"jail_seconds" json:"JAIL_SECONDS"`
	InitialDelegatorTokens  int64  `yaml:"initial_delegator_tokens" json:"INITIAL_DELEGATOR_TOKENS"`
	MaxNumPacketsForDeliver int    `yaml:"max_num_packets_for_deliver" json:"MAX_NUM_PACKETS_FOR_DELIVER"`
	SoftOptOutThreshold     string `yaml:"soft_opt_out_threshold" json:"SOFT_OPT_OUT_THRESHOLD"`
}

// DefaultParams returns the constants used by the difference tests.
func DefaultParams() Params {
	return Params{
		NumValidators:           DefaultNumValidators,
		MaxValidators:           DefaultMaxValidators,
		BlockSeconds:            DefaultBlockSeconds,
		UnbondingSecondsP:       DefaultUnbondingSecondsP,
		UnbondingSecondsC:       DefaultUnbondingSecondsC,
		TrustingSeconds:         DefaultTrustingSeconds,
		JailSeconds:             DefaultJailSeconds,
		InitialDelegatorTokens:  DefaultInitialDelegatorTokens,
		MaxNumPacketsForDeliver: DefaultMaxNumPacketsForDeliver,
		SoftOptOutThreshold:     DefaultSoftOptOutThreshold,
	}
}

// Validate all model params
func (p Params) Validate() error {
	if p.NumValidators < 1 {
		return errorsmod.Wrapf(ErrInvalidParams, "num validators must be positive, got %d", p.NumValidators)
	}
	if p.MaxValidators < 1 || p.NumValidators < p.MaxValidators {
		return errorsmod.Wrapf(ErrInvalidParams, "max validators must be in [1, %d], got %d", p.NumValidators, p.MaxValidators)
	}
	for name, v := range map[string]int64{
		"block seconds":       p.BlockSeconds,
		"unbonding seconds P": p.UnbondingSecondsP,
		"unbonding seconds C": p.UnbondingSecondsC,
		"trusting seconds":    p.TrustingSeconds,
		"jail seconds":        p.JailSeconds,
	} {
		if v <= 0 {
			return errorsmod.Wrapf(ErrInvalidParams, "%s must be positive, got %d", name, v)
		}
	}
	if p.InitialDelegatorTokens < 0 {
		return errorsmod.Wrapf(ErrInvalidParams, "initial delegator tokens cannot be negative, got %d", p.InitialDelegatorTokens)
	}
	if p.MaxNumPacketsForDeliver < 1 {
		return errorsmod.Wrapf(ErrInvalidParams, "max num packets for deliver must be positive, got %d", p.MaxNumPacketsForDeliver)
	}
	if err := ValidateSoftOptOutThreshold(p.SoftOptOutThreshold); err != nil {
		return errorsmod.Wrap(ErrInvalidParams, err.Error())
	}
	return nil
}

func ValidateSoftOptOutThreshold(str string) error {
	dec, err := math.LegacyNewDecFromStr(str)
	if err != nil {
		return err
	}
	if dec.IsNegative() {
		return fmt.Errorf("soft opt out threshold cannot be negative, got %s", str)
	}
	if !dec.Sub(math.LegacyMustNewDecFromStr("0.2")).IsNegative() {
		return fmt.Errorf("soft opt out threshold cannot be greater than 0.2, got %s", str)
	}
	return nil
}

// SoftOptOutThresholdDec returns the parsed threshold. Params must be valid.
func (p Params) SoftOptOutThresholdDec() math.LegacyDec {
	return math.LegacyMustNewDecFromStr(p.SoftOptOutThreshold)
}

// MustMarshalYAML returns the params as YAML.
func (p Params) MustMarshalYAML() []byte {
	bz, err := yaml.Marshal(p)
	if err != nil {
		panic(err)
	}
	return bz
}

// ParamsFromYAML reads params from YAML. Missing fields keep their default.
func ParamsFromYAML(bz []byte) (Params, error) {
	p := DefaultParams()
	if err := yaml.Unmarshal(bz, &p); err != nil {
		return Params{}, errorsmod.Wrap(ErrInvalidParams, err.Error())
	}
	return p, p.Validate()
}

// LoadParams reads params from a YAML file.
func LoadParams(path string) (Params, error) {
	/* #nosec */
	bz, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	return ParamsFromYAML(bz)
}

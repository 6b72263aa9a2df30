package types

const (
	// ModuleName defines the CCV module name
	ModuleName = "CCV"

	// ProviderModuleName and ConsumerModuleName name the two halves of CCV
	// in log output.
	ProviderModuleName = "provider"
	ConsumerModuleName = "consumer"
	StakingModuleName  = "staking"
)

// Chain identifies one of the two chains of the model.
type Chain string

const (
	P Chain = "provider"
	C Chain = "consumer"
)

// Other returns the counterparty chain.
func (c Chain) Other() Chain {
	if c == P {
		return C
	}
	return P
}

func (c Chain) String() string {
	return string(c)
}

// Validate returns an error if c is neither P nor C.
func (c Chain) Validate() error {
	if c != P && c != C {
		return ErrInvalidChain.Wrapf("%q", string(c))
	}
	return nil
}

// Validator is the stable index of a validator, in [0, NumValidators).
type Validator = int

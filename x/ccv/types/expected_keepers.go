package types

// PacketSender stages outbound packets for the sending chain.
type PacketSender interface {
	Add(ctx Context, data PacketData)
}

// StakingKeeper defines the contract expected by the provider CCV keeper from
// the provider staking module.
type StakingKeeper interface {
	ValUpdates() map[Validator]int64
	UnbondingCanComplete(ctx Context, opID uint64)
	GetStatus(val Validator) Status
	GetAllTokens() []int64
	GetTokens(val Validator) int64
	JailUntil(ctx Context, val Validator, timestamp int64)
}

// StakingHooks is called by staking when an unbonding operation starts.
type StakingHooks interface {
	AfterUnbondingInitiated(ctx Context, opID uint64)
}

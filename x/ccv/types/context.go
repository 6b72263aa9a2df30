package types

import (
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the block information of one chain into a keeper call.
// It is built fresh by the model for every call and never stored.
type Context struct {
	chain  Chain
	height int64
	time   int64
	logger log.Logger
	events EventSink
}

func NewContext(chain Chain, height, time int64, logger log.Logger, events EventSink) Context {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return Context{
		chain:  chain,
		height: height,
		time:   time,
		logger: logger,
		events: events,
	}
}

func (c Context) ChainID() Chain { return c.chain }

// BlockHeight returns the height of the block being built.
func (c Context) BlockHeight() int64 { return c.height }

// BlockTime returns the time of the block being built, in seconds.
func (c Context) BlockTime() int64 { return c.time }

func (c Context) Logger() log.Logger { return c.logger }

func (c Context) EventManager() EventSink { return c.events }

// EmitEvent pushes e to the event sink, if any.
func (c Context) EmitEvent(e Event) {
	if c.events != nil {
		c.events.Emit(e)
	}
	c.logger.Debug("event", "chain", c.chain, "height", c.height, "event", e)
}

package outbox

import (
	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Entry is a staged packet together with the number of block commits made
// by the sending chain since it was added.
type Entry struct {
	Packet  types.Packet
	Commits int
}

// Outbox stores outbound packets of one chain in FIFO order. A packet can be
// consumed once it has been committed twice, which mimics a real IBC
// connection: the light client needs the header of block H+1 to prove a
// packet sent at H.
type Outbox struct {
	chain types.Chain
	fifo  []Entry
}

var _ types.PacketSender = (*Outbox)(nil)

func NewOutbox(chain types.Chain) *Outbox {
	return &Outbox{
		chain: chain,
		fifo:  []Entry{},
	}
}

func (o *Outbox) Chain() types.Chain {
	return o.chain
}

// Add adds a packet to the outbox, with 0 commits.
func (o *Outbox) Add(ctx types.Context, data types.PacketData) {
	o.fifo = append(o.fifo, Entry{
		Packet: types.Packet{
			Data:       data,
			SendHeight: ctx.BlockHeight(),
		},
		Commits: 0,
	})
}

// Consume returns and internally deletes up to num deliverable packets.
//
// Packets with fewer than two commits are moved behind the deliverable ones
// that are not consumed.
func (o *Outbox) Consume(num int) []types.Packet {
	var available, unavailable []Entry
	for _, e := range o.fifo {
		if 1 < e.Commits {
			available = append(available, e)
		} else {
			unavailable = append(unavailable, e)
		}
	}
	if num < 0 {
		num = 0
	}
	if len(available) < num {
		num = len(available)
	}
	ret := make([]types.Packet, 0, num)
	for _, e := range available[:num] {
		ret = append(ret, e.Packet)
	}
	fifo := make([]Entry, 0, len(o.fifo)-num)
	fifo = append(fifo, available[num:]...)
	o.fifo = append(fifo, unavailable...)
	return ret
}

// Commit marks a block commit for the sending chain.
func (o *Outbox) Commit() {
	for i := range o.fifo {
		o.fifo[i].Commits++
	}
}

// Len returns the number of staged packets.
func (o *Outbox) Len() int {
	return len(o.fifo)
}

// Entries returns a copy of the staged packets in queue order.
func (o *Outbox) Entries() []Entry {
	return append([]Entry(nil), o.fifo...)
}

// NumDeliverable returns how many packets could be consumed right now.
func (o *Outbox) NumDeliverable() int {
	n := 0
	for _, e := range o.fifo {
		if 1 < e.Commits {
			n++
		}
	}
	return n
}

// Package chain runs the fixed-cadence block-production loop: drain at most
// one queued transaction per tick, apply it to shared state, then append the
// next block regardless of that transaction's outcome.
package chain

import (
	"sync/atomic"
	"time"

	"github.com/evmcore/evmcore/core/executor"
	"github.com/evmcore/evmcore/core/state"
	"github.com/evmcore/evmcore/core/types"
	"github.com/evmcore/evmcore/log"
)

var logger = log.Module("chain")

// Chain is a single-producer/single-consumer block-production loop: callers
// submit transactions via Submit, and Run drains them one at a time on its
// own ticker.
type Chain struct {
	state     *state.State
	txs       chan *types.Transaction
	baseFee   uint64
	blockTime time.Duration
	running   atomic.Bool

	slot   uint64
	blocks []*Block
}

// New builds a Chain over st, ticking every blockTime. baseFee is seeded at
// 10, matching the fixture the block-production loop was grounded on.
func New(st *state.State, blockTime time.Duration) *Chain {
	return &Chain{
		state:     st,
		txs:       make(chan *types.Transaction, 256),
		baseFee:   10,
		blockTime: blockTime,
	}
}

// Submit enqueues a transaction for the next tick. It does not block.
func (c *Chain) Submit(tx *types.Transaction) bool {
	select {
	case c.txs <- tx:
		return true
	default:
		return false
	}
}

// Stop requests the run loop to exit after its current tick.
func (c *Chain) Stop() {
	c.running.Store(false)
}

// Run drains at most one transaction per tick and produces the next block,
// blocking until Stop is called. It is meant to run on its own goroutine.
func (c *Chain) Run() {
	c.running.Store(true)

	ticker := time.NewTicker(c.blockTime)
	defer ticker.Stop()

	for c.running.Load() {
		<-ticker.C
		if !c.running.Load() {
			return
		}
		c.executeTransactions()
		c.blocks = append(c.blocks, c.nextBlock())
		c.slot++
		logger.Info("block generated", "slot", c.slot)
	}
}

func (c *Chain) executeTransactions() {
	select {
	case tx := <-c.txs:
		if _, err := executor.ProcessTransaction(tx, c.baseFee, c.state); err != nil {
			logger.Error("transaction failed", "err", err)
		}
	default:
	}
}

func (c *Chain) nextBlock() *Block {
	return NewBlock(c.slot, 0, types.Hash{}, types.Hash{})
}

// Blocks returns the blocks produced so far.
func (c *Chain) Blocks() []*Block {
	return c.blocks
}

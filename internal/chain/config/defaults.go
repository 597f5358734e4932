// Package config collects the tunable constants the on-chain interface
// layer needs: named constants with reasonable defaults, read directly by
// the packages that use them; no constructor takes them as parameters.
package config

import "time"

const (
	// MaxGraceTime caps how far into the future a time-sensitive
	// transaction's validity upper bound may be placed.
	MaxGraceTime = 200 * time.Second

	// MinUTxOValue is the minimum value a change output must carry; a
	// remainder below this is absorbed into the fee instead of becoming
	// dust.
	MinUTxOValue uint64 = 1_000_000

	// MaxTxSize bounds how large a balanced transaction's serialized body
	// may be.
	MaxTxSize = 16_384

	// MaxExecutionMemory and MaxExecutionSteps bound a transaction's total
	// script execution budget.
	MaxExecutionMemory uint64 = 14_000_000
	MaxExecutionSteps  uint64 = 10_000_000_000

	// FeePerByte, FeeConstant, FeePerMemory and FeePerStep parameterize the
	// linear fee model used to re-price a draft transaction after each
	// wallet input is added: fee = FeeConstant + FeePerByte * size +
	// FeePerMemory * memory + FeePerStep * steps, where size includes an
	// estimate of the witnesses not yet attached.
	FeePerByte   uint64 = 44
	FeeConstant  uint64 = 155_381
	FeePerMemory uint64 = 577
	FeePerStep   uint64 = 1

	// PersistenceBatchSize and PersistenceFlushInterval tune the batched
	// writer LocalChainState uses to persist ChainStateAt records.
	PersistenceBatchSize     = 64
	PersistenceFlushInterval = 2 * time.Second
	PersistenceFlushRate     = 50 // rate-limited flushes per second

	// EventDispatchWorkers bounds how many subscriber goroutines the event
	// bus fans a single ChainEvent out to concurrently.
	EventDispatchWorkers = 8
)

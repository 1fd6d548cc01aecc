// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package execpool

import (
	"context"
	"runtime"
	"sync"
)

// The list of all valid priority values. When adding new ones, add them before numPrios.
// (i.e. there should be no gaps, and the first priority value should be zero)
const (
	LowPriority Priority = iota
	HighPriority

	// Note: numPrios must be the last value in the list.
	numPrios
)

// ExecutionPool interface exposes the core functionality of the execution pool.
type ExecutionPool interface {
	Enqueue(enqueueCtx context.Context, t ExecFunc, arg interface{}, i Priority, out chan interface{}) error
	GetOwner() interface{}
	Shutdown()
	GetParallelism() int
}

// A pool is a fixed set of worker goroutines which perform tasks in parallel.
type pool struct {
	inputs      []chan enqueuedTask
	wg          sync.WaitGroup
	owner       interface{}
	parallelism int
}

// A ExecFunc is a unit of work to be executed by a Pool goroutine.
//
// Note that a ExecFunc will occupy a Pool goroutine, so do not schedule tasks
// that spend an excessive amount of time waiting.
type ExecFunc func(interface{}) interface{}

// Priority is the priority level of a task.
type Priority uint8

type enqueuedTask struct {
	execFunc ExecFunc
	arg      interface{}
	out      chan interface{}
}

// MakePool creates a pool with one worker per CPU.
func MakePool(owner interface{}) ExecutionPool {
	return MakePoolWithParallelism(owner, runtime.NumCPU())
}

// MakePoolWithParallelism creates a pool with the given number of workers.
// A non-positive parallelism falls back to the number of CPUs.
func MakePoolWithParallelism(owner interface{}, parallelism int) ExecutionPool {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	p := &pool{
		inputs:      make([]chan enqueuedTask, numPrios),
		parallelism: parallelism,
		owner:       owner,
	}

	// initialize the task channels
	for i := 0; i < len(p.inputs); i++ {
		p.inputs[i] = make(chan enqueuedTask)
	}

	p.wg.Add(p.parallelism)
	for i := 0; i < p.parallelism; i++ {
		go p.worker()
	}

	return p
}

// GetParallelism returns the parallelism degree
func (p *pool) GetParallelism() int {
	return p.parallelism
}

// GetOwner return the owner interface that was passed-in during pool creation.
//
// The idea is that a pool can be either a "private" pool - i.e. belonging to a backlog, or
// a "public" pool - i.e. shared between multiple backlogs. The owner field allows a backlog
// to check whether it is the one responsible for shutting the pool down.
func (p *pool) GetOwner() interface{} {
	return p.owner
}

// Enqueue will enqueue a task for execution at a given priority. The result of
// the task is written to out, if out is not nil. Enqueue blocks until a worker
// accepts the task or enqueueCtx is done.
func (p *pool) Enqueue(enqueueCtx context.Context, t ExecFunc, arg interface{}, i Priority, out chan interface{}) error {
	select {
	case p.inputs[i] <- enqueuedTask{
		execFunc: t,
		arg:      arg,
		out:      out,
	}:
		return nil
	case <-enqueueCtx.Done():
		return enqueueCtx.Err()
	}
}

// Shutdown will tell the pool's goroutines to terminate, returning when
// they have finished. Enqueueing after Shutdown panics.
func (p *pool) Shutdown() {
	for _, ch := range p.inputs {
		close(ch)
	}
	p.wg.Wait()
}

// worker function blocks until a task is available, and executes it.
// High priority tasks are preferred whenever both queues are ready.
func (p *pool) worker() {
	var t enqueuedTask
	var ok bool
	lowPrio := p.inputs[LowPriority]
	highPrio := p.inputs[HighPriority]
	defer p.wg.Done()
	for {
		select {
		case t, ok = <-highPrio:
		default:
			select {
			case t, ok = <-highPrio:
			case t, ok = <-lowPrio:
			}
		}

		if !ok {
			return
		}
		res := t.execFunc(t.arg)

		if t.out != nil {
			t.out <- res
		}
	}
}

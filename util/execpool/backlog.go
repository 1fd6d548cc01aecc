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
	"sync"
)

// A backlog buffers tasks in front of an execution pool, so that callers can
// hand over work without waiting for a worker to become free.
type backlog struct {
	pool      ExecutionPool
	wg        sync.WaitGroup
	buffer    chan backlogItemTask
	ctx       context.Context
	ctxCancel context.CancelFunc
	owner     interface{}
	priority  Priority
}

type backlogItemTask struct {
	enqueuedTask
	priority Priority
}

// BacklogPool supports all the ExecutionPool functions plus EnqueueBacklog,
// which enqueues at the backlog's own priority.
type BacklogPool interface {
	ExecutionPool
	EnqueueBacklog(enqueueCtx context.Context, t ExecFunc, arg interface{}, out chan interface{}) error
}

// MakeBacklog creates a backlog of backlogSize pending tasks in front of
// execPool. A nil execPool makes the backlog create and own a pool of its own;
// a zero backlogSize uses the pool's parallelism. A negative size returns nil.
func MakeBacklog(execPool ExecutionPool, backlogSize int, priority Priority, owner interface{}) BacklogPool {
	if backlogSize < 0 {
		return nil
	}
	bl := &backlog{
		pool:     execPool,
		owner:    owner,
		priority: priority,
	}
	bl.ctx, bl.ctxCancel = context.WithCancel(context.Background())
	if bl.pool == nil {
		bl.pool = MakePool(bl)
	}
	if backlogSize == 0 {
		backlogSize = bl.pool.GetParallelism()
	}
	bl.buffer = make(chan backlogItemTask, backlogSize)

	bl.wg.Add(1)
	go bl.worker()
	return bl
}

func (b *backlog) GetParallelism() int {
	return b.pool.GetParallelism()
}

func (b *backlog) GetOwner() interface{} {
	return b.owner
}

// Enqueue enqueues a single task into the backlog at the given priority.
func (b *backlog) Enqueue(enqueueCtx context.Context, t ExecFunc, arg interface{}, priority Priority, out chan interface{}) error {
	return b.push(enqueueCtx, backlogItemTask{
		enqueuedTask: enqueuedTask{execFunc: t, arg: arg, out: out},
		priority:     priority,
	})
}

// EnqueueBacklog enqueues a single task into the backlog at the backlog's priority.
func (b *backlog) EnqueueBacklog(enqueueCtx context.Context, t ExecFunc, arg interface{}, out chan interface{}) error {
	return b.push(enqueueCtx, backlogItemTask{
		enqueuedTask: enqueuedTask{execFunc: t, arg: arg, out: out},
		priority:     b.priority,
	})
}

func (b *backlog) push(enqueueCtx context.Context, t backlogItemTask) error {
	// a closed backlog wins over a free buffer slot
	if err := b.ctx.Err(); err != nil {
		return ErrShutdown
	}
	select {
	case b.buffer <- t:
		return nil
	case <-enqueueCtx.Done():
		return enqueueCtx.Err()
	case <-b.ctx.Done():
		return ErrShutdown
	}
}

// Shutdown stops the backlog. Tasks still buffered are dropped. The
// underlying pool is shut down too if the backlog created it.
func (b *backlog) Shutdown() {
	b.ctxCancel()
	// NOTE: b.buffer is never closed, a concurrent Enqueue would panic on it.
	b.wg.Wait()
	if b.pool.GetOwner() == b {
		b.pool.Shutdown()
	}
}

func (b *backlog) worker() {
	defer b.wg.Done()
	for {
		var t backlogItemTask
		select {
		case t = <-b.buffer:
		case <-b.ctx.Done():
			return
		}

		if b.pool.Enqueue(b.ctx, t.execFunc, t.arg, t.priority, t.out) != nil {
			return
		}
	}
}

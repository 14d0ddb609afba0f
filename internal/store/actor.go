package store

import (
	"context"
	"sync"

	"biliticket/tickethub/internal/model"
)

// DefaultQueueSize bounds the actor command channel when the caller
// does not pick a capacity. A full queue blocks senders until the
// worker catches up.
const DefaultQueueSize = 64

type command interface {
	isCommand()
}

type getReply struct {
	ticket model.Ticket
	ok     bool
}

type insertCmd struct {
	ticket model.Ticket
	reply  chan struct{}
}

type getCmd struct {
	id    model.TicketID
	reply chan getReply
}

type patchCmd struct {
	id    model.TicketID
	patch model.TicketPatch
	reply chan error
}

func (insertCmd) isCommand() {}
func (getCmd) isCommand()    {}
func (patchCmd) isCommand()  {}

// ActorStore reaches its engine exclusively through a command channel.
// A single worker goroutine owns the engine; it handles commands
// strictly in arrival order and answers each on the command's own
// one-shot reply channel. Handles are duplicated by copying the
// struct: copies share the channel, never the worker or the engine.
type ActorStore struct {
	commands  chan command
	closing   chan struct{}
	stopped   chan struct{}
	closeOnce *sync.Once
}

// NewActorStore starts the worker. queueSize bounds the command
// channel; zero or negative selects DefaultQueueSize. A full channel
// blocks senders until the worker catches up.
func NewActorStore(queueSize int) ActorStore {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	s := ActorStore{
		commands:  make(chan command, queueSize),
		closing:   make(chan struct{}),
		stopped:   make(chan struct{}),
		closeOnce: &sync.Once{},
	}
	go s.serve()
	return s
}

// Close signals that no sender remains, waits for the worker to drain
// queued commands, and stops it. Idempotent. Calls on the handle after
// Close return model.ErrStoreClosed.
func (s ActorStore) Close() {
	s.closeOnce.Do(func() { close(s.closing) })
	<-s.stopped
}

func (s ActorStore) serve() {
	defer close(s.stopped)
	eng := newEngine()
	for {
		select {
		case cmd := <-s.commands:
			handle(eng, cmd)
		case <-s.closing:
			// Drain what was queued before the close, then stop.
			for {
				select {
				case cmd := <-s.commands:
					handle(eng, cmd)
				default:
					return
				}
			}
		}
	}
}

// handle answers on the command's reply channel. Replies are buffered,
// so an abandoned caller never blocks the worker.
func handle(eng *engine, cmd command) {
	switch c := cmd.(type) {
	case insertCmd:
		eng.insert(c.ticket)
		c.reply <- struct{}{}
	case getCmd:
		ticket, ok := eng.get(c.id)
		c.reply <- getReply{ticket: ticket, ok: ok}
	case patchCmd:
		c.reply <- eng.patch(c.id, c.patch)
	}
}

func (s ActorStore) send(ctx context.Context, cmd command) error {
	select {
	case <-s.closing:
		return model.ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case s.commands <- cmd:
		return nil
	case <-s.closing:
		return model.ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await blocks for the reply. If the worker stops first the command
// may still have been drained, so the reply buffer gets a final look
// before reporting the store closed.
func await[T any](ctx context.Context, s ActorStore, reply chan T) (T, error) {
	var zero T
	select {
	case v := <-reply:
		return v, nil
	case <-s.stopped:
		select {
		case v := <-reply:
			return v, nil
		default:
			return zero, model.ErrStoreClosed
		}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (s ActorStore) Insert(ctx context.Context, ticket model.Ticket) error {
	cmd := insertCmd{ticket: ticket, reply: make(chan struct{}, 1)}
	if err := s.send(ctx, cmd); err != nil {
		return err
	}
	_, err := await(ctx, s, cmd.reply)
	return err
}

func (s ActorStore) Get(ctx context.Context, id model.TicketID) (model.Ticket, bool, error) {
	cmd := getCmd{id: id, reply: make(chan getReply, 1)}
	if err := s.send(ctx, cmd); err != nil {
		return model.Ticket{}, false, err
	}
	r, err := await(ctx, s, cmd.reply)
	if err != nil {
		return model.Ticket{}, false, err
	}
	return r.ticket, r.ok, nil
}

func (s ActorStore) Patch(ctx context.Context, id model.TicketID, patch model.TicketPatch) error {
	cmd := patchCmd{id: id, patch: patch, reply: make(chan error, 1)}
	if err := s.send(ctx, cmd); err != nil {
		return err
	}
	replyErr, err := await(ctx, s, cmd.reply)
	if err != nil {
		return err
	}
	return replyErr
}

// Package rabbitmq publishes outbox messages to a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	ErrNoChannelAvailable = errors.New("no channels available in pool")
	ErrPoolClosed         = errors.New("channel pool is closed")
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type connection interface {
	Channel() (Channel, error)
	IsClosed() bool
	Close() error
}

type dialFunc func() (connection, error)

// amqpConnection opens channels with the target queue declared on them.
type amqpConnection struct {
	conn      *amqp.Connection
	queueName string
}

func (c amqpConnection) Channel() (Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		c.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", c.queueName, err)
	}

	return ch, nil
}

func (c amqpConnection) IsClosed() bool {
	return c.conn.IsClosed()
}

func (c amqpConnection) Close() error {
	return c.conn.Close()
}

// ChannelPool hands out at most size channels on one connection. Channels
// the broker closed are discarded and their slot is reopened on the next
// Acquire, re-dialing the connection when it dropped.
type ChannelPool struct {
	dial     dialFunc
	size     int
	mu       sync.Mutex
	conn     connection
	channels chan Channel
	// open counts live channels, pooled or checked out.
	open   int
	closed bool
	logger *zap.Logger
}

func NewChannelPool(url, queueName string, size int, logger *zap.Logger) (*ChannelPool, error) {
	dial := func() (connection, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		return amqpConnection{conn: conn, queueName: queueName}, nil
	}

	pool, err := newChannelPool(dial, size, logger)
	if err != nil {
		return nil, err
	}

	pool.logger.Info("channel pool ready", zap.Int("size", size), zap.String("queue", queueName))
	return pool, nil
}

func newChannelPool(dial dialFunc, size int, logger *zap.Logger) (*ChannelPool, error) {
	if size < 1 {
		return nil, fmt.Errorf("channel pool size must be positive, got %d", size)
	}

	pool := &ChannelPool{
		dial:     dial,
		size:     size,
		channels: make(chan Channel, size),
		logger:   logger.With(zap.String("component", "rabbitmq")),
	}

	pool.mu.Lock()
	defer pool.mu.Unlock()

	for i := range size {
		ch, err := pool.openChannel()
		if err != nil {
			pool.shutdown()
			return nil, fmt.Errorf("create channel %d: %w", i, err)
		}
		pool.channels <- ch
	}

	return pool, nil
}

// openChannel must be called with mu held.
func (p *ChannelPool) openChannel() (Channel, error) {
	if p.conn == nil || p.conn.IsClosed() {
		if p.conn != nil {
			p.logger.Warn("connection lost, reconnecting")
			_ = p.conn.Close()
			p.conn = nil
		}

		conn, err := p.dial()
		if err != nil {
			return nil, err
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}

	p.open++
	return ch, nil
}

// Acquire takes a live channel from the pool, opening one when a slot is
// free. It never blocks.
func (p *ChannelPool) Acquire() (Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}

	for {
		select {
		case ch := <-p.channels:
			if !ch.IsClosed() {
				return ch, nil
			}
			p.open--
			p.logger.Warn("discarding closed channel")
		default:
			if p.open >= p.size {
				return nil, ErrNoChannelAvailable
			}
			return p.openChannel()
		}
	}
}

// Release returns ch to the pool. A closed channel frees its slot instead.
func (p *ChannelPool) Release(ch Channel) {
	if ch == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if ch.IsClosed() {
		p.open--
		return
	}

	if p.closed {
		p.open--
		_ = ch.Close()
		return
	}

	select {
	case p.channels <- ch:
	default:
		p.open--
		_ = ch.Close()
	}
}

func (p *ChannelPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.shutdown()
	p.logger.Info("channel pool closed")
}

// shutdown must be called with mu held.
func (p *ChannelPool) shutdown() {
	p.closed = true

	for {
		select {
		case ch := <-p.channels:
			p.open--
			_ = ch.Close()
		default:
			if p.conn != nil {
				_ = p.conn.Close()
				p.conn = nil
			}
			return
		}
	}
}

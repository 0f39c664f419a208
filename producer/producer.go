// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package producer relays user snapshot changes to consumers over
// STAN/NATS.
package producer

import (
	"fmt"

	"github.com/TheRockettek/Sandwich-Users/discord"
	"github.com/TheRockettek/Sandwich-Users/events"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/stan.go"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack"
)

// Publisher is the part of stan.Conn the producer uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Producer publishes msgpack encoded StreamEvents on a single channel.
type Producer struct {
	Channel string

	publisher Publisher
	stan      stan.Conn
	nats      *nats.Conn
	log       zerolog.Logger
}

// New creates a Producer on top of an existing publisher.
func New(publisher Publisher, channel string, log zerolog.Logger) *Producer {
	return &Producer{
		Channel:   channel,
		publisher: publisher,
		log:       log,
	}
}

// Connect dials NATS and the streaming cluster.
func Connect(address, clusterID, clientID, channel string, log zerolog.Logger) (p *Producer, err error) {
	nc, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	sc, err := stan.Connect(clusterID, clientID, stan.NatsConn(nc))
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to connect to stan: %w", err)
	}

	log.Info().Str("address", address).Str("cluster", clusterID).Str("channel", channel).Msg("connected to stan")

	p = New(sc, channel, log)
	p.stan, p.nats = sc, nc
	return
}

// Produce publishes an event of the given type.
func (p *Producer) Produce(eventType string, data interface{}) (err error) {
	ep, err := msgpack.Marshal(events.StreamEvent{Type: eventType, Data: data})
	if err != nil {
		p.log.Warn().Err(err).Str("type", eventType).Msg("failed to marshal stream event")
		return
	}

	if err = p.publisher.Publish(p.Channel, ep); err != nil {
		p.log.Warn().Err(err).Str("type", eventType).Msg("failed to publish stream event")
		return
	}

	p.log.Debug().Str("type", eventType).Int("size", len(ep)).Msg("published stream event")
	return
}

// ProduceUser publishes a USER_UPDATE event carrying the snapshot.
func (p *Producer) ProduceUser(u discord.Userlike) error {
	return p.Produce(events.StreamUserUpdate, u.Marshaled())
}

// Close closes the underlying connections when the producer owns them.
func (p *Producer) Close() {
	if p.stan != nil {
		if err := p.stan.Close(); err != nil {
			p.log.Warn().Err(err).Msg("failed to close stan connection")
		}
	}
	if p.nats != nil {
		p.nats.Close()
	}
}

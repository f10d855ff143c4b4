// Package resolver drives the iterative delegation walk: it queries a root
// name server and follows NS referrals (using their glue addresses) until a
// server answers authoritatively for the target domain.
package resolver

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/rootwalk/internal/dns/common/clock"
	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/domain"
)

// Engine performs one resolution at a time. A single query is in flight
// per hop; no state is shared across hops beyond the original target
// domain and the running budgets.
type Engine struct {
	transport  Transport
	codec      Codec
	clock      clock.Clock
	logger     log.Logger
	queryType  domain.RRType
	maxHops    int
	hopTimeout time.Duration
	timeout    time.Duration
	newID      func() uint16
}

// Options defines configuration parameters for the resolution engine.
// Transport and Codec are required; everything else has a sane default.
type Options struct {
	Transport  Transport
	Codec      Codec
	Clock      clock.Clock
	Logger     log.Logger
	QueryType  domain.RRType // A or AAAA; defaults to A
	MaxHops    int           // delegation hops before giving up
	HopTimeout time.Duration // budget for a single query/response exchange
	Timeout    time.Duration // budget for the whole walk
}

// New creates a resolution engine from the given options.
func New(opts Options) (*Engine, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("codec is required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.QueryType == 0 {
		opts.QueryType = domain.RRTypeA
	}
	if !opts.QueryType.IsQueryable() {
		return nil, fmt.Errorf("unsupported query type: %s", opts.QueryType)
	}
	if opts.MaxHops <= 0 {
		opts.MaxHops = 16
	}
	if opts.HopTimeout <= 0 {
		opts.HopTimeout = 5 * time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Engine{
		transport:  opts.Transport,
		codec:      opts.Codec,
		clock:      opts.Clock,
		logger:     opts.Logger,
		queryType:  opts.QueryType,
		maxHops:    opts.MaxHops,
		hopTimeout: opts.HopTimeout,
		timeout:    opts.Timeout,
		newID:      func() uint16 { return uint16(rand.Uint32()) },
	}, nil
}

// Result is a successful resolution.
type Result struct {
	Domain  string // the target domain as given
	Address string // interpreted address from the first answer record
	Server  string // the server that answered authoritatively
	Hops    int    // number of query/response exchanges performed
}

// Resolve walks the delegation chain for domainName starting at
// startServer (conventionally a root server, as a bare IP address).
// Every hop re-queries for the original target domain; no response data
// is retained across hops. Any transport or parse error is terminal.
func (e *Engine) Resolve(ctx context.Context, domainName, startServer string) (Result, error) {
	deadline := e.clock.Now().Add(e.timeout)

	visited, err := lru.New[string, struct{}](e.maxHops)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create loop guard: %w", err)
	}

	state := StateInit
	server := startServer

	for hop := 1; hop <= e.maxHops; hop++ {
		if e.clock.Now().After(deadline) {
			return e.fail(domainName, server, fmt.Errorf("resolution deadline exceeded: %w", context.DeadlineExceeded))
		}
		if visited.Contains(server) {
			return e.fail(domainName, server, fmt.Errorf("%w: %s was already queried", ErrDelegationLoop, server))
		}
		visited.Add(server, struct{}{})

		state = StateAwaitingResponse
		e.logger.Debug(map[string]any{
			"state":  state.String(),
			"domain": domainName,
			"server": server,
			"hop":    hop,
		}, "Querying name server")

		msg, err := e.exchange(ctx, domainName, server)
		if err != nil {
			return e.fail(domainName, server, err)
		}

		if ns, ok := msg.FirstAuthorityNS(); ok {
			glue, ok := msg.Glue(ns.Data, e.queryType)
			if !ok {
				return e.fail(domainName, server,
					fmt.Errorf("%w: no additional address for %s", ErrUnresolvedDelegation, ns.Data))
			}
			state = StateDelegated
			e.logger.Debug(map[string]any{
				"state":  state.String(),
				"domain": domainName,
				"ns":     ns.Data,
				"glue":   glue,
				"hop":    hop,
			}, "Following delegation")
			server = glue
			continue
		}

		if len(msg.Answers) > 0 {
			state = StateResolved
			answer := msg.Answers[0]
			e.logger.Info(map[string]any{
				"state":   state.String(),
				"domain":  domainName,
				"address": answer.Data,
				"type":    answer.Type.String(),
				"server":  server,
				"hops":    hop,
			}, "Resolution complete")
			return Result{
				Domain:  domainName,
				Address: answer.Data,
				Server:  server,
				Hops:    hop,
			}, nil
		}

		return e.fail(domainName, server, ErrEmptyAnswer)
	}

	return e.fail(domainName, server, fmt.Errorf("%w: %d hops", ErrHopBudgetExceeded, e.maxHops))
}

// exchange performs one hop: encode, send, receive, decode. The socket is
// opened and released inside the transport; nothing survives the hop.
func (e *Engine) exchange(ctx context.Context, domainName, server string) (domain.Message, error) {
	id := e.newID()
	q, err := domain.NewQuestion(id, domainName, e.queryType)
	if err != nil {
		return domain.Message{}, err
	}

	packet, err := e.codec.EncodeQuery(q)
	if err != nil {
		return domain.Message{}, err
	}

	hopCtx, cancel := context.WithTimeout(ctx, e.hopTimeout)
	defer cancel()

	data, err := e.transport.Exchange(hopCtx, server, packet)
	if err != nil {
		return domain.Message{}, fmt.Errorf("transport failed: %w", err)
	}

	return e.codec.DecodeMessage(data, id)
}

// fail logs the terminal failure with enough context to diagnose it and
// returns the error annotated with the domain and the last server queried.
func (e *Engine) fail(domainName, server string, err error) (Result, error) {
	e.logger.Error(map[string]any{
		"state":  StateFailed.String(),
		"domain": domainName,
		"server": server,
		"error":  err.Error(),
	}, "Resolution failed")
	return Result{}, fmt.Errorf("resolving %s via %s: %w", domainName, server, err)
}

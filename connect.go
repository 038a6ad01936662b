// SPDX-License-Identifier: GPL-3.0-or-later

package dnssd

import "context"

// Connection is a shared DNSServiceCreateConnection handle (spec §4.4
// "Connect"). Its only operation is [Connection.RegisterRecord]; multiple
// records may be registered concurrently against the same connection. FFI
// calls are serialized behind a mutex and a single background goroutine
// drives readiness (spec §4.2 "Shared handle").
type Connection struct {
	api    api
	ref    serviceRef
	shared *SharedHandle
}

// Connect opens a shared connection for registering individual resource
// records outside of a service registration.
func Connect(ctx context.Context, cfg *Config) (*Connection, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	spanID := NewSpanID()
	logger := cfg.Logger
	logger.Info("connectStart", "spanID", spanID)

	ref, err := cfg.API.createConnection()
	if err != nil {
		logger.Info("connectDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	shared, err := newSharedHandle(ctx, cfg.API, ref)
	if err != nil {
		logger.Info("connectDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	logger.Info("connectDone", "spanID", spanID)
	return &Connection{api: cfg.API, ref: ref, shared: shared}, nil
}

// RegisterRecord registers a resource record on this connection, returning
// a future that resolves to a [Record] handle (spec §8 scenario 4).
func (c *Connection) RegisterRecord(ctx context.Context, cfg *Config, ifIndex Interface, fullname string, rrtype Type, rrclass Class, rdata []byte, ttl uint32) (*Future[*Record], error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if len(rdata) > 0xffff {
		return nil, NewInputError(InputErrorRDATATooLong, "")
	}
	spanID := NewSpanID()
	logger := cfg.Logger
	logger.Info("recordRegisterStart", "spanID", spanID, "fullname", fullname, "type", rrtype.String())

	f, _ := newFuture[*Record](nil)
	ch := make(chan futureResult[*Record], 1)
	cb := func(flags Flags, errCode int32) {
		if errCode != 0 {
			logger.Debug("recordRegisterCallbackError", "spanID", spanID, "errClass", cfg.ErrClassifier.Classify(NewAPIError(errCode)))
			select {
			case ch <- futureResult[*Record]{err: AsIOError(NewAPIError(errCode))}:
			default:
			}
			return
		}
		logger.Debug("recordRegisterCallback", "spanID", spanID)
		select {
		case ch <- futureResult[*Record]{}:
		default:
		}
	}

	c.shared.addRef()
	var rec recordRef
	err := c.shared.withLock(func() error {
		var err error
		rec, err = c.api.registerRecord(c.ref, ifIndex, fullname, rrtype, rrclass, rdata, ttl, cb)
		return err
	})
	if err != nil {
		c.shared.release()
		logger.Info("recordRegisterDone", "spanID", spanID, "err", err.Error())
		return nil, AsIOError(err)
	}

	record := newRecord(c.api, c.ref, rec, c.shared)
	go func() {
		r, err := waitSharedRecord(ctx, ch, c.shared)
		if err != nil {
			select {
			case f.result <- futureResult[*Record]{err: err}:
			default:
			}
			return
		}
		_ = r
		select {
		case f.result <- futureResult[*Record]{val: record}:
		default:
		}
	}()

	logger.Info("recordRegisterDone", "spanID", spanID)
	return f, nil
}

// waitSharedRecord waits for either the record-register callback or the
// shared connection's background driver to latch a terminal error.
func waitSharedRecord(ctx context.Context, ch <-chan futureResult[*Record], shared *SharedHandle) (*Record, error) {
	select {
	case r := <-ch:
		return r.val, r.err
	case <-shared.Done():
		return nil, AsIOError(shared.Err())
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close releases this connection once all outstanding records derived
// from it have also been closed (spec §9 "last-drop on the parent frees
// the handle").
func (c *Connection) Close() error {
	c.shared.release()
	return nil
}

// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows

package ready

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

// selectSource is the Windows [Source]. IOCP has no primitive for readable
// notifications on a socket the daemon owns, so a per-fd background thread
// loops a `select` with a ~1s timeout and reports results over a channel
// (spec §9 "Windows readiness" — "not ideal, but the simplest portable
// answer").
type selectSource struct {
	fd      windows.Handle
	requind chan struct{}
	readyCh chan error
	done    chan struct{}
}

// New returns a [Source] watching fd for readability.
func New(fd int) (Source, error) {
	s := &selectSource{
		fd:      windows.Handle(fd),
		requind: make(chan struct{}),
		readyCh: make(chan error),
		done:    make(chan struct{}),
	}
	go s.loop()
	return s, nil
}

func (s *selectSource) loop() {
	for {
		select {
		case <-s.requind:
		case <-s.done:
			return
		}
		err := s.pollOnce(1 * time.Second)
		for err == errWouldBlock {
			select {
			case <-s.done:
				return
			default:
			}
			err = s.pollOnce(1 * time.Second)
		}
		select {
		case s.readyCh <- err:
		case <-s.done:
			return
		}
	}
}

var errWouldBlock = fmt.Errorf("ready: select timed out")

// pollOnce performs a single fd_set-based select with the given timeout.
// A zero-timeout probe is issued first (spec §9's specified mitigation for
// the clear-readiness-vs-new-event race) before the full-timeout wait.
func (s *selectSource) pollOnce(timeout time.Duration) error {
	if ready, err := s.selectOnce(0); err != nil {
		return err
	} else if ready {
		return nil
	}
	ready, err := s.selectOnce(timeout)
	if err != nil {
		return err
	}
	if !ready {
		return errWouldBlock
	}
	return nil
}

// selectOnce wraps the single underlying select(2)-equivalent syscall.
func (s *selectSource) selectOnce(timeout time.Duration) (bool, error) {
	var fds windows.FdSet
	fds.Bits[s.fd/64] |= 1 << (uint(s.fd) % 64)
	tv := windows.NsecToTimeval(timeout.Nanoseconds())
	n, err := windows.Select(int(s.fd)+1, &fds, nil, nil, &tv)
	if err != nil {
		return false, fmt.Errorf("ready: select: %w", err)
	}
	return n > 0, nil
}

func (s *selectSource) Wait(ctx context.Context) error {
	select {
	case s.requind <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return fmt.Errorf("ready: closed")
	}
	select {
	case err := <-s.readyCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return fmt.Errorf("ready: closed")
	}
}

func (s *selectSource) Close() error {
	close(s.done)
	return nil
}

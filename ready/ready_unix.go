// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package ready

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// epollSource is the Unix [Source]: one level-triggered epoll instance per
// fd. Because the registration is level-triggered, a readiness event that
// arrives between "we read it all" and "we call EpollWait again" is still
// reported by the next EpollWait, so no separate probe is issued.
type epollSource struct {
	fd     int
	epfd   int
	closed chan struct{}
}

// New returns a [Source] watching fd for readability.
func New(fd int) (Source, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("ready: epoll_create1: %w", err)
	}
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		unix.Close(epfd)
		return nil, fmt.Errorf("ready: epoll_ctl: %w", err)
	}
	return &epollSource{fd: fd, epfd: epfd, closed: make(chan struct{})}, nil
}

func (s *epollSource) Wait(ctx context.Context) error {
	// EpollWait runs in 250ms slices so that ctx cancellation and Close are
	// noticed between slices; an fd that is already readable makes it
	// return immediately.
	events := make([]unix.EpollEvent, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.closed:
			return fmt.Errorf("ready: closed")
		default:
		}
		n, err := unix.EpollWait(s.epfd, events, 250)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return fmt.Errorf("ready: epoll_wait: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
}

func (s *epollSource) Close() error {
	close(s.closed)
	return unix.Close(s.epfd)
}

// Copyright (C) 2024 Tim Bastin, l3montree UG (haftungsbeschränkt)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import (
	"log/slog"
	"sync"
)

// FireAndForgetSynchronizer runs work whose outcome must not influence the caller.
type FireAndForgetSynchronizer interface {
	FireAndForget(fn func())
}

type asyncFireAndForgetSynchronizer struct {
	wg sync.WaitGroup
}

func NewFireAndForgetSynchronizer() *asyncFireAndForgetSynchronizer {
	return &asyncFireAndForgetSynchronizer{}
}

func (s *asyncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic in fire and forget function", "panic", r)
			}
		}()
		fn()
	}()
}

// Wait blocks until every scheduled function returned. Used on shutdown.
func (s *asyncFireAndForgetSynchronizer) Wait() {
	s.wg.Wait()
}

type syncFireAndForgetSynchronizer struct{}

// NewSyncFireAndForgetSynchronizer executes the functions inline. Mostly useful in tests.
func NewSyncFireAndForgetSynchronizer() syncFireAndForgetSynchronizer {
	return syncFireAndForgetSynchronizer{}
}

func (syncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	fn()
}

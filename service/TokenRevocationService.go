// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"errors"
	"sync"
	"time"

	"github.com/buraksezer/olric"
	"github.com/euscan/euscanwww/cache"
	"github.com/euscan/euscanwww/utils"
	"github.com/shaj13/go-guardian/v2/auth/claims"
	log "github.com/sirupsen/logrus"
)

const userTokenRevocationsDMap = "UserTokenRevocations"

type TokenRevocationService interface {
	RevokeUserTokens(userId string) error
	IsTokenRevoked(userId string, tokenCreationTimestamp int64) bool
}

func NewTokenRevocationService(provider cache.OlricProvider, cacheTTLSec int) TokenRevocationService {
	service := &tokenRevocationServiceImpl{
		olricProvider: provider,
		cacheTTL:      time.Duration(cacheTTLSec) * time.Second,
	}
	service.ready.Add(1)
	utils.SafeAsync(service.initWhenOlricReady)
	return service
}

type tokenRevocationServiceImpl struct {
	olricProvider cache.OlricProvider
	revocations   *olric.DMap
	cacheTTL      time.Duration
	ready         sync.WaitGroup
	mutex         sync.RWMutex
}

func (t *tokenRevocationServiceImpl) getRevocations() *olric.DMap {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.revocations
}

func (t *tokenRevocationServiceImpl) initWhenOlricReady() {
	for {
		dmap, err := t.olricProvider.Get().NewDMap(userTokenRevocationsDMap)
		if err == nil {
			t.mutex.Lock()
			t.revocations = dmap
			t.mutex.Unlock()
			break
		}
		log.Errorf("Failed to create dmap %s, going to retry: %s", userTokenRevocationsDMap, err.Error())
		time.Sleep(5 * time.Second)
	}
	t.ready.Done()
	log.Info("TokenRevocationService is ready")
}

// RevokeUserTokens invalidates every token issued to the user until now.
func (t *tokenRevocationServiceImpl) RevokeUserTokens(userId string) error {
	t.ready.Wait()
	// go-guardian backdates issued-at by the leeway, so the revocation point is backdated too
	revokedAt := time.Now().Add(-claims.DefaultLeeway).Unix()
	return t.getRevocations().PutEx(userId, revokedAt, t.cacheTTL)
}

func (t *tokenRevocationServiceImpl) IsTokenRevoked(userId string, tokenCreationTimestamp int64) bool {
	revocations := t.getRevocations()
	if revocations == nil {
		return false
	}
	val, err := revocations.Get(userId)
	if err != nil {
		if errors.Is(err, olric.ErrKeyNotFound) {
			return false
		}
		log.Errorf("Error getting revocation timestamp: %v", err)
		return true
	}
	revokedAt, _ := val.(int64)
	return issuedBeforeRevocation(tokenCreationTimestamp, revokedAt)
}

// issuedBeforeRevocation compares unix seconds; both carry the same leeway, so a token issued within the revocation second is revoked too.
func issuedBeforeRevocation(issuedAt int64, revokedAt int64) bool {
	return issuedAt <= revokedAt
}

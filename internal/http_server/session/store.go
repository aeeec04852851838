// Package session
package session

import (
	"context"
	"errors"
	c "github.com/half-nothing/flyleague-events/internal/interfaces/config"
	"github.com/half-nothing/flyleague-events/internal/interfaces/global"
	"github.com/half-nothing/flyleague-events/internal/interfaces/log"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"github.com/thanhpk/randstr"
	"sync"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session does not exist")
)

// MemoryStore 进程内会话存储, 令牌到用户快照的映射.
// 快照在登录时固定, 会话存续期内对用户记录的修改不会反映到快照上.
type MemoryStore struct {
	logger   log.LoggerInterface
	config   *c.SessionConfig
	lock     sync.RWMutex
	sessions map[string]*SessionRecord
	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore(logger log.LoggerInterface, config *c.SessionConfig) *MemoryStore {
	return &MemoryStore{
		logger:   logger,
		config:   config,
		sessions: make(map[string]*SessionRecord),
		stop:     make(chan struct{}),
	}
}

func (store *MemoryStore) Get(token string) (*SessionRecord, bool) {
	store.lock.RLock()
	record, ok := store.sessions[token]
	store.lock.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(record.ExpiresAt) {
		store.lock.Lock()
		delete(store.sessions, token)
		store.lock.Unlock()
		return nil, false
	}
	return record, true
}

func (store *MemoryStore) Attach(user *operation.User) (string, error) {
	token := randstr.Hex(store.config.TokenLength)
	record := &SessionRecord{
		User:      user,
		ExpiresAt: time.Now().Add(store.config.ExpiresDuration),
	}
	store.lock.Lock()
	defer store.lock.Unlock()
	store.sessions[token] = record
	return token, nil
}

func (store *MemoryStore) Destroy(token string) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if _, ok := store.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(store.sessions, token)
	return nil
}

// StartCleanup 启动后台清理协程, 周期剔除已过期会话
func (store *MemoryStore) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				store.removeExpired()
			case <-store.stop:
				return
			}
		}
	}()
}

func (store *MemoryStore) removeExpired() {
	now := time.Now()
	store.lock.Lock()
	defer store.lock.Unlock()
	removed := 0
	for token, record := range store.sessions {
		if now.After(record.ExpiresAt) {
			delete(store.sessions, token)
			removed++
		}
	}
	if removed > 0 {
		store.logger.DebugF("Session cleanup removed %d expired sessions", removed)
	}
}

type SessionStoreShutdownCallback struct {
	store *MemoryStore
}

func NewSessionStoreShutdownCallback(store *MemoryStore) *SessionStoreShutdownCallback {
	return &SessionStoreShutdownCallback{store: store}
}

func (sc *SessionStoreShutdownCallback) Invoke(_ context.Context) error {
	sc.store.stopOnce.Do(func() { close(sc.store.stop) })
	return nil
}

var _ SessionStoreInterface = (*MemoryStore)(nil)
var _ global.Callable = (*SessionStoreShutdownCallback)(nil)

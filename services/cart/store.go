package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"goldenfish/models"
	"goldenfish/utils"

	"github.com/go-redis/redis/v8"
)

// sessionTTL is how long an idle cart survives. Refreshed on every write.
const sessionTTL = 2 * time.Hour

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = fmt.Errorf("order session not found or expired")

// SessionStore persists order sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.OrderSession, error)
	Save(ctx context.Context, session *models.OrderSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in the dedicated session Redis database.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore returns a store over the shared session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{Client: utils.GetSessionCacheClient()}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order session: %w", err)
	}
	var session models.OrderSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse order session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.OrderSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal order session: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store order session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete order session: %w", err)
	}
	return nil
}

// MemorySessionStore is an in-process store for tests and local development.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.OrderSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.OrderSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.OrderSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.SessionID] = &cp
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

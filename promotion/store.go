package promotion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Govind-619/Storefront/models"
	"github.com/gin-contrib/sessions"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists string-encoded expiry timestamps
type Store interface {
	// Load returns the value under key; ok is false when nothing is stored
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

// Scopes for promotion keys
const (
	ScopeGlobal  = "global"
	ScopeProduct = "product"
)

// BaseKey is the storage key of the shared flash-sale deadline
const BaseKey = "saleEndTime"

// Key returns the storage key for productID under scope. The global scope
// shares one deadline across every product page.
func Key(scope, productID string) string {
	if scope == ScopeProduct && productID != "" {
		return BaseKey + ":" + productID
	}
	return BaseKey
}

// MemoryStore keeps deadlines in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Load(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Save(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// SessionStore keeps deadlines in the visitor's cookie session, so each
// browser carries its own countdown across reloads.
type SessionStore struct {
	session sessions.Session
}

// NewSessionStore wraps the request's session
func NewSessionStore(session sessions.Session) *SessionStore {
	return &SessionStore{session: session}
}

func (s *SessionStore) Load(_ context.Context, key string) (string, bool, error) {
	v, ok := s.session.Get(key).(string)
	return v, ok && v != "", nil
}

func (s *SessionStore) Save(_ context.Context, key, value string) error {
	s.session.Set(key, value)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// RedisStore shares deadlines between every visitor and server instance
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore stores keys under prefix; entries expire after ttl (0 keeps them)
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) Load(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisStore) Save(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// GormStore keeps deadlines in the promotion_windows table
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open, migrated database
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) Load(ctx context.Context, key string) (string, bool, error) {
	var window models.PromotionWindow
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&window).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load promotion window %s: %w", key, err)
	}
	return window.ExpiresAt, true, nil
}

func (g *GormStore) Save(ctx context.Context, key, value string) error {
	window := models.PromotionWindow{Key: key, ExpiresAt: value, UpdatedAt: time.Now()}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"expires_at", "updated_at"}),
	}).Create(&window).Error
	if err != nil {
		return fmt.Errorf("save promotion window %s: %w", key, err)
	}
	return nil
}

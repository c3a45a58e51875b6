package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/pkg"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "traininglog-session||"
	tokensSetKey     = "traininglog-sessions"
	stateKeyPrefix   = "traininglog-oauth-state||"
	stateTTL         = 10 * time.Minute
	tokenLength      = 35
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type Session struct {
	Token     string
	User      User
	CreatedAt time.Time
}

type storedSession struct {
	User      User  `json:"user"`
	CreatedAt int64 `json:"createdAt"`
}

// SessionStore keeps login sessions and pending OAuth states in redis.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Create starts a session for the user and returns its token.
func (s *SessionStore) Create(ctx context.Context, user User, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	value, err := json.Marshal(storedSession{User: user, CreatedAt: createdAt.Unix()})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, string(value), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("index session: %w", err)
	}

	return token, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.get(ctx, token)
	if err != nil {
		return nil, err
	}
	if time.Since(session.CreatedAt) > s.ttl {
		return nil, ErrSessionExpired
	}
	return session, nil
}

func (s *SessionStore) get(ctx context.Context, token string) (*Session, error) {
	value, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &Session{
		Token:     token,
		User:      stored.User,
		CreatedAt: time.Unix(stored.CreatedAt, 0),
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	// remove token from the list of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("unindex session: %w", err)
	}
	return nil
}

// NewState stores a one-time OAuth state value.
func (s *SessionStore) NewState(ctx context.Context) (string, error) {
	state, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	if err := s.redisClient.Set(ctx, stateKeyPrefix+state, 1, stateTTL).Err(); err != nil {
		return "", fmt.Errorf("store state: %w", err)
	}
	return state, nil
}

// ConsumeState reports whether the state was issued and not used yet.
// A state can only be consumed once.
func (s *SessionStore) ConsumeState(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	deleted, err := s.redisClient.Del(ctx, stateKeyPrefix+state).Result()
	if err != nil {
		return false, fmt.Errorf("consume state: %w", err)
	}
	return deleted == 1, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (s *SessionStore) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth sessions, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> auth sessions, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth sessions, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		session, err := s.get(ctx, token)
		if errors.Is(err, ErrSessionNotFound) {
			// expired in redis already, only the index entry is left
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> auth sessions, scan and clean token %s: %s", token, err)
			continue
		}
		if time.Since(session.CreatedAt) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := s.Delete(ctx, token); err != nil {
			log.Errorf("=> auth sessions, clean token %s: %s", token, err)
		}
	}
	log.Debugf("=> auth sessions, cleaned %d sessions", len(toRemove))
}

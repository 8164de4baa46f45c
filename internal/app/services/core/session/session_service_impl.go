package session

import (
	"context"
	"sync"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const sessionKeyPrefix = "session:"

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
		}
	})
	return sessionServiceInstance
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return svc.RedisRepository.Set(ctx, sessionIDKey(session.SessionID), session, ttl)
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionIDKey(sessionID))
	// redis returns empty string without error when the key expired
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}
	if sessionData == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionIDKey(sessionID))
}

func sessionIDKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

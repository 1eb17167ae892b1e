// Package redis implements the challenge store on Redis. Each pending
// challenge is one JSON document under a key derived from the subject, so
// "at most one live challenge per subject" falls out of plain SET
// overwrite semantics.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"staffhub/config"
	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/lifecycle"
	"staffhub/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "challenge:"

// ttlSlack pads the Redis key TTL beyond the challenge deadline. Expiry
// is decided by the validator comparing ExpiresAt; the key TTL is only a
// cleanup aid and must never fire first.
const ttlSlack = time.Minute

// challengeDocument is the persisted record shape, keyed by subject.
type challengeDocument struct {
	Code      string `json:"code"`
	CreatedAt int64  `json:"createdAt"`
	ExpiresAt int64  `json:"expiresAt"`
	Type      string `json:"type"`
	UID       string `json:"uid,omitempty"`
}

type challengeRepository struct {
	client *goredis.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewChallengeRepository connects to Redis and returns the challenge
// store bound to it. The connection is pinged on start and closed on stop.
func NewChallengeRepository(params Params) (repository.ChallengeRepository, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis challenge store selected but redis is not configured")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return newChallengeRepository(client), nil
}

// newChallengeRepository wraps an existing client. Used directly by tests.
func newChallengeRepository(client *goredis.Client) *challengeRepository {
	return &challengeRepository{client: client}
}

// Save persists the challenge under its subject key, overwriting any
// prior challenge for the same subject. Last writer wins.
func (repo *challengeRepository) Save(ctx context.Context, challenge *entity.Challenge) error {
	doc := challengeDocument{
		Code:      challenge.Code,
		CreatedAt: challenge.CreatedAt.UnixMilli(),
		ExpiresAt: challenge.ExpiresAt.UnixMilli(),
		Type:      challenge.FlowType.String(),
		UID:       challenge.OwnerUID,
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal challenge")
	}

	ttl := challenge.ExpiresAt.Sub(challenge.CreatedAt) + ttlSlack
	if ttl <= 0 {
		ttl = ttlSlack
	}

	if err := repo.client.Set(ctx, keyPrefix+challenge.Subject, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store challenge")
	}

	return nil
}

// Find retrieves the pending challenge for a subject.
func (repo *challengeRepository) Find(ctx context.Context, subject string) (*entity.Challenge, error) {
	payload, err := repo.client.Get(ctx, keyPrefix+subject).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to load challenge")
	}

	var doc challengeDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal challenge")
	}

	return &entity.Challenge{
		Subject:   subject,
		Code:      doc.Code,
		FlowType:  entity.FlowType(doc.Type),
		OwnerUID:  doc.UID,
		CreatedAt: time.UnixMilli(doc.CreatedAt),
		ExpiresAt: time.UnixMilli(doc.ExpiresAt),
	}, nil
}

// Delete removes the challenge for a subject. Absent keys are not an error.
func (repo *challengeRepository) Delete(ctx context.Context, subject string) error {
	if err := repo.client.Del(ctx, keyPrefix+subject).Err(); err != nil {
		return errors.Wrap(err, "failed to delete challenge")
	}

	return nil
}

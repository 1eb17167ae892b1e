// Package firestore implements the challenge store on Cloud Firestore,
// one document per subject in the "otps" collection.
package firestore

import (
	"context"
	"time"

	cloudfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"staffhub/config"
	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/repository"
)

const challengeCollection = "otps"

// challengeDocument is the persisted record shape, keyed by subject.
// Timestamps are epoch milliseconds.
type challengeDocument struct {
	Code      string `firestore:"code"`
	CreatedAt int64  `firestore:"createdAt"`
	ExpiresAt int64  `firestore:"expiresAt"`
	Type      string `firestore:"type"`
	UID       string `firestore:"uid,omitempty"`
}

type challengeRepository struct {
	client *cloudfirestore.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// NewChallengeRepository initializes the Firebase app and returns the
// challenge store bound to its Firestore client.
func NewChallengeRepository(params Params) (repository.ChallengeRepository, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firestore challenge store selected but firebase is not configured")
	}

	var opts []option.ClientOption
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID: params.Config.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &challengeRepository{client: client}, nil
}

// Save persists the challenge as the subject's document, overwriting any
// prior one. Document Set is atomic per key, which is all the contract needs.
func (repo *challengeRepository) Save(ctx context.Context, challenge *entity.Challenge) error {
	doc := challengeDocument{
		Code:      challenge.Code,
		CreatedAt: challenge.CreatedAt.UnixMilli(),
		ExpiresAt: challenge.ExpiresAt.UnixMilli(),
		Type:      challenge.FlowType.String(),
		UID:       challenge.OwnerUID,
	}

	_, err := repo.client.Collection(challengeCollection).Doc(challenge.Subject).Set(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to store challenge")
	}

	return nil
}

// Find retrieves the pending challenge for a subject.
func (repo *challengeRepository) Find(ctx context.Context, subject string) (*entity.Challenge, error) {
	snap, err := repo.client.Collection(challengeCollection).Doc(subject).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to load challenge")
	}

	var doc challengeDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode challenge document")
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

// Delete removes the challenge for a subject. Absent documents are not an
// error: Firestore deletes are idempotent.
func (repo *challengeRepository) Delete(ctx context.Context, subject string) error {
	_, err := repo.client.Collection(challengeCollection).Doc(subject).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete challenge")
	}

	return nil
}

package profiles

import (
	"context"
	"log/slog"

	"github.com/nfrund/househarmony/internal/domain"
	"github.com/nfrund/househarmony/internal/pubsub"
)

// ProfileEvent is published after the service confirmed a change.
type ProfileEvent struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
	Icon string `json:"icon,omitempty"`
}

var (
	ProfileCreated = pubsub.NewEvent[ProfileEvent]("profiles.created")
	ProfileUpdated = pubsub.NewEvent[ProfileEvent]("profiles.updated")
	ProfileDeleted = pubsub.NewEvent[ProfileEvent]("profiles.deleted")
)

// publishingService decorates a Service so that every successful mutation
// is announced on the bus. Failed calls publish nothing.
type publishingService struct {
	Service
	pub pubsub.Publisher
}

// WithEvents wraps svc so successful create, update and delete calls publish
// a ProfileEvent. A nil publisher returns svc unchanged.
func WithEvents(svc Service, pub pubsub.Publisher) Service {
	if pub == nil {
		return svc
	}
	return &publishingService{Service: svc, pub: pub}
}

func (s *publishingService) Create(ctx context.Context, draft domain.Draft) (domain.Profile, error) {
	p, err := s.Service.Create(ctx, draft)
	if err == nil {
		s.publish(ctx, ProfileCreated, ProfileEvent{ID: p.ID, Name: p.Name, Icon: p.Icon})
	}
	return p, err
}

func (s *publishingService) Update(ctx context.Context, id int64, patch domain.Draft) (domain.Profile, error) {
	p, err := s.Service.Update(ctx, id, patch)
	if err == nil {
		s.publish(ctx, ProfileUpdated, ProfileEvent{ID: p.ID, Name: p.Name, Icon: p.Icon})
	}
	return p, err
}

func (s *publishingService) Delete(ctx context.Context, id int64) error {
	err := s.Service.Delete(ctx, id)
	if err == nil {
		s.publish(ctx, ProfileDeleted, ProfileEvent{ID: id})
	}
	return err
}

// publish never fails the call: the change already happened on the service.
func (s *publishingService) publish(ctx context.Context, event pubsub.Event[ProfileEvent], payload ProfileEvent) {
	if err := pubsub.Publish(ctx, s.pub, event, payload); err != nil {
		slog.Error("Failed to publish profile event", "topic", event.Name(), "profile_id", payload.ID, "error", err)
	}
}

// SubscribeAudit logs every profile change seen on the bus.
func SubscribeAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	for _, event := range []pubsub.Event[ProfileEvent]{ProfileCreated, ProfileUpdated, ProfileDeleted} {
		topic := event.Name()
		err := pubsub.Subscribe(ctx, sub, event, func(ctx context.Context, e ProfileEvent) error {
			logger.Info("Profile changed", "topic", topic, "profile_id", e.ID, "name", e.Name)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

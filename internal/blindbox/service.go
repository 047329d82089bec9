package blindbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/lukeramljak/charsibot/internal/catalog"
	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/event"
	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/metrics"
	"github.com/lukeramljak/charsibot/internal/repository"
)

// Service defines the interface for blind box operations
type Service interface {
	Redeem(ctx context.Context, req domain.RedemptionRequest) (*domain.RedemptionOutcome, error)
	RedeemByRewardTitle(ctx context.Context, userID, username, rewardTitle string) (*domain.RedemptionOutcome, error)
	GetCollection(ctx context.Context, userID, username, collectionType string) (*domain.CollectionView, error)
	ShowCollection(ctx context.Context, req domain.RedemptionRequest) (*domain.CollectionView, error)
	ResetCollection(ctx context.Context, userID, collectionType string) error
	CompletedCollections(ctx context.Context) ([]domain.CompletedCollection, error)
	Catalogs() []domain.CollectionCatalog
}

type service struct {
	catalog  *catalog.Catalog
	repo     repository.Collection
	bus      event.Publisher
	selector *Selector
}

// NewService creates a new blind box service
func NewService(cat *catalog.Catalog, repo repository.Collection, bus event.Publisher) Service {
	return &service{
		catalog:  cat,
		repo:     repo,
		bus:      bus,
		selector: NewSelector(),
	}
}

// Redeem draws one reward, records it and announces the result. The event is
// only published after the ownership change is committed.
func (s *service) Redeem(ctx context.Context, req domain.RedemptionRequest) (*domain.RedemptionOutcome, error) {
	log := logger.FromContext(ctx)

	if err := validateUser(req.UserID, req.Username); err != nil {
		return nil, err
	}

	cat, err := s.catalog.Get(req.CollectionType)
	if err != nil {
		return nil, err
	}

	slotID := s.selector.Pick(cat.Slots)
	slot, ok := cat.Slot(slotID)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidConfiguration, ErrMsgNoSelectableSlot, cat.CollectionType)
	}

	result, err := s.repo.RecordOwnership(ctx, req.UserID, req.Username, cat.CollectionType, slot.Key)
	if err != nil {
		metrics.BlindBoxFailures.WithLabelValues(cat.CollectionType).Inc()
		log.Error(LogMsgRecordOwnershipFailed,
			"user_id", req.UserID,
			"collection_type", cat.CollectionType,
			"slot", slot.Key,
			"error", err)
		return nil, err
	}

	outcome := &domain.RedemptionOutcome{
		UserID:         req.UserID,
		Username:       req.Username,
		CollectionType: cat.CollectionType,
		SeriesName:     cat.SeriesName(),
		Slot:           slot,
		IsNew:          !result.WasAlreadyOwned,
		OwnedSlots:     result.OwnedSlots,
		TotalSlots:     len(cat.Slots),
	}

	log.Info(LogMsgRedeemed,
		"user_id", req.UserID,
		"username", req.Username,
		"collection_type", cat.CollectionType,
		"slot", slot.Key,
		"is_new", outcome.IsNew,
		"owned", len(outcome.OwnedSlots))

	s.publish(ctx, event.NewBlindBoxRedeemedEvent(domain.NewRedemptionPayload(outcome), event.SourceFromContext(ctx)))

	return outcome, nil
}

// RedeemByRewardTitle redeems the collection bound to a channel point reward
func (s *service) RedeemByRewardTitle(ctx context.Context, userID, username, rewardTitle string) (*domain.RedemptionOutcome, error) {
	cat, ok := s.catalog.ByRewardTitle(rewardTitle)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrUnknownCollectionType, ErrMsgUnknownReward, rewardTitle)
	}
	return s.Redeem(ctx, domain.RedemptionRequest{
		UserID:         userID,
		Username:       username,
		CollectionType: cat.CollectionType,
	})
}

// GetCollection returns the user's progress without notifying overlays
func (s *service) GetCollection(ctx context.Context, userID, username, collectionType string) (*domain.CollectionView, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	cat, err := s.catalog.Get(collectionType)
	if err != nil {
		return nil, err
	}

	owned, err := s.repo.GetOwnedSlots(ctx, userID, cat.CollectionType)
	if err != nil {
		return nil, err
	}

	return &domain.CollectionView{
		UserID:         userID,
		Username:       username,
		CollectionType: cat.CollectionType,
		OwnedSlots:     owned,
		TotalSlots:     len(cat.Slots),
	}, nil
}

// ShowCollection reads the user's progress and pushes it to overlays
func (s *service) ShowCollection(ctx context.Context, req domain.RedemptionRequest) (*domain.CollectionView, error) {
	if err := validateUser(req.UserID, req.Username); err != nil {
		return nil, err
	}

	view, err := s.GetCollection(ctx, req.UserID, req.Username, req.CollectionType)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCollectionDisplayed,
		"user_id", view.UserID,
		"collection_type", view.CollectionType,
		"owned", len(view.OwnedSlots))

	s.publish(ctx, event.NewCollectionDisplayedEvent(domain.NewCollectionDisplayPayload(view), event.SourceFromContext(ctx)))

	return view, nil
}

// ResetCollection clears every owned slot of one collection for a user
func (s *service) ResetCollection(ctx context.Context, userID, collectionType string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	cat, err := s.catalog.Get(collectionType)
	if err != nil {
		return err
	}

	if err := s.repo.ResetCollection(ctx, userID, cat.CollectionType); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgCollectionReset, "user_id", userID, "collection_type", cat.CollectionType)
	s.publish(ctx, event.NewCollectionResetEvent(userID, cat.CollectionType, event.SourceFromContext(ctx)))

	return nil
}

// CompletedCollections lists completed collections in catalog order.
// Collection types that are no longer configured are skipped.
func (s *service) CompletedCollections(ctx context.Context) ([]domain.CompletedCollection, error) {
	completed, err := s.repo.ListCompletedCollections(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListCompletedFailed, "error", err)
		return nil, err
	}

	byType := make(map[string][]string, len(completed))
	for _, c := range completed {
		byType[c.CollectionType] = c.Usernames
	}

	out := make([]domain.CompletedCollection, 0, len(completed))
	for _, t := range s.catalog.Types() {
		if users := byType[t]; len(users) > 0 {
			out = append(out, domain.CompletedCollection{CollectionType: t, Usernames: users})
		}
	}
	return out, nil
}

// Catalogs returns the configured collections
func (s *service) Catalogs() []domain.CollectionCatalog {
	return s.catalog.All()
}

// publish is fire-and-forget: delivery problems never fail the caller
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func validateUser(userID, username string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}
	return nil
}

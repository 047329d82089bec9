package domain

// Overlay event types pushed to connected overlay clients
const (
	OverlayEventBlindBoxRedemption = "blindbox_redemption"
	OverlayEventCollectionDisplay  = "collection_display"
)

// OverlayEvent is the closed set of payloads delivered to overlays.
// Implemented by BlindBoxRedemptionPayload and CollectionDisplayPayload.
type OverlayEvent interface {
	OverlayEventType() string
}

// PlushiePayload is the drawn reward as shown on the overlay
type PlushiePayload struct {
	Key    SlotID `json:"key"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// BlindBoxRedemptionPayload is the payload for blindbox_redemption events
type BlindBoxRedemptionPayload struct {
	UserID         string         `json:"userId"`
	Username       string         `json:"username"`
	CollectionType string         `json:"collectionType"`
	SeriesName     string         `json:"seriesName"`
	Plushie        PlushiePayload `json:"plushie"`
	IsNew          bool           `json:"isNew"`
	CollectionSize int            `json:"collectionSize"`
	Collection     []SlotID       `json:"collection"`
}

// OverlayEventType implements OverlayEvent
func (BlindBoxRedemptionPayload) OverlayEventType() string { return OverlayEventBlindBoxRedemption }

// CollectionDisplayPayload is the payload for collection_display events
type CollectionDisplayPayload struct {
	UserID         string   `json:"userId"`
	Username       string   `json:"username"`
	CollectionType string   `json:"collectionType"`
	Collection     []SlotID `json:"collection"`
	CollectionSize int      `json:"collectionSize"`
}

// OverlayEventType implements OverlayEvent
func (CollectionDisplayPayload) OverlayEventType() string { return OverlayEventCollectionDisplay }

// NewRedemptionPayload builds the overlay payload for a redemption outcome
func NewRedemptionPayload(o *RedemptionOutcome) BlindBoxRedemptionPayload {
	collection := o.OwnedSlots
	if collection == nil {
		collection = []SlotID{}
	}
	return BlindBoxRedemptionPayload{
		UserID:         o.UserID,
		Username:       o.Username,
		CollectionType: o.CollectionType,
		SeriesName:     o.SeriesName,
		Plushie: PlushiePayload{
			Key:    o.Slot.Key,
			Name:   o.Slot.Name,
			Weight: o.Slot.Weight,
		},
		IsNew:          o.IsNew,
		CollectionSize: len(collection),
		Collection:     collection,
	}
}

// NewCollectionDisplayPayload builds the overlay payload for a collection view
func NewCollectionDisplayPayload(v *CollectionView) CollectionDisplayPayload {
	collection := v.OwnedSlots
	if collection == nil {
		collection = []SlotID{}
	}
	return CollectionDisplayPayload{
		UserID:         v.UserID,
		Username:       v.Username,
		CollectionType: v.CollectionType,
		Collection:     collection,
		CollectionSize: len(collection),
	}
}

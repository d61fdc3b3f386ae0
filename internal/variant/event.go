package variant

import "time"

const (
	EventVariantCreated          = "ProductVariantCreated"
	EventVariantUpdated          = "ProductVariantUpdated"
	EventVariantFacetValuesAdded = "ProductVariantFacetValuesAdded"
)

// ProductVariantEvent is published to the variant topic after a successful write.
type ProductVariantEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProductID  string    `json:"product_id"`
	VariantIDs []string  `json:"variant_ids"`
	ChannelID  string    `json:"channel_id"`
	Timestamp  time.Time `json:"timestamp"`
}

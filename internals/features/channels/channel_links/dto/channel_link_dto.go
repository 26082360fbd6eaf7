package dto

import helper "gospelmedia_backend/internals/helpers"

type CreateChannelLinkRequest struct {
	LinkKey      string             `json:"linkKey" validate:"required"`
	LinkValue    string             `json:"linkValue" validate:"required"`
	MediaChannel helper.FlexStrings `json:"mediaChannel"`
}

// UpdateChannelLinkRequest appends channel references by default; set
// replace_associations to swap the whole set.
type UpdateChannelLinkRequest struct {
	LinkKey             *string            `json:"linkKey"`
	LinkValue           *string            `json:"linkValue"`
	MediaChannel        helper.FlexStrings `json:"mediaChannel"`
	ReplaceAssociations bool               `json:"replace_associations"`
}

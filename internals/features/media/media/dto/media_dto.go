package dto

import (
	"time"

	helper "gospelmedia_backend/internals/helpers"
)

// CreateMediaRequest — every field optional; a missing mediaChannel falls
// back to the caller's first channel.
type CreateMediaRequest struct {
	Name          string             `json:"name"`
	PrettyName    string             `json:"prettyName"`
	SourceLink    string             `json:"sourceLink"`
	Note          string             `json:"note"`
	Description   string             `json:"description"`
	MediaType     string             `json:"mediaType"`
	MediaLength   string             `json:"mediaLength"`
	ThumbnailLink helper.FlexStrings `json:"thumbnailLink"`
	MediaCategory helper.FlexStrings `json:"mediaCategory"`
	MediaChannel  helper.FlexStrings `json:"mediaChannel"`
	MediaTag      helper.FlexStrings `json:"mediaTag"`
	Minister      helper.FlexStrings `json:"minister"`
	Contributing  helper.FlexStrings `json:"contributing"`
	Views         string             `json:"views"`
	Likes         string             `json:"likes"`
	Dislikes      string             `json:"dislikes"`
	Trending      string             `json:"trending"`
	TrendingAt    *time.Time         `json:"trendingAt"`
	ScheduleAt    *time.Time         `json:"scheduleAt"`
}

// UpdateMediaRequest appends reference fields by default; set
// replace_associations to swap a whole set at once. Engagement counters
// are create-time only, the ingest side owns them afterwards.
type UpdateMediaRequest struct {
	Name          *string            `json:"name"`
	PrettyName    *string            `json:"prettyName"`
	SourceLink    *string            `json:"sourceLink"`
	Note          *string            `json:"note"`
	Description   *string            `json:"description"`
	MediaType     *string            `json:"mediaType"`
	MediaLength   *string            `json:"mediaLength"`
	ThumbnailLink helper.FlexStrings `json:"thumbnailLink"`
	MediaCategory helper.FlexStrings `json:"mediaCategory"`
	MediaChannel  helper.FlexStrings `json:"mediaChannel"`
	MediaTag      helper.FlexStrings `json:"mediaTag"`
	Minister      helper.FlexStrings `json:"minister"`
	Contributing  helper.FlexStrings `json:"contributing"`
	ScheduleAt    *time.Time         `json:"scheduleAt"`

	ReplaceAssociations bool `json:"replace_associations"`
}

// SearchMediaRequest drives POST /search/result; paging rides the query
// string, not the body.
type SearchMediaRequest struct {
	FilterName string `json:"filterName"`
}

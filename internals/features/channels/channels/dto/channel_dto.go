package dto

/* =========================================================
   REQUEST DTO — CREATE (writable fields only)
========================================================= */

type CreateChannelRequest struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description"`
	BannerImageLink string `json:"bannerImageLink"`
	ImageLink       string `json:"imageLink"`
}

/* =========================================================
   PARTIAL UPDATE DTO — pointers, only supplied fields change
========================================================= */

type UpdateChannelRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	BannerImageLink *string `json:"bannerImageLink"`
	ImageLink       *string `json:"imageLink"`
}

// VerifyChannelRequest carries the yes/no instruction (case-insensitive).
type VerifyChannelRequest struct {
	Verify string `json:"verify" validate:"required"`
}

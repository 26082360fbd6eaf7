package dto

type CreateMediaTagRequest struct {
	Name       string `json:"name" validate:"required"`
	PrettyName string `json:"prettyName"`
	CoreType   string `json:"coreType" validate:"required,coretype"`
	Image      string `json:"image"`
}

type UpdateMediaTagRequest struct {
	Name       *string `json:"name"`
	PrettyName *string `json:"prettyName"`
	CoreType   *string `json:"coreType" validate:"omitempty,coretype"`
	Image      *string `json:"image"`
}

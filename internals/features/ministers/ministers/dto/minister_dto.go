package dto

type CreateMinisterRequest struct {
	Name       string `json:"name" validate:"required"`
	PrettyName string `json:"prettyName"`
	CoreType   string `json:"coreType" validate:"required,coretype"`
	Office     string `json:"office" validate:"omitempty,office"`
	Ministry   string `json:"ministry"`
	Image      string `json:"image"`
}

type UpdateMinisterRequest struct {
	Name       *string `json:"name"`
	PrettyName *string `json:"prettyName"`
	CoreType   *string `json:"coreType" validate:"omitempty,coretype"`
	Office     *string `json:"office" validate:"omitempty,office"`
	Ministry   *string `json:"ministry"`
	Image      *string `json:"image"`
}

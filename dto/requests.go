package dto

// CalculateMetricsRequest triggers a metrics snapshot for a link.
// Exactly one of creator_id/generator_id should be set, matching
// source_type.
type CalculateMetricsRequest struct {
	CreatorID   string `json:"creator_id"`
	GeneratorID string `json:"generator_id"`
	SourceType  string `json:"source_type" binding:"required" example:"expert"`
	Period      string `json:"period" example:"30d"`
}

// RegisterLinkRequest registers a distribution link for a template.
type RegisterLinkRequest struct {
	LinkID     string `json:"link_id" binding:"required" example:"lnk_8f2"`
	TemplateID string `json:"template_id" binding:"required" example:"tpl_491"`
	Campaign   string `json:"utm_campaign" example:"summer-launch"`
}

// RegisterLinkResponseDTO reports whether the link row was created or
// an existing registration was updated.
type RegisterLinkResponseDTO struct {
	LinkID  string `json:"link_id"`
	Created bool   `json:"created"`
}

// TagSourceRequest tags a template as expert-created or automated.
type TagSourceRequest struct {
	IsExpert  bool   `json:"is_expert"`
	CreatorID string `json:"creator_id"`
	Notes     string `json:"notes"`
}

// TagSourceResponseDTO is the boolean-success result of tagging.
type TagSourceResponseDTO struct {
	Success bool `json:"success"`
}

// ErrorResponseDTO is the common error response shape.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not found"`
}

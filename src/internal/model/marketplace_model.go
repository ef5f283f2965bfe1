package model

type ListResourcesRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=all notes template toolkit guide code"`
	Sort     string `query:"sort" validate:"omitempty,oneof=popular rating newest price-low price-high"`
}

type DownloadResourceRequest struct {
	UserID string `validate:"required,max=100"`
	ID     string `validate:"required,max=100"`
}

type AffiliateTool struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	LogoURL       string `json:"logoURL"`
	Category      string `json:"category"`
	AffiliateLink string `json:"affiliateLink"`
	Bonus         int64  `json:"bonus"`
}

type ListToolsRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=all design writing coding productivity"`
}

type ToolClickRequest struct {
	UserID string `validate:"required,max=100"`
	ID     string `validate:"required,max=100"`
}

type ToolClickResponse struct {
	RedirectURL string `json:"redirectUrl"`
	Bonus       int64  `json:"bonus"`
}

type DownloadResourceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Downloads   int64  `json:"downloads"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

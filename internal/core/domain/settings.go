package domain

import "time"

// Default collaborator endpoints.
const (
	DefaultCheckoutEndpoint = "https://tulipalk.me/editor-collab/webhook/v1/redirect_key"
	DefaultModsEndpoint     = "https://api.geode-sdk.org/v1/mods"
	DefaultCacheTTL         = time.Hour
	DefaultHTTPTimeout      = 15 * time.Second
)

// CheckoutSettings configures the key-issuance webhook.
type CheckoutSettings struct {
	Endpoint string
}

// ModsSettings configures the mod-distribution API.
type ModsSettings struct {
	Endpoint string
	CacheTTL time.Duration
	Tracked  []TrackedMod
}

// HTTPSettings configures outbound calls.
type HTTPSettings struct {
	Timeout time.Duration
}

// UISettings holds presentation preferences.
type UISettings struct {
	Theme Theme
}

// AppSettings is the full application configuration.
type AppSettings struct {
	Checkout CheckoutSettings
	Mods     ModsSettings
	HTTP     HTTPSettings
	UI       UISettings
}

// DefaultAppSettings returns settings with every default applied.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Checkout: CheckoutSettings{Endpoint: DefaultCheckoutEndpoint},
		Mods: ModsSettings{
			Endpoint: DefaultModsEndpoint,
			CacheTTL: DefaultCacheTTL,
			Tracked:  DefaultTrackedMods(),
		},
		HTTP: HTTPSettings{Timeout: DefaultHTTPTimeout},
		UI:   UISettings{Theme: ThemeDark},
	}
}

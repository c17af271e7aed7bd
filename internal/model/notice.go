package model

// Scope types shared by incident banners and popup modals.
const (
	ScopeGlobal  = "global"
	ScopeProduct = "product"
	ScopeTopic   = "topic"
	ScopePage    = "page"
)

// Banner states, ordered by severity in content.BannerStatePriority.
const (
	BannerStateInfo     = "info"
	BannerStateCaution  = "caution"
	BannerStateResolved = "resolved"
	BannerStateError    = "error"
)

// Trigger types for popup modals.
const (
	TriggerImmediate = "immediate"
	TriggerDelay     = "delay"
	TriggerScroll    = "scroll"
)

// Scope is the applicability rule attached to a banner or popup. Type is the
// discriminant; only the fields matching the type are consulted.
type Scope struct {
	Type         string   `json:"type" validate:"required,oneof=global product topic page"`
	ProductIDs   []string `json:"productIds,omitempty"`
	TopicIDs     []string `json:"topicIds,omitempty"`
	PagePatterns []string `json:"pagePatterns,omitempty"`
}

// IncidentBanner is a site-wide or scoped status banner. Inactive banners are
// never shown regardless of scope match.
type IncidentBanner struct {
	ID        string   `json:"id" validate:"required"`
	State     string   `json:"state" validate:"required,oneof=info caution resolved error"`
	Title     string   `json:"title" validate:"required"`
	Message   string   `json:"message"`
	Link      string   `json:"link,omitempty"`
	Scope     Scope    `json:"scope"`
	Active    bool     `json:"active"`
	Countries []string `json:"countries,omitempty"`
}

func (b IncidentBanner) CountryVisibility() []string { return b.Countries }

// Trigger gates when an eligible popup actually displays.
type Trigger struct {
	Type             string `json:"type" validate:"required,oneof=immediate delay scroll"`
	Delay            int    `json:"delay,omitempty"`
	ScrollPercentage int    `json:"scrollPercentage,omitempty"`
}

// PopupButton is one action on a popup modal.
type PopupButton struct {
	Label  string `json:"label"`
	Link   string `json:"link,omitempty"`
	Action string `json:"action,omitempty"`
}

// PopupModal is a promotional or informational modal. Priority is an explicit
// numeric rank; higher wins. Dismissal is permanent per client.
type PopupModal struct {
	ID        string        `json:"id" validate:"required"`
	Title     string        `json:"title" validate:"required"`
	Message   string        `json:"message"`
	Scope     Scope         `json:"scope"`
	Trigger   Trigger       `json:"trigger"`
	Priority  int           `json:"priority"`
	Buttons   []PopupButton `json:"buttons,omitempty"`
	Active    bool          `json:"active"`
	Countries []string      `json:"countries,omitempty"`
}

func (p PopupModal) CountryVisibility() []string { return p.Countries }

package content

import (
	"sort"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
)

// bannerStatePriority ranks banner states; only the single highest-ranked
// applicable banner is ever shown.
var bannerStatePriority = map[string]int{
	model.BannerStateError:    4,
	model.BannerStateCaution:  3,
	model.BannerStateInfo:     2,
	model.BannerStateResolved: 1,
}

// immediateDisplayDelayMS smooths popups with an immediate trigger so they do
// not flash in during page load.
const immediateDisplayDelayMS = 500

// ActiveBanner selects the banner to display for the given context: the
// highest-priority active banner whose scope matches, independent of input
// order. Ties break by id ascending.
func ActiveBanner(banners []model.IncidentBanner, ctx PageContext) (model.IncidentBanner, bool) {
	matched := make([]model.IncidentBanner, 0, len(banners))
	for _, b := range banners {
		if b.Active && MatchesScope(b.Scope, ctx) {
			matched = append(matched, b)
		}
	}
	if len(matched) == 0 {
		return model.IncidentBanner{}, false
	}
	sort.Slice(matched, func(i, j int) bool {
		pi, pj := bannerStatePriority[matched[i].State], bannerStatePriority[matched[j].State]
		if pi != pj {
			return pi > pj
		}
		return matched[i].ID < matched[j].ID
	})
	return matched[0], true
}

// DisplayDirective tells the client when to actually show an eligible popup.
type DisplayDirective struct {
	Mode             string `json:"mode"`
	DelayMS          int    `json:"delayMs,omitempty"`
	ScrollPercentage int    `json:"scrollPercentage,omitempty"`
}

// EligiblePopup selects the popup to offer for the given context: active,
// scope-matched, not in the dismissed set, highest numeric priority with ties
// broken by id ascending. The returned directive carries the trigger gating.
func EligiblePopup(popups []model.PopupModal, ctx PageContext, dismissed map[string]bool) (model.PopupModal, DisplayDirective, bool) {
	matched := make([]model.PopupModal, 0, len(popups))
	for _, p := range popups {
		if p.Active && !dismissed[p.ID] && MatchesScope(p.Scope, ctx) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return model.PopupModal{}, DisplayDirective{}, false
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority > matched[j].Priority
		}
		return matched[i].ID < matched[j].ID
	})
	top := matched[0]
	return top, displayDirective(top.Trigger), true
}

func displayDirective(t model.Trigger) DisplayDirective {
	switch t.Type {
	case model.TriggerDelay:
		return DisplayDirective{Mode: model.TriggerDelay, DelayMS: t.Delay}
	case model.TriggerScroll:
		return DisplayDirective{Mode: model.TriggerScroll, ScrollPercentage: t.ScrollPercentage}
	default:
		return DisplayDirective{Mode: model.TriggerImmediate, DelayMS: immediateDisplayDelayMS}
	}
}

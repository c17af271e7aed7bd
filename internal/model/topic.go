package model

// Topic is a support-hub node. Topics form a two-level tree keyed by
// ParentTopicID; deeper nesting is not supported. Top-level topics always
// show on the product landing page, subtopics only when ShowOnProductLanding
// is set.
type Topic struct {
	ID                   string   `json:"id" validate:"required"`
	Title                string   `json:"title" validate:"required"`
	Description          string   `json:"description"`
	Icon                 string   `json:"icon"`
	ProductID            string   `json:"productId" validate:"required"`
	ParentTopicID        string   `json:"parentTopicId,omitempty"`
	ShowOnProductLanding bool     `json:"showOnProductLanding,omitempty"`
	Countries            []string `json:"countries,omitempty"`
}

func (t Topic) CountryVisibility() []string { return t.Countries }

// IsTopLevel reports whether the topic sits at the root of the tree.
func (t Topic) IsTopLevel() bool { return t.ParentTopicID == "" }

package contenttype

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/goliatone/go-portfolio/internal/portfolio"
)

// ItemSettings carries the per-item link configuration edited on the admin
// side. LinkType selects where the gallery entry points; LinkValue holds the
// destination for the external mode.
type ItemSettings struct {
	LinkType  string `json:"link_type"`
	LinkValue string `json:"link_value"`
}

// Validate checks the settings before they are persisted. The link type is
// optional (empty defers to the gallery config) but must be one of the known
// modes when set, and external links require a well-formed absolute URL.
func (s ItemSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.LinkType,
			validation.In("", string(portfolio.LinkModeImage), string(portfolio.LinkModePage), string(portfolio.LinkModeExternal)).
				Error("link type must be image, page, or external"),
		),
		validation.Field(&s.LinkValue,
			validation.Required.When(s.LinkType == string(portfolio.LinkModeExternal)).
				Error("external links require a destination URL"),
			is.URL,
		),
	)
}

// ApplyTo copies validated settings onto an item. Callers validate first;
// ApplyTo does not re-check.
func (s ItemSettings) ApplyTo(item *portfolio.Item) {
	item.LinkMode = portfolio.ParseLinkMode(s.LinkType)
	if s.LinkType == string(portfolio.LinkModeExternal) {
		item.ExternalURL = s.LinkValue
	} else {
		item.ExternalURL = ""
	}
}

// SettingsFrom derives the editable settings view of an item.
func SettingsFrom(item *portfolio.Item) ItemSettings {
	return ItemSettings{
		LinkType:  string(item.LinkMode),
		LinkValue: item.ExternalURL,
	}
}

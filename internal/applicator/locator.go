package applicator

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Locator abstracts how a form field is found on the page. Target sites
// differ in markup, so the matching strategy is swappable per site without
// touching the control flow.
type Locator interface {
	//Locate resolves a logical field name ("email", "resume", ...) to a
	//page locator. An error means the strategy cannot even address the
	//field; whether it exists is checked at interaction time.
	Locate(page playwright.Page, field string) (playwright.Locator, error)

	//Name is the strategy name for logging
	Name() string
}

// NameLocator matches inputs by their exact name attribute.
type NameLocator struct{}

func (NameLocator) Name() string { return "name" }

func (NameLocator) Locate(page playwright.Page, field string) (playwright.Locator, error) {
	return page.Locator(fmt.Sprintf("[name=%q]", field)), nil
}

// PlaceholderLocator matches inputs whose placeholder contains the field
// name, case-insensitively.
type PlaceholderLocator struct{}

func (PlaceholderLocator) Name() string { return "placeholder" }

func (PlaceholderLocator) Locate(page playwright.Page, field string) (playwright.Locator, error) {
	return page.Locator(fmt.Sprintf("[placeholder*=%q i]", field)), nil
}

// CSSLocator maps logical field names to fixed CSS paths from config.
type CSSLocator struct {
	Selectors map[string]string
}

func (CSSLocator) Name() string { return "css" }

func (l CSSLocator) Locate(page playwright.Page, field string) (playwright.Locator, error) {
	sel, ok := l.Selectors[field]
	if !ok {
		return nil, fmt.Errorf("no selector configured for field %q", field)
	}
	return page.Locator(sel), nil
}

// NewLocator picks the strategy by name. Unknown strategies fall back to
// name-attribute matching.
func NewLocator(strategy string, selectors map[string]string) Locator {
	switch strategy {
	case "placeholder":
		return PlaceholderLocator{}
	case "css":
		return CSSLocator{Selectors: selectors}
	default:
		return NameLocator{}
	}
}

package banner

import "errors"

var (
	// ErrMissingAccessibleTitle is reported by the post-render checks when no
	// element carries the banner's title id.
	ErrMissingAccessibleTitle = errors.New("expected a title to be provided to the banner through the Title prop or a Title sub-component, but no title was found")

	// ErrContextMisuse is reported when a banner sub-component is created or
	// rendered without the scope of the banner it belongs to.
	ErrContextMisuse = errors.New("banner sub-component must be used within the banner that created it")
)

// Package banner renders the Banner notification component and its
// sub-components.
//
// A Banner is mounted with New, which generates the identifier that ties the
// container's aria-labelledby to its title element. Sub-components that need
// that identifier (Title, Description, Actions, PrimaryAction,
// SecondaryAction) are created from the banner's Scope, so they can only be
// built against a mounted banner:
//
//	bn := banner.New(banner.Props{Variant: banner.Warning})
//	bn.Append(
//		bn.Title(banner.H3, banner.Text("Billing issue")),
//		bn.Description(banner.Text("Your card expires soon.")),
//	)
//	bn.WithActions(bn.PrimaryAction(button.Button{Content: banner.Text("Update card")}), nil)
//
// A banner refuses sub-components bound to another banner's Scope when they
// are passed to Append or WithActions. Only those direct children are
// checked: a bound sub-component rendered elsewhere, or wrapped inside
// another component, renders without error.
//
// Rendering is plain element rendering. The title-presence check runs only
// when asked for, through Renderer{Checks: true} or Verify.
package banner

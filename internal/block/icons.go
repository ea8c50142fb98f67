// internal/block/icons.go
//
// Closed icon table for features blocks.
//
// Feature entries reference icons by symbolic name ("Rocket").  The set is
// closed, and resolution must never fail: documents saved by older builds
// may carry names this build no longer ships, so any unresolved name falls
// back to the checkmark.  Lookup is a plain map, no dynamic resolution.
package block

import "html/template"

const iconCheck = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M20 6 9 17l-5-5"/></svg>`

var icons = map[string]template.HTML{
	"Rocket":      `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"/><path d="m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"/><path d="M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"/><path d="M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"/></svg>`,
	"ShieldCheck": `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/><path d="m9 12 2 2 4-4"/></svg>`,
	"Smartphone":  `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><rect width="14" height="20" x="5" y="2" rx="2" ry="2"/><path d="M12 18h.01"/></svg>`,
	"Check":       template.HTML(iconCheck),
}

// Icon resolves a symbolic icon name.  Unknown names, including arbitrary
// strings from stored documents, resolve to the checkmark.
func Icon(name string) template.HTML {
	if svg, ok := icons[name]; ok {
		return svg
	}
	return template.HTML(iconCheck)
}

// IconNames lists the resolvable names, for the features edit form.
func IconNames() []string {
	return []string{"Rocket", "ShieldCheck", "Smartphone", "Check"}
}

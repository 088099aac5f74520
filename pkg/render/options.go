package render

// RenderOptions describe per-request data renderers use to customise output
// without touching the item.
type RenderOptions struct {
	// IDPrefix namespaces generated element ids so several items can share a
	// page. Renderers fall back to the item name.
	IDPrefix string
	// Icons overrides the inline SVG markup keyed by icon name ("add",
	// "remove"). HTML renderers sanitize the markup before use.
	Icons map[string]string
	// Errors surfaces server-side validation feedback keyed by path; see
	// MapErrorPayload for how keys are attributed.
	Errors map[string][]string
	// Locale and Translator localize the component's built-in strings. A nil
	// Translator keeps the defaults.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

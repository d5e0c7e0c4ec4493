// Package linkpreview resolves best-effort title, description and image
// metadata for invite links.
package linkpreview

// Default preview values used whenever metadata cannot be fetched
const (
	DefaultTitle       = "WhatsApp Group"
	DefaultDescription = "Click to join this WhatsApp group"
	DefaultImage       = "https://upload.wikimedia.org/wikipedia/commons/thumb/6/6b/WhatsApp.svg/512px-WhatsApp.svg.png"
)

// Preview is the metadata shown for a link
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Default returns the fixed fallback preview
func Default() Preview {
	return Preview{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Image:       DefaultImage,
	}
}

// Source records where a preview came from
type Source int

const (
	// SourceFallback means the fetch failed or yielded nothing and the
	// defaults were used
	SourceFallback Source = iota
	// SourceFetched means at least one field came from the page
	SourceFetched
	// SourceCache means the preview was served from the cache
	SourceCache
)

func (s Source) String() string {
	switch s {
	case SourceFetched:
		return "fetched"
	case SourceCache:
		return "cache"
	default:
		return "fallback"
	}
}

// Result is what a resolve always produces. Preview is fully populated in
// every case.
type Result struct {
	Preview Preview
	Source  Source
}

func fallback() Result {
	return Result{Preview: Default(), Source: SourceFallback}
}

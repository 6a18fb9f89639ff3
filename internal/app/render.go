// render.go turns the informational markdown into ANSI output for the
// content pane.
//
// Glamour TermRenderer instances are moderately expensive to build, so they
// are cached per (style, width bucket) in a small LRU. Widths are bucketed by
// roundWidthToNearestBucket so that dragging a terminal edge reuses the same
// renderer instead of creating one per column.
package app

import (
	"container/list"
	"sync"

	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	style string
	width int
}

var (
	// maxRendererCacheEntries bounds the number of Glamour renderers
	// retained in memory.
	maxRendererCacheEntries = 8

	rendererCacheMu    sync.Mutex
	rendererCache      = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
)

// renderMarkdown renders content with the given standard glamour style,
// wrapped at width. On failure the raw markdown is returned so the pane
// still shows something readable.
func renderMarkdown(content, style string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(style, width)
	if err != nil {
		appLog.Error("create markdown renderer", "style", style, "width", width, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "style", style, "width", width, "error", err)
		return content
	}
	return out
}

func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: normalizeGlamourStyle(style), width: width}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[key]; ok {
		if node, ok := rendererCacheNodes[key]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(key.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[key] = renderer
	rendererCacheNodes[key] = rendererCacheOrder.PushBack(key)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		key, _ := oldest.Value.(rendererKey)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, key)
		delete(rendererCacheNodes, key)
	}
}

// normalizeGlamourStyle restricts styles to the standard ones that never
// query the terminal. Auto-detection sends an OSC background query whose
// reply would arrive as key input.
func normalizeGlamourStyle(style string) string {
	switch style {
	case "dark", "light", "notty":
		return style
	default:
		return "dark"
	}
}

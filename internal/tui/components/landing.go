package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// LandingMarkdown is the public landing page body
const LandingMarkdown = `# Connect with Top Freelancers

Khedmalink bridges the gap between talented freelancers and innovative
recruiters. Find your perfect match and build extraordinary projects together.

## Why Choose Khedmalink?

- **Expert Talent Pool**: a curated network of skilled freelancers across industries.
- **Project Management**: project creation, application tracking and collaboration.
- **Quality Assurance**: every project is reviewed by validators.

*Connecting talent with opportunity, one project at a time.*
`

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders md wrapped at width, falling back to the raw text
func RenderMarkdown(md string, width int) string {
	renderer, err := getRenderer(max(width, 20))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

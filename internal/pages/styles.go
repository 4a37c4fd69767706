package pages

import "github.com/lyleresnick/folio/internal/render"

var (
	titleStyle   = render.Style{FontWeight: "300", Margin: "1.5rem 0 1rem", Classes: []string{"title"}}
	mediumWeight = render.Style{FontWeight: "500"}
	noMargin     = render.Style{Margin: "0"}
	cardSpacing  = render.Style{Margin: "20px 0 0"}
)

func title(text string) render.Node {
	return render.Heading{Level: 2, Children: []render.Node{render.T(text)}, Style: titleStyle}
}

func brandLink(href, text, color string) render.Link {
	return render.Link{Href: href, Children: []render.Node{render.T(text)}, Style: render.Style{Color: color}}
}

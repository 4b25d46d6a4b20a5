package smartgrid

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

const cssMediaType = "text/css"

// Minify strips comments and whitespace from a stylesheet.
func Minify(stylesheet string) (string, error) {
	m := minify.New()
	m.AddFunc(cssMediaType, css.Minify)
	return m.String(cssMediaType, stylesheet)
}

package editor

import (
	"fmt"
	"html"
	"strings"
)

// Generate compiles a document into a single standalone HTML email. It is
// pure and deterministic: the same document always yields byte-identical
// output, so the result can be diffed, cached and round-trip tested.
//
// Text content is emitted verbatim; it is sanitized at the HTTP boundary
// before it ever reaches a block. Attribute values (URLs, alt text) are
// escaped here.
func Generate(doc *Document) (string, error) {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	sb.WriteString("</head>\n")
	fmt.Fprintf(&sb, "<body style=\"margin:0;padding:0;background-color:%s;\">\n", doc.Settings.BackgroundColor)
	fmt.Fprintf(&sb, "<div style=\"max-width:%dpx;margin:0 auto;background-color:#ffffff;font-family:%s;\">\n",
		doc.Settings.ContentWidth, doc.Settings.FontFamily)

	for _, b := range doc.Blocks {
		h, ok := handlers[b.Type]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedBlockType, b.Type)
		}
		styles, err := ResolveStyle(b)
		if err != nil {
			return "", err
		}
		h.render(&sb, b, styles)
		sb.WriteByte('\n')
	}

	sb.WriteString("</div>\n</body>\n</html>\n")
	return sb.String(), nil
}

// cssDecl maps one style key to one inline CSS declaration. Serializers list
// their declarations in a fixed order so output stays deterministic; style
// keys a block type has no declaration for are simply not emitted.
type cssDecl struct {
	key  string
	prop string
}

func inlineCSS(styles StyleMap, decls []cssDecl, extra string) string {
	var sb strings.Builder
	for _, d := range decls {
		if v, ok := styles[d.key]; ok && v != "" {
			sb.WriteString(d.prop)
			sb.WriteByte(':')
			sb.WriteString(v)
			sb.WriteByte(';')
		}
	}
	sb.WriteString(extra)
	return sb.String()
}

func attr(v string) string { return html.EscapeString(v) }

func renderText(sb *strings.Builder, b *Block, styles StyleMap) {
	css := inlineCSS(styles, []cssDecl{
		{"backgroundColor", "background-color"},
		{"padding", "padding"},
		{"fontSize", "font-size"},
		{"color", "color"},
		{"textAlign", "text-align"},
		{"lineHeight", "line-height"},
	}, "")
	// Content is already markup-safe; emit verbatim.
	fmt.Fprintf(sb, "<div style=\"%s\">%s</div>", css, b.Content["text"])
}

func renderImage(sb *strings.Builder, b *Block, styles StyleMap) {
	outerCSS := inlineCSS(styles, []cssDecl{
		{"backgroundColor", "background-color"},
		{"padding", "padding"},
		{"textAlign", "text-align"},
	}, "")
	imgCSS := inlineCSS(styles, []cssDecl{
		{"width", "width"},
		{"borderRadius", "border-radius"},
	}, "display:inline-block;max-width:100%;")

	img := fmt.Sprintf("<img src=\"%s\" alt=\"%s\" style=\"%s\">",
		attr(b.Content["src"]), attr(b.Content["alt"]), imgCSS)
	if url := b.Content["url"]; url != "" {
		img = fmt.Sprintf("<a href=\"%s\">%s</a>", attr(url), img)
	}
	fmt.Fprintf(sb, "<div style=\"%s\">%s</div>", outerCSS, img)
}

func renderButton(sb *strings.Builder, b *Block, styles StyleMap) {
	outerCSS := inlineCSS(styles, []cssDecl{
		{"textAlign", "text-align"},
	}, "padding:12px 24px;")
	linkCSS := inlineCSS(styles, []cssDecl{
		{"backgroundColor", "background-color"},
		{"color", "color"},
		{"borderRadius", "border-radius"},
		{"padding", "padding"},
		{"fontSize", "font-size"},
	}, "display:inline-block;text-decoration:none;")

	fmt.Fprintf(sb, "<div style=\"%s\"><a href=\"%s\" style=\"%s\">%s</a></div>",
		outerCSS, attr(b.Content["url"]), linkCSS, attr(b.Content["label"]))
}

func renderDivider(sb *strings.Builder, b *Block, styles StyleMap) {
	outerCSS := inlineCSS(styles, []cssDecl{
		{"backgroundColor", "background-color"},
		{"padding", "padding"},
	}, "")

	thickness := styles["thickness"]
	color := styles["color"]
	fmt.Fprintf(sb, "<div style=\"%s\"><hr style=\"border:none;border-top:%s solid %s;margin:0;\"></div>",
		outerCSS, thickness, color)
}

func renderSpacer(sb *strings.Builder, b *Block, styles StyleMap) {
	height := styles["height"]
	fmt.Fprintf(sb, "<div style=\"height:%s;line-height:%s;font-size:0;\">&nbsp;</div>", height, height)
}

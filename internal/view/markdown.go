package view

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"VibeFinance/internal/domain/models"

	"github.com/yuin/goldmark"
)

// md renders without raw HTML passthrough, so provider text cannot inject markup.
var md = goldmark.New()

func markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + html.EscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

// mdEscape backslash-escapes characters that would change the meaning of
// inline markdown.
var mdEscape = strings.NewReplacer(
	`\`, `\\`, "[", `\[`, "]", `\]`, "*", `\*`, "_", `\_`, "`", "\\`", "<", `\<`,
)

// mdURL keeps a link destination inside its parentheses.
var mdURL = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29", "<", "%3C", ">", "%3E")

func newsMarkdown(item models.NewsItem) string {
	return "#### [" + mdEscape.Replace(item.Title) + "](" + mdURL.Replace(item.Link) + ")\n\n" +
		"*Source: " + mdEscape.Replace(item.Publisher) + "*\n"
}

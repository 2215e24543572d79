package tui

import (
	"strings"

	"github.com/MKhiriev/go-block-calendar/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, body, hotKeys, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(footer))

	return appStyle.Render(b.String())
}

func buildFooter(info models.AppBuildInfo) string {
	return "blockcal " + info.BuildVersion() + " (" + info.BuildCommit() + ")"
}

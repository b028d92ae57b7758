package service

import (
	"bytes"
	"embed"
	"fmt"
	"guestlist/internal/domains/invitation/model/dto"
	htmlTemplate "html/template"
	textTemplate "text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	htmlInvitation  = htmlTemplate.Must(htmlTemplate.ParseFS(templateFS, "templates/invitation.html.tmpl"))
	plainInvitation = textTemplate.Must(textTemplate.ParseFS(templateFS, "templates/invitation.txt.tmpl"))
)

// compose renders both bodies of the invitation email. User input is escaped in the HTML body.
func compose(data dto.EmailData) (string, string, error) {
	var html, plain bytes.Buffer

	if err := htmlInvitation.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to render html body: %w", err)
	}

	if err := plainInvitation.Execute(&plain, data); err != nil {
		return "", "", fmt.Errorf("failed to render plain body: %w", err)
	}

	return html.String(), plain.String(), nil
}

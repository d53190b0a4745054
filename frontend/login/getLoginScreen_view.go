package login

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	sharedhtml "savor/frontend/shared/html"
)

// GetLoginScreen renders the standalone login page. It carries no app
// shell: the sidebar and its assets only exist behind authentication.
func GetLoginScreen(errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>Sign In - Savor</title><link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"></head><body class="bg-light"><div class="container" style="max-width: 26rem; margin-top: 10vh;"><h1 class="h3 mb-4 text-center">Savor</h1>`)
		if errorMessage != "" {
			b.WriteString(`<div class="alert alert-danger" role="alert">`)
			b.WriteString(html.EscapeString(errorMessage))
			b.WriteString(`</div>`)
		}
		b.WriteString(`<form method="post" action="/login" class="card card-body gap-3"><div><label class="form-label" for="username">Username</label><input id="username" name="username" class="form-control" autocomplete="username" required></div><div><label class="form-label" for="password">Password</label><input id="password" name="password" type="password" class="form-control" autocomplete="current-password" required></div><button class="btn btn-primary" type="submit">Sign In</button></form></div>`)
		b.WriteString(sharedhtml.CSRFFormScript())
		b.WriteString(`</body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

package login

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"tecnoreparos/frontend/shared/html"
)

// GetLoginScreen builds the login page, with the auth failure message
// rendered inline when present.
func GetLoginScreen(theme, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		errorHTML := ""
		if errorMessage != "" {
			errorHTML = fmt.Sprintf(`<p class="error" role="alert">%s</p>`, html.EscapeString(errorMessage))
		}
		body := fmt.Sprintf(`<main class="login">
  <h1>TecnoReparos</h1>
  <p>Acesse o painel de Ordens de Serviço</p>
  <form method="POST" action="/login">
    <input name="username" placeholder="Usuário" autocomplete="username" required>
    <input name="password" type="password" placeholder="Senha" autocomplete="current-password" required>
    %s
    <button type="submit">Entrar</button>
  </form>
</main>`, errorHTML)

		_, err := io.WriteString(w, html.RenderLayout("Entrar - TecnoReparos", theme, body))
		return err
	})
}

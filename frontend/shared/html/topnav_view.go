package html

import "fmt"

// RenderTopNav emits the authenticated header: section links, theme toggle,
// signed-in user and logout.
func RenderTopNav(username string) string {
	return fmt.Sprintf(`<header class="topnav">
  <span class="brand">TecnoReparos</span>
  <nav>
    <a href="/tasker/orders">Ordens de Serviço</a>
    <a href="/tasker/stock">Estoque</a>
  </nav>
  <div class="session">
    <form method="POST" action="/tasker/settings/theme"><button type="submit" title="Alternar tema">☾</button></form>
    <span>%s</span>
    <form method="POST" action="/logout"><button type="submit">Sair</button></form>
  </div>
</header>`, EscapeString(username))
}

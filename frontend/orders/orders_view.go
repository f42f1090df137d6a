package orders

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"tecnoreparos/frontend/shared/html"
	"tecnoreparos/models"
)

var statusLabels = map[models.Status]string{
	models.StatusPending:    "Pendente",
	models.StatusInProgress: "Em andamento",
	models.StatusCompleted:  "Concluída",
	models.StatusCancelled:  "Cancelada",
}

// OrdersPage renders the service order list with its search, filter and sort
// controls and the creation form.
func OrdersPage(data OrdersPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<main class="orders">`)
		if data.Flash != "" {
			// JS-escaped, not %q: the message rides in on a query parameter
			// and a literal </script> would terminate the script element.
			fmt.Fprintf(&b, `<div class="alert" role="alert">%s</div><script>window.alert("%s");</script>`,
				html.EscapeString(data.Flash), template.JSEscapeString(data.Flash))
		}
		b.WriteString(`<h1>Ordens de Serviço</h1>`)
		writeToolbar(&b, data.Query)
		writeCreateForm(&b)
		fmt.Fprintf(&b, `<section class="order-list" data-count="%d">`, len(data.Orders))
		for _, order := range data.Orders {
			writeOrderCard(&b, order)
		}
		b.WriteString(`</section></main>`)

		_, err := io.WriteString(w, html.RenderAppLayout("Ordens de Serviço - TecnoReparos", data.Theme, data.Username, b.String()))
		return err
	})
}

func writeToolbar(b *strings.Builder, q Query) {
	b.WriteString(`<form method="GET" action="/tasker/orders" class="toolbar">`)
	fmt.Fprintf(b, `<input type="search" name="q" value="%s" placeholder="Buscar por cliente, aparelho ou ID">`,
		html.EscapeString(q.Search))
	b.WriteString(`<select name="status">`)
	writeOption(b, "all", "Todos os status", q.Status == "all")
	for _, status := range []models.Status{models.StatusPending, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled} {
		writeOption(b, string(status), statusLabels[status], q.Status == string(status))
	}
	b.WriteString(`</select><select name="sort">`)
	writeOption(b, "newest", "Mais recentes", q.Sort != "oldest")
	writeOption(b, "oldest", "Mais antigas", q.Sort == "oldest")
	b.WriteString(`</select><button type="submit">Filtrar</button>`)
	b.WriteString(`<a class="btn" href="/tasker/exports/orders.csv">Exportar CSV</a></form>`)
}

func writeOption(b *strings.Builder, value, label string, selected bool) {
	sel := ""
	if selected {
		sel = " selected"
	}
	fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, html.EscapeString(value), sel, html.EscapeString(label))
}

func writeCreateForm(b *strings.Builder) {
	b.WriteString(`<details class="order-create"><summary>Nova Ordem de Serviço</summary>
<form method="POST" action="/tasker/orders">
  <input name="clientName" placeholder="Cliente" required>
  <input name="device" placeholder="Aparelho" required>
  <textarea name="issueDescription" placeholder="Descrição do defeito" required></textarea>
  <select name="status">`)
	for _, status := range []models.Status{models.StatusPending, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled} {
		writeOption(b, string(status), statusLabels[status], status == models.StatusPending)
	}
	b.WriteString(`</select>
  <button type="submit">Salvar</button>
</form></details>`)
}

func writeOrderCard(b *strings.Builder, order models.ServiceOrder) {
	fmt.Fprintf(b, `<article class="order-card" data-id="%s" data-status="%s">`,
		html.EscapeString(order.ID), html.EscapeString(string(order.Status)))
	fmt.Fprintf(b, `<h2>%s</h2><p class="device">%s</p><p class="issue">%s</p>`,
		html.EscapeString(order.ClientName), html.EscapeString(order.Device), html.EscapeString(order.IssueDescription))
	fmt.Fprintf(b, `<p class="meta"><span class="status">%s</span> · Criada em %s · Atualizada em %s</p>`,
		statusLabels[order.Status], formatISO(order.CreatedAt), formatISO(order.UpdatedAt))

	if len(order.Images) > 0 {
		b.WriteString(`<div class="images">`)
		for i, img := range order.Images {
			fmt.Fprintf(b, `<figure><img src="%s" alt="Foto %d">
<form method="POST" action="/tasker/orders/%s/images/%d/delete" onsubmit="return confirm('Remover esta imagem?');"><button type="submit">×</button></form></figure>`,
				img, i+1, html.EscapeString(order.ID), i)
		}
		b.WriteString(`</div>`)
	}

	fmt.Fprintf(b, `<form method="POST" action="/tasker/orders/%s/images" enctype="multipart/form-data" class="attach">
  <input type="file" name="images" accept="image/*" multiple>
  <button type="submit">Anexar fotos</button>
</form>`, html.EscapeString(order.ID))

	writeEditForm(b, order)

	fmt.Fprintf(b, `<div class="actions">
  <a class="btn" href="/tasker/orders/%s/ticket.pdf">Imprimir etiqueta</a>
  <form method="POST" action="/tasker/orders/%s/delete" onsubmit="return confirm('Tem certeza que deseja excluir esta ordem de serviço?');"><button type="submit">Excluir</button></form>
</div></article>`, html.EscapeString(order.ID), html.EscapeString(order.ID))
}

func writeEditForm(b *strings.Builder, order models.ServiceOrder) {
	fmt.Fprintf(b, `<details class="order-edit"><summary>Editar</summary>
<form method="POST" action="/tasker/orders/%s">
  <input name="clientName" value="%s" required>
  <input name="device" value="%s" required>
  <textarea name="issueDescription" required>%s</textarea>
  <select name="status">`,
		html.EscapeString(order.ID),
		html.EscapeString(order.ClientName),
		html.EscapeString(order.Device),
		html.EscapeString(order.IssueDescription))
	for _, status := range []models.Status{models.StatusPending, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled} {
		writeOption(b, string(status), statusLabels[status], status == order.Status)
	}
	b.WriteString(`</select>
  <button type="submit">Salvar alterações</button>
</form></details>`)
}

func formatISO(iso string) string {
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006 15:04")
}

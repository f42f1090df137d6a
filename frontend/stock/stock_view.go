package stock

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"tecnoreparos/frontend/shared/html"
	"tecnoreparos/models"
)

// StockPage renders the inventory table with its creation and edit forms.
func StockPage(data StockPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<main class="stock">`)
		if data.Flash != "" {
			fmt.Fprintf(&b, `<div class="alert" role="alert">%s</div>`, html.EscapeString(data.Flash))
		}
		b.WriteString(`<h1>Estoque de Peças</h1>`)
		writeCreateForm(&b)

		fmt.Fprintf(&b, `<table class="stock-table" data-count="%d"><thead><tr><th>Peça</th><th>Código</th><th>Qtd.</th><th>Preço</th><th></th></tr></thead><tbody>`, len(data.Items))
		for _, item := range data.Items {
			writeItemRow(&b, item)
		}
		b.WriteString(`</tbody></table>`)
		b.WriteString(`<a class="btn" href="/tasker/exports/stock.csv">Exportar CSV</a></main>`)

		_, err := io.WriteString(w, html.RenderAppLayout("Estoque - TecnoReparos", data.Theme, data.Username, b.String()))
		return err
	})
}

func writeCreateForm(b *strings.Builder) {
	b.WriteString(`<details class="stock-create"><summary>Nova Peça</summary>
<form method="POST" action="/tasker/stock">
  <input name="name" placeholder="Nome da peça" required>
  <input name="sku" placeholder="Código (SKU)" required>
  <input name="quantity" type="number" min="0" placeholder="Quantidade">
  <input name="price" type="number" min="0" step="0.01" placeholder="Preço">
  <button type="submit">Salvar</button>
</form></details>`)
}

func writeItemRow(b *strings.Builder, item models.StockItem) {
	fmt.Fprintf(b, `<tr data-id="%s"><td>%s</td><td>%s</td><td>%d</td><td>R$ %.2f</td><td><details><summary>Editar</summary>
<form method="POST" action="/tasker/stock/%s">
  <input name="name" value="%s" required>
  <input name="sku" value="%s" required>
  <input name="quantity" type="number" min="0" value="%d">
  <input name="price" type="number" min="0" step="0.01" value="%.2f">
  <button type="submit">Salvar</button>
</form></details>
<form method="POST" action="/tasker/stock/%s/delete" onsubmit="return confirm('Tem certeza que deseja excluir esta peça?');"><button type="submit">Excluir</button></form></td></tr>`,
		html.EscapeString(item.ID),
		html.EscapeString(item.Name),
		html.EscapeString(item.SKU),
		item.Quantity,
		item.Price,
		html.EscapeString(item.ID),
		html.EscapeString(item.Name),
		html.EscapeString(item.SKU),
		item.Quantity,
		item.Price,
		html.EscapeString(item.ID))
}

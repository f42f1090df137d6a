package orders

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	sessioncontext "tecnoreparos/frontend/shared/context"
	"tecnoreparos/frontend/settings"
	"tecnoreparos/infrastructure/audit"
	"tecnoreparos/models"
)

// OrdersPageQueryHandler renders the filtered, sorted order list.
func OrdersPageQueryHandler(store *Store, themes *settings.ThemeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		query := parseQuery(r)
		data := OrdersPageData{
			Theme:    themes.Current(),
			Username: session.Username,
			Orders:   FilterAndSort(store.List(), query),
			Query:    query,
			Flash:    r.URL.Query().Get("flash"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := OrdersPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render orders page", http.StatusInternalServerError)
		}
	}
}

// CreateOrderCommandHandler adds a new service order.
func CreateOrderCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			redirectFlash(w, r, "formulário inválido")
			return
		}
		draft, err := parseDraft(r)
		if err != nil {
			redirectFlash(w, r, err.Error())
			return
		}
		order := store.Add(r.Context(), draft)
		auditSvc.Record(r.Context(), session.Username, "create", "service_order", order.ID, nil, order)
		http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
	}
}

// UpdateOrderCommandHandler replaces an existing order. Unknown ids fall
// through as a silent no-op, matching the store contract.
func UpdateOrderCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			redirectFlash(w, r, "formulário inválido")
			return
		}
		draft, err := parseDraft(r)
		if err != nil {
			redirectFlash(w, r, err.Error())
			return
		}

		id := chi.URLParam(r, "id")
		before, found := store.Get(id)
		updated := models.ServiceOrder{
			ID:               id,
			ClientName:       draft.ClientName,
			Device:           draft.Device,
			IssueDescription: draft.IssueDescription,
			Status:           draft.Status,
			Images:           before.Images,
		}
		store.Update(r.Context(), updated)
		if found {
			after, _ := store.Get(id)
			auditSvc.Record(r.Context(), session.Username, "update", "service_order", id, before, after)
		}
		http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
	}
}

// DeleteOrderCommandHandler removes an order. The confirmation step lives in
// the view; unknown ids are a no-op.
func DeleteOrderCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		id := chi.URLParam(r, "id")
		before, found := store.Get(id)
		store.Delete(r.Context(), id)
		if found {
			auditSvc.Record(r.Context(), session.Username, "delete", "service_order", id, before, nil)
		}
		http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
	}
}

// AttachImagesCommandHandler encodes uploaded files and appends them to the
// order, rejecting the whole batch when it would exceed the image limit.
func AttachImagesCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		id := chi.URLParam(r, "id")

		if err := r.ParseMultipartForm(16 << 20); err != nil {
			redirectFlash(w, r, "upload inválido")
			return
		}
		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
			return
		}

		encoded := make([]string, 0, len(files))
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				redirectFlash(w, r, "falha ao ler imagem")
				return
			}
			dataURI, err := EncodeImage(f)
			f.Close()
			if err != nil {
				redirectFlash(w, r, "arquivo não é uma imagem válida")
				return
			}
			encoded = append(encoded, dataURI)
		}

		before, found := store.Get(id)
		if err := store.AttachImages(r.Context(), id, encoded); err != nil {
			if errors.Is(err, ErrTooManyImages) {
				redirectFlash(w, r, "Limite de 5 imagens por ordem de serviço.")
				return
			}
			redirectFlash(w, r, "falha ao anexar imagens")
			return
		}
		if found {
			after, _ := store.Get(id)
			auditSvc.Record(r.Context(), session.Username, "attach-images", "service_order", id, before, after)
		}
		http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
	}
}

// RemoveImageCommandHandler drops one image from an order.
func RemoveImageCommandHandler(store *Store, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		id := chi.URLParam(r, "id")
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
			return
		}
		before, found := store.Get(id)
		store.RemoveImage(r.Context(), id, index)
		if found {
			after, _ := store.Get(id)
			auditSvc.Record(r.Context(), session.Username, "remove-image", "service_order", id, before, after)
		}
		http.Redirect(w, r, "/tasker/orders", http.StatusSeeOther)
	}
}

func redirectFlash(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/tasker/orders?flash="+url.QueryEscape(message), http.StatusSeeOther)
}

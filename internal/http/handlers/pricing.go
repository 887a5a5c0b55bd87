package handlers

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/pkg/problem"
)

const multipartMemory = 8 << 20

type PricingHandler struct {
	Svc core.PricingService
	Log *slog.Logger
}

func NewPricingHandler(svc core.PricingService, log *slog.Logger) *PricingHandler {
	return &PricingHandler{Svc: svc, Log: log}
}

func (h *PricingHandler) Mount(r chi.Router) {
	r.Post("/print-jobs:quote", h.Quote)
}

// Quote prices a print job. The body is either JSON or multipart/form-data
// whose optional "document" part is a PDF that supplies the page count.
// 200: JSON; 400: undecodable body.
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var in core.PrintJobInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			problem.WriteFor(w, r, http.StatusBadRequest, "Invalid Form", "Multipart body could not be parsed.")
			return
		}
		defer r.MultipartForm.RemoveAll()

		in = core.PrintJobInput{
			PageCount:        r.FormValue("page_count"),
			ColorMode:        r.FormValue("color_mode"),
			Duplex:           formBool(r, "duplex"),
			RingBinding:      formBool(r, "ring_binding"),
			SoftcoverBinding: formBool(r, "softcover_binding"),
		}
		if file, _, err := r.FormFile("document"); err == nil {
			defer file.Close()
			in.Document = file
		}
	} else if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}

	quote, err := h.Svc.Quote(r.Context(), in)
	if err != nil {
		writeError(w, r, h.Log, err, "Failed to price print job")
		return
	}
	writeJSON(w, h.Log, http.StatusOK, quote)
}

// formBool treats anything strconv cannot parse as false, like an unticked box.
func formBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.FormValue(key))
	return v
}

package mongo

import (
	"strings"
	"time"

	"github.com/lamontana/storefront/internal/core"
)

// Collection names follow the shop's existing Spanish data model.
const (
	ColProducts = "productos"
	ColUsers    = "usuarios"
	ColOrders   = "pedidos"
	ColCounters = "counters"
)

// ProductDoc mirrors a "productos" record. Price may be stored as int or
// double, so it decodes as float64.
type ProductDoc struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"nombre"`
	Description string   `bson:"descripcion"`
	Kind        string   `bson:"tipo"`
	Category    string   `bson:"categoria,omitempty"`
	Price       float64  `bson:"precio"`
	Available   *bool    `bson:"disponible,omitempty"`
	Images      []string `bson:"imagenes,omitempty"`
	ImageRes    string   `bson:"imagen_local,omitempty"`
	CopyBased   *bool    `bson:"por_copia,omitempty"`
}

// fromProductDoc reports false for records that must not reach the catalog:
// explicitly unavailable ones and ones without a name.
func fromProductDoc(d ProductDoc) (core.Product, bool) {
	if d.Available != nil && !*d.Available {
		return core.Product{}, false
	}
	if strings.TrimSpace(d.Name) == "" {
		return core.Product{}, false
	}

	cat, err := core.ParseCategory(d.Category)
	if err != nil {
		cat = core.CategoryFromKind(d.Kind)
	}
	imageURL := ""
	if len(d.Images) > 0 {
		imageURL = d.Images[0]
	}
	copyBased := true
	if d.CopyBased != nil {
		copyBased = *d.CopyBased
	}

	return core.Product{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Price:       int(d.Price),
		Category:    cat,
		ImageRes:    d.ImageRes,
		ImageURL:    imageURL,
		CopyBased:   copyBased,
	}, true
}

func kindFor(c core.Category) string {
	if c == core.CategoryBinding {
		return "encuadernado"
	}
	return "impresion"
}

type OrderLineDoc struct {
	Name      string `bson:"nombre"`
	Category  string `bson:"categoria"`
	UnitPrice int    `bson:"precio_unitario"`
	Quantity  int    `bson:"cantidad"`
}

type PrintJobDoc struct {
	PageCount         int    `bson:"paginas"`
	ColorMode         string `bson:"color"`
	Duplex            bool   `bson:"doble_faz"`
	RingBinding       bool   `bson:"anillado"`
	SoftcoverBinding  bool   `bson:"tapa_blanda"`
	Total             int    `bson:"total"`
	PagesFromDocument bool   `bson:"paginas_de_documento"`
}

type OrderDoc struct {
	ID         string         `bson:"_id"`
	Number     string         `bson:"numero"`
	UserID     string         `bson:"usuario_id"`
	Lines      []OrderLineDoc `bson:"items"`
	CartTotal  int            `bson:"total_carrito"`
	PrintJob   *PrintJobDoc   `bson:"trabajo_impresion,omitempty"`
	JobTotal   int            `bson:"total_trabajo"`
	Total      int            `bson:"total"`
	Address    string         `bson:"direccion"`
	PostalCode string         `bson:"codigo_postal"`
	Phone      string         `bson:"telefono"`
	Notes      string         `bson:"notas,omitempty"`
	Shipping   string         `bson:"envio"`
	Status     string         `bson:"estado"`
	CreatedAt  time.Time      `bson:"creadoEn"`
}

func toOrderDoc(o core.Order) OrderDoc {
	lines := make([]OrderLineDoc, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineDoc{
			Name:      l.Product.Name,
			Category:  string(l.Product.Category),
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
		})
	}
	var job *PrintJobDoc
	if o.PrintJob != nil {
		job = &PrintJobDoc{
			PageCount:         o.PrintJob.Job.PageCount,
			ColorMode:         string(o.PrintJob.Job.ColorMode),
			Duplex:            o.PrintJob.Job.Duplex,
			RingBinding:       o.PrintJob.Job.RingBinding,
			SoftcoverBinding:  o.PrintJob.Job.SoftcoverBinding,
			Total:             o.PrintJob.Total,
			PagesFromDocument: o.PrintJob.PagesFromDocument,
		}
	}
	return OrderDoc{
		ID:         o.ID,
		Number:     o.Number,
		UserID:     o.UserID,
		Lines:      lines,
		CartTotal:  o.CartTotal,
		PrintJob:   job,
		JobTotal:   o.JobTotal,
		Total:      o.Total,
		Address:    o.Shipping.Address,
		PostalCode: o.Shipping.PostalCode,
		Phone:      o.Shipping.Phone,
		Notes:      o.Shipping.Notes,
		Shipping:   o.Shipping.Outcome.String(),
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
	}
}

func fromOrderDoc(d OrderDoc) core.Order {
	lines := make([]core.CartLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, core.CartLine{
			Product: core.Product{
				Name:     l.Name,
				Category: core.Category(l.Category),
				Price:    l.UnitPrice,
			},
			Quantity: l.Quantity,
		})
	}
	var quote *core.PrintQuote
	if d.PrintJob != nil {
		quote = &core.PrintQuote{
			Job: core.PrintJob{
				PageCount:        d.PrintJob.PageCount,
				ColorMode:        core.ColorMode(d.PrintJob.ColorMode),
				Duplex:           d.PrintJob.Duplex,
				RingBinding:      d.PrintJob.RingBinding,
				SoftcoverBinding: d.PrintJob.SoftcoverBinding,
			},
			Total:             d.PrintJob.Total,
			PagesFromDocument: d.PrintJob.PagesFromDocument,
		}
	}
	var outcome core.ShippingOutcome
	_ = outcome.UnmarshalText([]byte(d.Shipping))

	return core.Order{
		ID:        d.ID,
		Number:    d.Number,
		UserID:    d.UserID,
		Lines:     lines,
		CartTotal: d.CartTotal,
		PrintJob:  quote,
		JobTotal:  d.JobTotal,
		Total:     d.Total,
		Shipping: core.ShippingDetails{
			Address:    d.Address,
			PostalCode: d.PostalCode,
			Phone:      d.Phone,
			Notes:      d.Notes,
			Outcome:    outcome,
		},
		Status:    core.OrderStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

// UserDoc mirrors a "usuarios" record.
type UserDoc struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"nombre"`
	LastName     string    `bson:"apellido"`
	Email        string    `bson:"email"`
	Phone        string    `bson:"telefono"`
	Address      string    `bson:"direccion"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"creadoEn"`
	UpdatedAt    time.Time `bson:"actualizadoEn"`
}

func toUserDoc(u core.UserProfile) UserDoc {
	return UserDoc{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromUserDoc(d UserDoc) core.UserProfile {
	return core.UserProfile{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		Address:      d.Address,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

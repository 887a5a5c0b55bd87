// Package notify sends customer emails through Postmark.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/keighl/postmark"

	"github.com/lamontana/storefront/internal/core"
)

type sender interface {
	SendEmail(email postmark.Email) (postmark.EmailResponse, error)
}

type Postmark struct {
	client sender
	from   string
}

func NewPostmark(serverToken, from string) *Postmark {
	return &Postmark{client: postmark.NewClient(serverToken, ""), from: from}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<p>Hi {{.Name}},</p>
<p>We received your order <strong>{{.Order.Number}}</strong>.</p>
<ul>
{{range .Order.Lines}}<li>{{.Quantity}} x {{.Product.Name}}: ${{.Subtotal}}</li>
{{end}}{{with .Order.PrintJob}}<li>Print job ({{.Job.PageCount}} pages): ${{.Total}}</li>
{{end}}</ul>
<p>Total: <strong>${{.Order.Total}}</strong></p>
<p>Shipping: {{.Order.Shipping.Outcome.Message}}</p>
<p>Thanks for choosing La Montaña.</p>
`))

// OrderConfirmation emails the customer a summary of the order.
func (p *Postmark) OrderConfirmation(ctx context.Context, order core.Order, user core.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: user has no email", core.ErrValidation)
	}

	var body bytes.Buffer
	data := struct {
		Name  string
		Order core.Order
	}{Name: user.FirstName, Order: order}
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	_, err := p.client.SendEmail(postmark.Email{
		From:     p.from,
		To:       user.Email,
		Subject:  fmt.Sprintf("Order %s confirmed", order.Number),
		HtmlBody: body.String(),
		Tag:      "order-confirmation",
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Nop discards notifications when email is not configured.
type Nop struct{}

func (Nop) OrderConfirmation(context.Context, core.Order, core.UserProfile) error { return nil }

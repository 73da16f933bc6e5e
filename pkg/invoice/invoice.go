// Package invoice renders plain-text invoices for placed orders. The output
// is consumed by the order-event worker, which attaches it to customer
// notifications.
package invoice

import (
	"fmt"
	"strings"
	"text/template"

	"quitq/internal/models"
)

var invoiceTemplate = template.Must(template.New("invoice").Parse(`QuitQ Order Invoice
Order ID: {{.Order.ID}}
Customer: {{.User.Name}} ({{.User.Email}})
{{- if .Order.ShippingAddress}}
Ship to: {{.Order.ShippingAddress}}
{{- end}}
Payment: {{.Order.PaymentMethod}}

{{range .Lines}}{{.}}
{{end}}
Total: ${{printf "%.2f" .Order.TotalPrice}}
`))

type invoiceData struct {
	Order *models.Order
	User  *models.User
	Lines []string
}

// Render produces the invoice text for an order. Item names come from the
// views the caller joined; item prices are the frozen order-item prices.
func Render(order *models.Order, user *models.User, names map[string]string) (string, error) {
	data := invoiceData{Order: order, User: user}
	for _, item := range order.Items {
		name := names[item.ProductID]
		if name == "" {
			name = item.ProductID
		}
		data.Lines = append(data.Lines, fmt.Sprintf("%s x %d - $%.2f", name, item.Quantity, item.Price*float64(item.Quantity)))
	}

	var b strings.Builder
	if err := invoiceTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render invoice for order %s: %w", order.ID, err)
	}
	return b.String(), nil
}

package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/michelstore/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Checkout is a WhatsApp deep link: the order summary is the message, the
// store never sees a server-side order.

func kindLabel(kind domain.ItemKind) string {
	if kind == domain.ItemKindKit {
		return "Conjunto"
	}
	return "Produto"
}

// OrderMessage renders the cart summary sent to the store.
func OrderMessage(lines []Line, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("Olá! Gostaria de fazer um pedido dos seguintes itens:\n\n")

	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s: %s - R$ %s x %d = R$ %s",
			kindLabel(line.Kind), line.Name, line.Price.StringFixed(2), line.Quantity, line.Subtotal().StringFixed(2)))
	}

	b.WriteString(fmt.Sprintf("\n\nTotal: R$ %s", total.StringFixed(2)))
	b.WriteString("\n\nGostaria de confirmar a disponibilidade e o pagamento.")

	return b.String()
}

// OrderLink builds the wa.me link for the whole cart.
func OrderLink(phone string, lines []Line, total decimal.Decimal) string {
	return waLink(phone, OrderMessage(lines, total))
}

// EnquiryLink builds the wa.me link for a single catalog item.
func EnquiryLink(phone string, item Item) string {
	label := "produto"
	if item.Kind == domain.ItemKindKit {
		label = "kit"
	}

	message := fmt.Sprintf("Olá! Estou interessado(a) no %s:\n%s\nPreço: R$ %s\n\nGostaria de saber mais sobre a disponibilidade.",
		label, item.Name, decimal.NewFromFloat(item.Price).StringFixed(2))

	return waLink(phone, message)
}

func waLink(phone string, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", sanitizePhone(phone), url.QueryEscape(message))
}

// sanitizePhone strips everything but digits, as wa.me expects.
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// internal/service/template_service.go
package service

import "strings"

const deliveryPattern = "Hi {name}, {message}"

// RenderDelivery builds the per-customer delivery message. This is literal
// substitution into a fixed pattern, not a template engine: the campaign
// message is inserted verbatim, placeholders inside it included.
func RenderDelivery(campaignMessage, customerName string) string {
	out := strings.Replace(deliveryPattern, "{name}", customerName, 1)
	return strings.Replace(out, "{message}", campaignMessage, 1)
}

package entities

// GenericWebhookKind is the GitHub hook name of user-defined web hooks.
const GenericWebhookKind = "web"

// Webhook is a provider-side callback registered on one repository.
type Webhook struct {
	Kind   string
	ID     int64
	Active bool
}

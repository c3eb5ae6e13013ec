package eventlog

// Category drives how an event folds into the daily usage aggregates.
type Category string

const (
	CategorySearch           Category = "search"
	CategoryEmailReview      Category = "email_review"
	CategoryContactExport    Category = "contact_export"
	CategoryAttachmentExport Category = "attachment_export"
	CategoryNone             Category = ""
)

// RouteMeta declares how requests matching one route are captured: the
// event name stored in the log, the aggregation category, and which query
// parameters are copied into the event properties.
type RouteMeta struct {
	EventName     string
	Category      Category
	CaptureParams []string
}

type routeKey struct {
	method string
	route  string
}

// routeTable maps gin route templates to capture metadata. Routes not
// listed here are never captured.
var routeTable = map[routeKey]RouteMeta{
	{"GET", "/api/tenant/:tenantId/contacts"}: {
		EventName:     "contact_search",
		Category:      CategorySearch,
		CaptureParams: []string{"search", "clientDomainIds", "me", "subordinates", "aliases", "collaborators"},
	},
	{"GET", "/api/tenant/:tenantId/client-domains"}: {
		EventName:     "client_domain_search",
		Category:      CategorySearch,
		CaptureParams: []string{"search"},
	},
	{"GET", "/api/tenant/:tenantId/contacts/:contactId/activity"}: {
		EventName:     "email_review",
		Category:      CategoryEmailReview,
		CaptureParams: []string{"emailsFrom", "emailsUpto"},
	},
	{"GET", "/api/tenant/:tenantId/contacts/export"}: {
		EventName:     "contact_export",
		Category:      CategoryContactExport,
		CaptureParams: []string{"search", "clientDomainIds"},
	},
	{"GET", "/api/tenant/:tenantId/contacts/:contactId/attachments/export"}: {
		EventName:     "attachment_export",
		Category:      CategoryAttachmentExport,
		CaptureParams: nil,
	},
}

// LookupRoute returns the capture metadata for a method and route template.
func LookupRoute(method, routeTemplate string) (RouteMeta, bool) {
	meta, ok := routeTable[routeKey{method: method, route: routeTemplate}]
	return meta, ok
}

package common

// AuthHeaderName is the HTTP header carrying the bearer token.
const AuthHeaderName = "Authorization"

// RequestIDHeaderName is the HTTP header carrying the client-generated
// request ID attached to every outbound API call.
const RequestIDHeaderName = "X-Request-Id"

// FocusAreas are the canonical categories offered for a provider's service
// focus and for a seeker's industry preference.
var FocusAreas = []string{
	"Technology & Software",
	"Healthcare & Medical",
	"Education & Training",
	"Finance & Accounting",
	"Marketing & Advertising",
	"Design & Creative",
	"Business & Consulting",
	"Engineering & Manufacturing",
	"Retail & E-commerce",
	"Hospitality & Food Service",
}

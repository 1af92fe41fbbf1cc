package observability

const (
	MUsecaseRequests         MetricKey = "usecase_requests_total"
	MUsecaseDuration         MetricKey = "usecase_duration_seconds"
	MHTTPRequests            MetricKey = "http_requests_total"
	MHTTPRequestDuration     MetricKey = "http_request_duration_seconds"
	MExternalRequests        MetricKey = "external_requests_total"
	MExternalRequestDuration MetricKey = "external_request_duration_seconds"
	MCartAdmissions          MetricKey = "cart_admissions_total"
)

// Labels carried by each metric; the prometheus registry is built from this table.
var MetricLabels = map[MetricKey][]string{
	MUsecaseRequests:         {"use_case", "outcome"},
	MUsecaseDuration:         {"use_case"},
	MHTTPRequests:            {"method", "route", "status"},
	MHTTPRequestDuration:     {"method", "route", "status"},
	MExternalRequests:        {"peer", "endpoint", "outcome"},
	MExternalRequestDuration: {"peer", "endpoint"},
	MCartAdmissions:          {"outcome", "catalog"},
}

package dto

// DashboardSummary contadores agregados de empleados.
// Se calcula con consultas agregadas por petición; no hay estado mutable
// compartido entre requests.
type DashboardSummary struct {
	TotalEmployees int64 `json:"totalEmployees"`
	ActiveCount    int64 `json:"activeCount"`
	InactiveCount  int64 `json:"inactiveCount"`
	VacationCount  int64 `json:"vacationCount"`
}

// AskRequest pregunta en lenguaje natural para el asistente del dashboard.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse respuesta del asistente. Siempre es un string legible:
// los fallos también se devuelven aquí, nunca como error HTTP.
type AskResponse struct {
	Answer string `json:"answer"`
}

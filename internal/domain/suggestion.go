package domain

// DateLayout é o formato de data simples (sugerencias, cupones, filtros).
const DateLayout = "2006-01-02"

// Suggestion é uma sugerencia enviada pelo formulário público.
// A data é guardada como texto para ser formatada pelo frontend.
type Suggestion struct {
	ID       ID     `json:"id"`
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Reason   string `json:"motivo"`
	Message  string `json:"mensaje"`
	Date     string `json:"fecha"`
	Reviewed bool   `json:"revisado"`
}

type CreateSuggestionRequest struct {
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Reason  string `json:"motivo"`
	Message string `json:"mensaje"`
}

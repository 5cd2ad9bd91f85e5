package domain

// FAQ é uma pergunta frequente exibida no site público.
type FAQ struct {
	ID       ID     `json:"id"`
	Question string `json:"pregunta"`
	Answer   string `json:"respuesta"`
}

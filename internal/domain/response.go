package domain

// Response é o envelope de todas as respostas da API.
// @Description Envelope padrão: error=false com o payload em respuesta, ou error=true com a mensagem.
type Response struct {
	Error     bool        `json:"error" example:"false"`
	Respuesta interface{} `json:"respuesta"`
}

// ErrorResponse documenta o corpo de erro no Swagger.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Error     bool   `json:"error" example:"true"`
	Respuesta string `json:"respuesta" example:"La cita no existe."`
}

// OK monta uma resposta de sucesso.
func OK(data interface{}) Response {
	return Response{Error: false, Respuesta: data}
}

// Fail monta uma resposta de erro.
func Fail(msg string) Response {
	return Response{Error: true, Respuesta: msg}
}

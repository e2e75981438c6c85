package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 = token inválido/expirado; subcódigos 460, 463 e 467 também indicam sessão inválida
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited verifica os códigos de limite de chamadas da Graph API
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80004:
		return true
	}
	return false
}

// APIError é o erro devolvido pelo client quando a Graph API responde com status de erro
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Message == "" {
		return fmt.Sprintf("meta api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("meta api: status %d: %s (code %d, subcode %d, trace %s)",
		e.StatusCode, e.Details.Message, e.Details.Code, e.Details.ErrorSubcode, e.Details.FBTraceID)
}

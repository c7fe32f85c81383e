package entities

import "errors"

// Erros do domínio. Toda falha de infraestrutura é convertida para um destes na fronteira.
var (
	ErrValidation         = errors.New("resposta inválida")
	ErrMissingIdentity    = errors.New("whatsapp não informado")
	ErrPersistence        = errors.New("falha ao acessar o banco de dados")
	ErrService            = errors.New("serviço de IA indisponível")
	ErrMissingCredential  = errors.New("chave de API da IA não configurada")
	ErrEmptyPool          = errors.New("nenhum participante para sortear")
	ErrRecordNotFound     = errors.New("pesquisa não encontrada")
	ErrTogglePending      = errors.New("alteração de resgate em andamento")
	ErrSessionNotFound    = errors.New("sessão não encontrada")
	ErrUnauthorized       = errors.New("acesso não autorizado")
	ErrSurveyNotCompleted = errors.New("questionário ainda não foi concluído")
)

// ValidationError carrega a mensagem exibida ao participante
type ValidationError struct {
	QuestionID string
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError cria um erro de validação para uma pergunta
func NewValidationError(questionID, message string) *ValidationError {
	return &ValidationError{QuestionID: questionID, Message: message}
}

// Package assistant implementa el puente lenguaje natural → SQL del
// dashboard: arma un prompt con el esquema fijo de dos tablas, pide al
// servicio de completado una sentencia SELECT, limpia los fences de
// markdown y la ejecuta tal cual sobre una conexión dedicada.
//
// Frontera de confianza: el SQL devuelto por el modelo se ejecuta VERBATIM,
// sin allow-list de tipos de sentencia ni parametrización. El endurecimiento
// corresponde al nivel de permisos del rol de base de datos, no a este
// paquete.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentoplus/talento-api/internal/application/ports"
)

// schemaInfo describe las únicas dos tablas expuestas al modelo.
// Ninguna otra tabla aparece jamás en el prompt.
const schemaInfo = "Table employees: id, first_name, last_name, email, position, salary, join_date, status, department_id. " +
	"Table departments: id, name."

// Mensajes de cara al usuario. Todos los fallos del puente se devuelven
// como uno de estos strings; nunca se propaga un error al handler.
const (
	msgMissingKey   = "AI API Key is missing."
	msgServiceError = "Error calling AI service."
	msgNoQuery      = "Could not generate query."
	msgExecuted     = "Query executed."
)

const completionTimeout = 10 * time.Second

// UseCase orquesta la consulta al asistente.
type UseCase struct {
	completion ports.CompletionService
	executor   ports.RawQueryExecutor
	hasAPIKey  bool
}

// NewUseCase construye el puente. hasAPIKey permite responder con un mensaje
// claro cuando la clave del servicio no está configurada, sin llamar a nada.
func NewUseCase(completion ports.CompletionService, executor ports.RawQueryExecutor, hasAPIKey bool) *UseCase {
	return &UseCase{completion: completion, executor: executor, hasAPIKey: hasAPIKey}
}

// Ask responde una pregunta en lenguaje natural. SIEMPRE devuelve un string
// legible: errores de HTTP, parseo o ejecución se convierten en mensaje.
func (uc *UseCase) Ask(ctx context.Context, question string) string {
	if !uc.hasAPIKey {
		return msgMissingKey
	}

	prompt := buildPrompt(question)

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	raw, err := uc.completion.Complete(ctx, prompt)
	if err != nil {
		return msgServiceError
	}

	sqlQuery := stripFences(raw)
	if sqlQuery == "" {
		return msgNoQuery
	}

	value, found, err := uc.executor.QueryFirstValue(ctx, sqlQuery)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if !found {
		return msgExecuted
	}
	return fmt.Sprintf("Result: %v", value)
}

// buildPrompt arma el prompt fijo con el esquema y la pregunta del usuario.
func buildPrompt(question string) string {
	return "You are a SQL assistant. Given the following schema: " + schemaInfo + ". " +
		"Translate this question into a PostgreSQL SELECT query that returns a single value (count, sum, etc) or a list of names. " +
		"Question: " + question + ". " +
		"Return ONLY the SQL query, nothing else. Do not use markdown blocks."
}

// stripFences elimina los marcadores de bloque de código markdown y el
// whitespace circundante. No interpreta el contenido.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```sql", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

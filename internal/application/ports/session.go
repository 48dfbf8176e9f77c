package ports

import "context"

// La credencial de sesión es opaca para la consola: se reenvía tal cual al
// backend y solo el backend decide si es válida.

type sessionKey struct{}

// WithSession adjunta la credencial de sesión al contexto de la petición.
func WithSession(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionKey{}, token)
}

// SessionFrom recupera la credencial; cadena vacía si no hay sesión.
func SessionFrom(ctx context.Context) string {
	s, _ := ctx.Value(sessionKey{}).(string)
	return s
}

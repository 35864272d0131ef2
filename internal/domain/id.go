package domain

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID genera un identificador entero único basado en el reloj (milisegundos
// Unix), estrictamente creciente dentro del proceso: dos llamadas en el mismo
// milisegundo no repiten id.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

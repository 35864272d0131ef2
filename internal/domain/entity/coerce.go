package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceInt convierte un valor JSON crudo a entero: acepta números (los
// decimales se truncan) y strings numéricos. Valores ausentes, nulos o no
// numéricos cuentan como 0, igual que los documentos heredados del sistema.
func CoerceInt(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
		return 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

// CoerceString convierte un valor JSON crudo a string; no-strings quedan "".
func CoerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

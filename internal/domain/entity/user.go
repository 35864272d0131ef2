package entity

import "encoding/json"

const (
	fieldEmail    = "email"
	fieldPassword = "password"
)

// User representa un usuario del sistema, identificado por email. La
// contraseña se almacena y compara en texto plano por paridad funcional con
// los documentos existentes; AuthUseCase es el único punto de comparación,
// así que sustituir hashing no toca a los llamadores. Los campos de perfil
// restantes se conservan en Extra.
type User struct {
	Email    string
	Password string
	Extra    map[string]json.RawMessage
}

// UnmarshalJSON conserva los campos de perfil desconocidos en Extra.
func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	u.Email = CoerceString(raw[fieldEmail])
	u.Password = CoerceString(raw[fieldPassword])
	delete(raw, fieldEmail)
	delete(raw, fieldPassword)
	if len(raw) > 0 {
		u.Extra = raw
	} else {
		u.Extra = nil
	}
	return nil
}

// MarshalJSON reconstruye el documento plano del usuario.
func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, len(u.Extra)+2)
	for k, v := range u.Extra {
		m[k] = v
	}
	var err error
	if m[fieldEmail], err = json.Marshal(u.Email); err != nil {
		return nil, err
	}
	if m[fieldPassword], err = json.Marshal(u.Password); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

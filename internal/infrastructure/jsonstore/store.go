package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/jcamargo/almacen-api/pkg/logger"
)

// Nombres de documento del almacén.
const (
	DocProducts   = "products"
	DocOperations = "operations"
	DocLocations  = "locations"
	DocUsers      = "users"
	DocOTP        = "otp"
)

// Store es un almacén documental clave-valor: cada documento es un archivo
// JSON bajo dir. Un mutex por nombre serializa cada ciclo leer→computar→
// escribir sobre el mismo documento, eliminando la pérdida de escrituras
// entre requests concurrentes. No hay atomicidad entre documentos distintos.
//
// El filesystem se inyecta (afero.Fs) para poder correr sobre memoria en
// tests sin tocar disco.
type Store struct {
	fs  afero.Fs
	dir string
	log *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New construye el almacén sobre el filesystem y directorio dados.
func New(fs afero.Fs, dir string, log *logger.Logger) *Store {
	return &Store{
		fs:    fs,
		dir:   dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// WithLock ejecuta fn con el lock del documento tomado. Todo ciclo de
// lectura-modificación-escritura de un repositorio pasa por aquí.
func (s *Store) WithLock(name string, fn func() error) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()
	return fn()
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load carga el documento en out. Archivo ausente o contenido corrupto no
// propagan error: se registra y out conserva el default del llamador.
func (s *Store) Load(name string, out any) {
	raw, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("doc", name).Msg("lectura de documento falló; se usa el default")
		}
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn().Err(err).Str("doc", name).Msg("documento corrupto; se usa el default")
	}
}

// Save persiste el documento con formato legible (dos espacios), creando el
// directorio de datos si no existe.
func (s *Store) Save(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, s.path(name), raw, 0o644); err != nil {
		s.log.Error().Err(err).Str("doc", name).Msg("escritura de documento falló")
		return err
	}
	return nil
}

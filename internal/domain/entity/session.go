package entity

// Session contexto del operario conectado. Se crea en el login y se invalida en el logout;
// se pasa explícitamente a quien lo necesite.
type Session struct {
	warehouseID    string
	warehousemanID string
	active         bool
}

// NewSession abre una sesión a partir del registro autenticado.
func NewSession(w *Warehouseman) *Session {
	return &Session{warehouseID: w.WarehouseID, warehousemanID: w.ID, active: true}
}

// WarehouseID almacén del operario.
func (s *Session) WarehouseID() string {
	if s == nil {
		return ""
	}
	return s.warehouseID
}

// WarehousemanID autor de las modificaciones (auditoría).
func (s *Session) WarehousemanID() string {
	if s == nil {
		return ""
	}
	return s.warehousemanID
}

// Active false tras End o para una sesión nil.
func (s *Session) Active() bool { return s != nil && s.active }

// End invalida la sesión y borra sus identificadores.
func (s *Session) End() {
	if s == nil {
		return
	}
	*s = Session{}
}

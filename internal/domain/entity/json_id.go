package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// flexID identificador que llega como cadena o como número (json-server asigna ids numéricos
// a los registros creados por POST). Se conserva el texto literal del número.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id no es cadena ni número: %s", data)
		}
		*id = flexID(n.String())
		return nil
	}
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	aux := struct {
		*plain
		ID flexID `json:"id"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = string(aux.ID)
	return nil
}

func (s *Stock) UnmarshalJSON(data []byte) error {
	type plain Stock
	aux := struct {
		*plain
		ID flexID `json:"id"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = string(aux.ID)
	return nil
}

func (w *Warehouseman) UnmarshalJSON(data []byte) error {
	type plain Warehouseman
	aux := struct {
		*plain
		ID          flexID `json:"id"`
		WarehouseID flexID `json:"warehouseId"`
	}{plain: (*plain)(w)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	w.ID, w.WarehouseID = string(aux.ID), string(aux.WarehouseID)
	return nil
}

func (e *EditEvent) UnmarshalJSON(data []byte) error {
	type plain EditEvent
	aux := struct {
		*plain
		WarehousemanID flexID `json:"warehousemanId"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.WarehousemanID = string(aux.WarehousemanID)
	return nil
}

package codegen

import "warehouse-counter/core/textnorm"

// Unmapped is the segment used for labels missing from the tables.
const Unmapped = "XX"

// Categories maps category labels to code segments.
var Categories = map[string]string{
	"Equipo de Cómputo": "EC",
	"Mobiliario":        "MO",
	"Equipo de Oficina": "EO",
	"Vehículos":         "VE",
	"Herramientas":      "HE",
	"Maquinaria":        "MQ",
	"Electrodomésticos": "ED",
	"Comunicaciones":    "CM",
	"Equipo Médico":     "EM",
	"Inmuebles":         "IN",
}

// Branches maps branch labels to code segments.
var Branches = map[string]string{
	"Jardín Plaza":     "JP",
	"Centro":           "CE",
	"Norte":            "NO",
	"Sur":              "SU",
	"Bodega Principal": "BP",
	"Oficina Central":  "OC",
}

// table is a label lookup keyed by folded label. Segments resolve to themselves.
type table map[string]string

func newTable(src map[string]string) table {
	t := make(table, len(src)*2)
	for label, code := range src {
		t[textnorm.Fold(label)] = code
		t[textnorm.Fold(code)] = code
	}
	return t
}

func (t table) lookup(label string) string {
	if code, ok := t[textnorm.Fold(label)]; ok {
		return code
	}
	return Unmapped
}

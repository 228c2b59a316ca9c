package dto

// BonusRequest parámetros del cálculo de bonificación tal como llegan de la UI.
// Percent y Deduction viajan como texto (inputs libres); la capa de aplicación
// los sanea a 0 cuando no son parseables, según el contrato del motor.
type BonusRequest struct {
	Tariff    string `json:"tariff"`    // "rak" | "medAvdrag"; cualquier otro valor -> rak
	Percent   string `json:"percent"`   // ej. "2,5" o "2.5"
	Deduction string `json:"deduction"` // monto fijo a deducir en medAvdrag
}

package model

// Producto is a chicken product or cut sold by weight.
type Producto struct {
	ID     uint   `gorm:"primaryKey"`
	Nombre string `gorm:"not null"`
	Codigo string `gorm:"uniqueIndex;not null"`
	Unidad string `gorm:"not null;default:'kg'"`
}

func (Producto) TableName() string { return "productos" }

// Product codes of the fixed catalogue.
const (
	CodigoPolloEntero = "POLLO_ENTERO"
	CodigoPolloVivo   = "POLLO_VIVO"
	CodigoPechuga     = "PECHUGA"
	CodigoPiernaMuslo = "PIERNA_MUSLO"
	CodigoMenudencia  = "MENUDENCIA"
	CodigoAlitas      = "ALITAS"
)

// ProductosBase is the catalogue seeded into an empty database.
var ProductosBase = []Producto{
	{Nombre: "Pollo entero", Codigo: CodigoPolloEntero, Unidad: "kg"},
	{Nombre: "Pollo vivo", Codigo: CodigoPolloVivo, Unidad: "kg"},
	{Nombre: "Pechuga", Codigo: CodigoPechuga, Unidad: "kg"},
	{Nombre: "Pierna/Muslo", Codigo: CodigoPiernaMuslo, Unidad: "kg"},
	{Nombre: "Menudencia", Codigo: CodigoMenudencia, Unidad: "kg"},
	{Nombre: "Alitas", Codigo: CodigoAlitas, Unidad: "kg"},
}

// AceptaTipoVenta reports whether the product can be priced under tipo.
// Only whole chickens (dressed or live) have wholesale and retail prices.
func (p Producto) AceptaTipoVenta(tipo string) bool {
	switch tipo {
	case TipoVentaNormal:
		return true
	case TipoVentaMayoreo, TipoVentaMenudeo:
		return p.Codigo == CodigoPolloEntero || p.Codigo == CodigoPolloVivo
	default:
		return false
	}
}

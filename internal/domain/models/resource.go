package models

// Resource sectors covered by the natural-resource feed
const (
	SectorOilAndGas   = "Oil & Gas"
	SectorMining      = "Mining"
	SectorTimber      = "Timber"
	SectorBauxite     = "Bauxite"
	SectorAgriculture = "Agriculture"
)

// Resource is an append-only natural-resource news item, read-only from
// the client's perspective.
type Resource struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(50);index" json:"category"`
	Location    string `gorm:"type:varchar(200)" json:"location"`
}

package component

import (
	"fmt"

	"github.com/lixenwraith/vi-defense/parameter"
)

// TowerStatus tracks a tower through construction and upgrades
type TowerStatus uint8

const (
	TowerQueued TowerStatus = iota
	TowerBuilding
	TowerOperational
	TowerUpgrading
)

func (s TowerStatus) String() string {
	switch s {
	case TowerQueued:
		return "queued"
	case TowerBuilding:
		return "building"
	case TowerOperational:
		return "operational"
	case TowerUpgrading:
		return "upgrading"
	default:
		return fmt.Sprintf("TowerStatus(%d)", uint8(s))
	}
}

// TowerComponent is a tower placed on a visible grid cell
type TowerComponent struct {
	Row, Col  int
	Range     float64
	TypeIndex int
	Status    TowerStatus
	Upgrades  uint32 // Completed upgrade flags
}

// FactoryComponent spins while it helps build an adjacent order
type FactoryComponent struct {
	Rotation      float64
	RotationSpeed float64
	Constructing  bool // Already contributed this tick
}

// TowerType is the static description of a buildable tower
type TowerType struct {
	Name        string
	Kind        string
	Damage      float64
	RateOfFire  float64
	Range       float64
	Cost        float64
	Description string
	Flavor      string
	Color       uint32
}

// IsFactory reports whether towers of this type assist adjacent construction
func (t *TowerType) IsFactory() bool {
	return t.Kind == parameter.FactoryKind
}

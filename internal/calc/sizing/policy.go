package sizing

import (
	"Timberline/internal/calc/fire"
	"Timberline/internal/catalog"
)

// Mode selects the failure checks applied to a member.
type Mode int

const (
	// Flexure checks bending, shear and deflection under a line load.
	Flexure Mode = iota
	// Axial checks compression with weak-axis buckling.
	Axial
)

// Policy carries what differs between member types.
type Policy struct {
	Member catalog.MemberType
	Mode   Mode

	// Faces exposed to fire along each dimension. Each adds one allowance.
	WidthFaces int
	DepthFaces int

	// NetWidthsMM fixes the structural width by fire rating. Higher ratings
	// call for wider sections so the residual stays stocky.
	NetWidthsMM map[fire.Rating]float64

	// SlendernessRatio sets a minimum net depth of span/ratio when positive.
	SlendernessRatio float64
	// DepthAtLeastWidth keeps the gross depth from falling below the width.
	DepthAtLeastWidth bool
}

// JoistPolicy: sides and soffit exposed.
func JoistPolicy() Policy {
	return Policy{
		Member:     catalog.Joist,
		Mode:       Flexure,
		WidthFaces: 2,
		DepthFaces: 1,
		NetWidthsMM: map[fire.Rating]float64{
			fire.None: 120,
			fire.R30:  120,
			fire.R60:  140,
			fire.R90:  165,
			fire.R120: 190,
		},
	}
}

// BeamPolicy: sides and soffit exposed, top face protected by the floor.
func BeamPolicy() Policy {
	return Policy{
		Member:     catalog.Beam,
		Mode:       Flexure,
		WidthFaces: 2,
		DepthFaces: 1,
		NetWidthsMM: map[fire.Rating]float64{
			fire.None: 165,
			fire.R30:  165,
			fire.R60:  190,
			fire.R90:  215,
			fire.R120: 240,
		},
	}
}

// ColumnPolicy: all four faces exposed. The width always comes from the
// supported beam.
func ColumnPolicy() Policy {
	return Policy{
		Member:            catalog.Column,
		Mode:              Axial,
		WidthFaces:        2,
		DepthFaces:        2,
		SlendernessRatio:  20,
		DepthAtLeastWidth: true,
	}
}

func (p Policy) netWidth(r fire.Rating) float64 {
	if w, ok := p.NetWidthsMM[r]; ok {
		return w
	}
	return p.NetWidthsMM[fire.None]
}

package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
)

// PCGol converts m to the pcgol matrix type. The memory layout is shared,
// but pcgol multiplies in column-major order, so
// a.Mul(b).PCGol() == b.PCGol().Mul(a.PCGol()).
func (m Mat4) PCGol() pcmat.Mat4 {
	return pcmat.Mat4(m)
}

func FromPCGol(m pcmat.Mat4) Mat4 {
	return Mat4(m)
}

func (v Vec3) PCGol() pcmat.Vec3 {
	return pcmat.Vec3(v)
}

func Vec3FromPCGol(v pcmat.Vec3) Vec3 {
	return Vec3(v)
}

// Package frame implements the 12-DOF space-frame element kernel: local
// stiffness, the rotation/transformation matrix, and end-force recovery
// for a 3D Bernoulli-Euler beam with axial, biaxial bending, and
// Saint-Venant torsion (spec.md §4.B).
//
// It is grounded on the teacher's Beam element (ele/solid/beam.go) and its
// one-dimensional material record mdl/sld.OnedLinElast, whose E/G/A/I22/
// I11/Jtt/Rho fields map directly onto this package's Properties.
package frame

// Properties bundles the cross-section and material data the local
// stiffness matrix needs, mirroring the teacher's OnedLinElast record
// field-for-field.
type Properties struct {
	E   float64 // Young's modulus, Pa
	G   float64 // shear modulus, Pa
	A   float64 // cross-sectional area, m^2
	Iy  float64 // moment of inertia about local y, m^4
	Iz  float64 // moment of inertia about local z, m^4
	J   float64 // torsional constant, m^4
	Rho float64 // density, kg/m^3
}

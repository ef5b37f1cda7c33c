package sfat

// PillarsTitle heads the pillar listing.
const PillarsTitle = "=== SFAT: 13 Foundational Pillars ==="

var pillars = [...]string{
	"1. Origin: Point Zero (Big Bang) as universal reference x0.",
	"2. Perfect Sphere: All objects originate as ideal spheres.",
	"3. Golden Ratio φ: Discrete scale evolution x → x·φⁿ.",
	"4. Pi π: Topological constraint for angular closure.",
	"5. Fractal Field σ(x): Measures depth from x0 via log(φ).",
	"6. Environmental Deformers: Fields like gravity, radiation.",
	"7. Life: Alters σ(x), introduces memory & organization.",
	"8. Observation: Modifies the system actively (contextuality).",
	"9. Time: Emergent quantity, t ∝ φⁿ.",
	"10. Log-Periodic Law: Universal correction formula.",
	"11. Fractal Hierarchy: Phenomena appear at φⁿ nodes.",
	"12. Interdisciplinary Integration: Physics, bio, math, info.",
	"13. Expansion Factor a(t): Redshift correction with φ.",
}

// Pillars returns the foundational statements of the theory, in order.
func Pillars() []string {
	out := make([]string, len(pillars))
	copy(out, pillars[:])
	return out
}

package zkp

// group abstracts the three operations both Chaum-Pedersen instances need.
// E is a group element, S is an exponent (or scalar) acting on it.
type group[E, S any] interface {
	scale(base E, k S) E
	combine(a, b E) E
	equal(a, b E) bool
}

// verifyEquations checks r1 == g^s * y1^c and r2 == h^s * y2^c, written
// multiplicatively. Both equations are always evaluated.
func verifyEquations[E, S any](grp group[E, S], g, h, y1, y2, r1, r2 E, c, s S) bool {
	first := grp.equal(r1, grp.combine(grp.scale(g, s), grp.scale(y1, c)))
	second := grp.equal(r2, grp.combine(grp.scale(h, s), grp.scale(y2, c)))
	return first && second
}

package coefficients

// SphereDeltaFS computes the solution coefficients for a 3D spherical shell
// with delta forcing at radius rp and free-slip boundaries at r=Rm and
// r=Rp. Singular at l=0 (the 2l-1 and 2l+1 factors never vanish for
// integer l>=1).
func SphereDeltaFS(Rp, Rm, rp float64, l int, g, nu, sign float64) (cs Set) {
	var (
		alphaPM, alphaMP = branch(Rp/rp, Rm/rp, sign)
		pm               = sign
		fl               = float64(l)
	)
	cs.A = -0.5 * (pow(alphaMP, 2*l-1) - 1) * g * pm * pow(rp, -l+2) /
		((pow(alphaMP, 2*l-1) - pow(alphaPM, 2*l-1)) * (2*fl + 1) * (2*fl - 1) * nu)
	cs.B = -0.5 * (pow(alphaMP, -2*l-3) - 1) * g * pm * pow(rp, l+3) /
		((pow(alphaMP, -2*l-3) - pow(alphaPM, -2*l-3)) * (2*fl + 3) * (2*fl + 1) * nu)
	cs.C = 0.5 * (pow(alphaMP, 2*l+3) - 1) * g * pm /
		((pow(alphaMP, 2*l+3) - pow(alphaPM, 2*l+3)) * (2*fl + 3) * (2*fl + 1) * nu * pow(rp, l))
	cs.D = 0.5 * (pow(alphaMP, -2*l+1) - 1) * g * pm * pow(rp, l+1) /
		((pow(alphaMP, -2*l+1) - pow(alphaPM, -2*l+1)) * (2*fl + 1) * (2*fl - 1) * nu)
	return
}

// SphereDeltaNS is the zero-slip counterpart of SphereDeltaFS.
func SphereDeltaNS(Rp, Rm, rp float64, l int, g, nu, sign float64) (cs Set) {
	var (
		alphaP   = Rp / rp
		alphaM   = Rm / rp
		pm, mp   = sign, -sign
		pmi, mpi = int(sign), -int(sign)
		fl       = float64(l)
		ratio    = alphaM / alphaP
	)
	// shared characteristic denominator
	den := ((2*fl+1)*(2*fl+1)*(alphaM*alphaM/(alphaP*alphaP)+alphaP*alphaP/(alphaM*alphaM)) -
		2*(2*fl+3)*(2*fl-1) - 4*pow(ratio, 2*l+1) - 4*pow(ratio, -2*l-1)) * nu

	cs.A = -0.5 * (alphaM*alphaM - alphaP*alphaP -
		(2*fl+1)*mp*pow(ratio, 2*mpi)/(2*fl-1) - (2*fl+3)*pm/(2*fl+1) +
		2*(pow(alphaM, -2*l-1)-pow(alphaP, -2*l-1))/(2*fl+1) +
		2*(alphaM*alphaM*pow(alphaP, -2*l-1)-pow(alphaM, -2*l-1)*alphaP*alphaP)/(2*fl-1) -
		4*pm*pow(ratio, (2*l+1)*pmi)/((2*fl+1)*(2*fl-1))) *
		g * pow(rp, -l+2) / den
	cs.B = -0.5 * (alphaM*alphaM - alphaP*alphaP -
		(2*fl+1)*mp*pow(ratio, 2*mpi)/(2*fl+3) - (2*fl-1)*pm/(2*fl+1) -
		2*(alphaM*alphaM*pow(alphaP, 2*l+1)-pow(alphaM, 2*l+1)*alphaP*alphaP)/(2*fl+3) -
		2*(pow(alphaM, 2*l+1)-pow(alphaP, 2*l+1))/(2*fl+1) -
		4*pm*pow(ratio, (2*l+1)*mpi)/((2*fl+3)*(2*fl+1))) *
		g * pow(rp, l+3) / den
	cs.C = 0.5 * ((2*fl+1)*pm*pow(ratio, 2*pmi)/(2*fl+3) + (2*fl-1)*mp/(2*fl+1) -
		2*(pow(alphaM, -2*l-1)-pow(alphaP, -2*l-1))/(2*fl+1) +
		4*mp*pow(ratio, (2*l+1)*pmi)/((2*fl+3)*(2*fl+1)) +
		2*(pow(alphaM, -2*l-1)/(alphaP*alphaP)-pow(alphaP, -2*l-1)/(alphaM*alphaM))/(2*fl+3) +
		1/(alphaM*alphaM) - 1/(alphaP*alphaP)) *
		g / (den * pow(rp, l))
	cs.D = 0.5 * ((2*fl+1)*pm*pow(ratio, 2*pmi)/(2*fl-1) + (2*fl+3)*mp/(2*fl+1) +
		2*(pow(alphaM, 2*l+1)-pow(alphaP, 2*l+1))/(2*fl+1) +
		4*mp*pow(ratio, (2*l+1)*mpi)/((2*fl+1)*(2*fl-1)) -
		2*(pow(alphaM, 2*l+1)/(alphaP*alphaP)-pow(alphaP, 2*l+1)/(alphaM*alphaM))/(2*fl-1) +
		1/(alphaM*alphaM) - 1/(alphaP*alphaP)) *
		g * pow(rp, l+1) / den
	return
}

// SphereDeltaNSFS is the mixed variant: zero-slip at the outer shell r=Rp
// and free-slip at the inner shell r=Rm, with the anomaly at radius Rd.
// The dense numerators and denominators in explicit powers of all three
// radii are kept exactly as derived; only repeated powers are hoisted.
func SphereDeltaNSFS(Rp, Rm, Rd float64, l int, g, nu, sign float64) (cs Set) {
	var (
		fl = float64(l)
		// x0=X^l, x1=X^(-l-1), x2=X^(l+2), x3=X^(-l+1) for X in {Rm, Rp, Rd}
		m0, m1, m2, m3 = pow(Rm, l), pow(Rm, -l-1), pow(Rm, l+2), pow(Rm, -l+1)
		p0, p1, p2, p3 = pow(Rp, l), pow(Rp, -l-1), pow(Rp, l+2), pow(Rp, -l+1)
		d0, d1, d2, d3 = pow(Rd, l), pow(Rd, -l-1), pow(Rd, l+2), pow(Rd, -l+1)

		dProd = d0 * d1 * d2 * d3

		den1 = 8*m0*m1*p2*p3*fl*fl*fl - 8*m2*m3*p0*p1*fl*fl*fl +
			4*m0*m1*p2*p3*fl*fl + 8*m0*m2*p1*p3*fl*fl - 8*m1*m3*p0*p2*fl*fl - 4*m2*m3*p0*p1*fl*fl -
			2*m0*m1*p2*p3*fl + 2*m2*m3*p0*p1*fl -
			m0*m1*p2*p3 - 2*m0*m2*p1*p3 + 2*m1*m3*p0*p2 + m2*m3*p0*p1
		den2 = 4*m0*m1*p2*p3*fl*fl - 4*m2*m3*p0*p1*fl*fl +
			4*m0*m1*p2*p3*fl + 4*m0*m2*p1*p3*fl - 4*m1*m3*p0*p2*fl - 4*m2*m3*p0*p1*fl +
			m0*m1*p2*p3 + 2*m0*m2*p1*p3 - 2*m1*m3*p0*p2 - m2*m3*p0*p1
	)
	if sign > 0 {
		numA := 2*m0*m1*p2*p3*d1*d2*d3*fl + 2*m1*m3*p1*p2*d0*d2*d3*fl -
			2*m1*m3*p2*p3*d0*d1*d2*fl - 2*m2*m3*p1*p2*d0*d1*d3*fl +
			m0*m1*p2*p3*d1*d2*d3 + 2*m0*m2*p1*p3*d1*d2*d3 -
			m1*m3*p1*p2*d0*d2*d3 - m1*m3*p2*p3*d0*d1*d2 +
			m2*m3*p1*p2*d0*d1*d3 - 2*m2*m3*p1*p3*d0*d1*d2
		numB := 2*m0*m1*p2*p3*d0*d2*d3*fl + 2*m0*m2*p0*p3*d1*d2*d3*fl -
			2*m0*m2*p2*p3*d0*d1*d3*fl - 2*m2*m3*p0*p3*d0*d1*d2*fl +
			m0*m1*p2*p3*d0*d2*d3 + 3*m0*m2*p0*p3*d1*d2*d3 -
			m0*m2*p2*p3*d0*d1*d3 - 2*m1*m3*p0*p2*d0*d2*d3 +
			2*m2*m3*p0*p2*d0*d1*d3 - 3*m2*m3*p0*p3*d0*d1*d2
		numC := 2*m0*m1*p0*p3*d1*d2*d3*fl + 2*m1*m3*p0*p1*d0*d2*d3*fl -
			2*m1*m3*p0*p3*d0*d1*d2*fl - 2*m2*m3*p0*p1*d0*d1*d3*fl +
			3*m0*m1*p0*p3*d1*d2*d3 - 2*m0*m1*p1*p3*d0*d2*d3 +
			2*m0*m2*p1*p3*d0*d1*d3 + m1*m3*p0*p1*d0*d2*d3 -
			3*m1*m3*p0*p3*d0*d1*d2 - m2*m3*p0*p1*d0*d1*d3
		numD := 2*m0*m1*p1*p2*d0*d2*d3*fl + 2*m0*m2*p0*p1*d1*d2*d3*fl -
			2*m0*m2*p1*p2*d0*d1*d3*fl - 2*m2*m3*p0*p1*d0*d1*d2*fl +
			2*m0*m1*p0*p2*d1*d2*d3 - m0*m1*p1*p2*d0*d2*d3 +
			m0*m2*p0*p1*d1*d2*d3 + m0*m2*p1*p2*d0*d1*d3 -
			2*m1*m3*p0*p2*d0*d1*d2 - m2*m3*p0*p1*d0*d1*d2
		cs.A = -Rd * Rd * g * numA / (den1 * dProd * nu * 2)
		cs.B = -numB * g * Rd * Rd / (nu * dProd * den2 * (3 + 2*fl) * 2)
		cs.C = Rd * Rd * g * numC / (nu * dProd * den2 * (3 + 2*fl) * 2)
		cs.D = numD * g * Rd * Rd / (den1 * dProd * nu * 2)
		return
	}
	numAD := 2*m1*p1*p2*d0*d2*d3*fl - 2*m1*p2*p3*d0*d1*d2*fl +
		2*m2*p0*p1*d1*d2*d3*fl - 2*m2*p1*p2*d0*d1*d3*fl +
		2*m1*p0*p2*d1*d2*d3 - m1*p1*p2*d0*d2*d3 - m1*p2*p3*d0*d1*d2 +
		m2*p0*p1*d1*d2*d3 + m2*p1*p2*d0*d1*d3 - 2*m2*p1*p3*d0*d1*d2
	numBC := 2*m0*p0*p3*d1*d2*d3*fl - 2*m0*p2*p3*d0*d1*d3*fl +
		2*m3*p0*p1*d0*d2*d3*fl - 2*m3*p0*p3*d0*d1*d2*fl +
		3*m0*p0*p3*d1*d2*d3 - 2*m0*p1*p3*d0*d2*d3 - m0*p2*p3*d0*d1*d3 +
		m3*p0*p1*d0*d2*d3 + 2*m3*p0*p2*d0*d1*d3 - 3*m3*p0*p3*d0*d1*d2
	cs.A = -numAD * g * Rd * Rd * m3 / (den1 * dProd * nu * 2)
	cs.B = -m2 * numBC * g * Rd * Rd / (den2 * (3 + 2*fl) * dProd * nu * 2)
	cs.C = numBC * m1 * g * Rd * Rd / (den2 * (3 + 2*fl) * dProd * nu * 2)
	cs.D = numAD * m0 * g * Rd * Rd / (den1 * dProd * nu * 2)
	return
}

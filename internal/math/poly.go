package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit fits the given series of x and y into a polynomial function of the given degree
// out put is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("inconsistent dimensions x:%d vs y:%d", len(x), len(y))
	}
	if len(x) <= degree {
		return nil, fmt.Errorf("not enough points %d for degree %d", len(x), degree)
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("could not solve least squares: %w", err)
	}

	v := c.ColView(0)
	cc := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc, nil
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

// Line is the closed form least squares solution for y = w*x + b.
type Line struct {
	Weight float64
	Bias   float64
	R2     float64
}

// Reference computes the closed form line for the given observations.
// It is used as the target the gradient descent should approach.
func Reference(x, y []float64) (Line, error) {
	c, err := Fit(x, y, 1)
	if err != nil {
		return Line{}, err
	}
	// NOTE : stat uses the same ordering, intercept first
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return Line{
		Weight: c[1],
		Bias:   c[0],
		R2:     stat.RSquared(x, y, nil, alpha, beta),
	}, nil
}

// Gap returns the absolute distance of the given parameters from the line.
func (l Line) Gap(w, b float64) (float64, float64) {
	dw := w - l.Weight
	if dw < 0 {
		dw = -dw
	}
	db := b - l.Bias
	if db < 0 {
		db = -db
	}
	return dw, db
}

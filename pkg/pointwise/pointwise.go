// Package pointwise provides unweighted per-row regression losses over gonum
// vectors. These are the simple companions of the grouped ratio metrics in
// pkg/losses: no grouping, no masking, one scalar per pair of vectors.
package pointwise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// check validates a pair of vectors and returns their shared length.
func check(yTrue, yPred *mat.VecDense) (int, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, ErrEmptyVector
	}
	if yPred.Len() != n {
		return 0, fmt.Errorf("got %d and %d: %w", n, yPred.Len(), ErrDimensionMismatch)
	}
	return n, nil
}

// MAE computes the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := check(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// MSE computes the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := check(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAPE computes the mean absolute percentage error. Rows with a zero actual
// have no defined percentage error; when every actual is zero the result is
// NaN.
func MAPE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := check(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	var sum float64
	var count int
	for i := 0; i < n; i++ {
		actual := yTrue.AtVec(i)
		if actual == 0 {
			continue
		}
		sum += math.Abs((actual - yPred.AtVec(i)) / actual)
		count++
	}
	if count == 0 {
		return math.NaN(), nil
	}
	return sum / float64(count), nil
}

// SMAPE computes the symmetric mean absolute percentage error, scaled to
// [0, 1]. Rows where actual and forecast are both zero contribute zero.
func SMAPE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := check(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		actual := yTrue.AtVec(i)
		pred := yPred.AtVec(i)
		denom := math.Abs(actual) + math.Abs(pred)
		if denom == 0 {
			continue
		}
		sum += math.Abs(actual-pred) / denom
	}
	return sum / float64(n), nil
}

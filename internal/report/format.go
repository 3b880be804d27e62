package report

import (
	"fmt"

	"github.com/drakos74/linreg-bench/internal/model"
)

// FormatProgress formats an intermediate training state.
func FormatProgress(p model.Progress) string {
	return fmt.Sprintf("Epoch %d, MSE: %.4f, w: %.4f, b: %.4f", p.Epoch, p.Loss, p.Weight, p.Bias)
}

// FormatResult formats the trained parameters.
func FormatResult(result model.Result) string {
	return fmt.Sprintf("w ≈ %.6f, b ≈ %.6f", result.Weight, result.Bias)
}

// FormatDuration formats the execution time of the run.
func FormatDuration(result model.Result) string {
	return fmt.Sprintf("Total time: %.6f seconds", result.ExecutionTime)
}

// FormatPrediction formats the prediction of the trained line for x.
func FormatPrediction(result model.Result, x float64) string {
	return fmt.Sprintf("For x = %v, y_pred ≈ %.4f", x, result.Predict(x))
}

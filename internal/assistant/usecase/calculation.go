package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
)

var (
	percentageRe = regexp.MustCompile(`(\d+(?:\.\d+)?)%?\s*(?:percent of|of|from)\s*(\d+(?:\.\d+)?)`)
	arithmeticRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([\+\-\*\/\^]|plus|minus|times|divided by)\s*(\d+(?:\.\d+)?)`)
)

// handleCalculation tries the percentage arm, then the binary-arithmetic
// arm, and finally forwards the expression to the generative backend as a
// word problem. Division by zero is reported as text, never a panic.
func (uc *implUseCase) handleCalculation(ctx context.Context, expression string) assistant.CommandResult {
	if m := percentageRe.FindStringSubmatch(expression); m != nil {
		percent, _ := strconv.ParseFloat(m[1], 64)
		number, _ := strconv.ParseFloat(m[2], 64)
		result := percent / 100 * number
		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("%s%% of %s is %s", formatNumber(percent), formatNumber(number), formatNumber(result)),
			Action:  actionCalculation,
			Data: map[string]any{
				"expression": expression,
				"result":     result,
			},
		}
	}

	if m := arithmeticRe.FindStringSubmatch(expression); m != nil {
		a, _ := strconv.ParseFloat(m[1], 64)
		op := strings.ToLower(m[2])
		b, _ := strconv.ParseFloat(m[3], 64)

		var result any
		switch op {
		case "+", "plus":
			result = a + b
		case "-", "minus":
			result = a - b
		case "*", "times":
			result = a * b
		case "/", "divided by":
			if b == 0 {
				result = "Error: Division by zero"
			} else {
				result = a / b
			}
		case "^":
			result = math.Pow(a, b)
		}

		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("%s %s %s = %s", formatNumber(a), op, formatNumber(b), formatAny(result)),
			Action:  actionCalculation,
			Data: map[string]any{
				"expression": expression,
				"result":     result,
			},
		}
	}

	reply, err := uc.llm.GenerateText(ctx, fmt.Sprintf(calculationPrompt, expression))
	if err != nil {
		uc.l.Warnf(ctx, "handleCalculation: backend failed: %v", err)
		return assistant.CommandResult{
			Success: false,
			Message: fmt.Sprintf("Could not calculate: %v", err),
			Action:  actionCalculation,
		}
	}

	return assistant.CommandResult{
		Success: true,
		Message: reply,
		Action:  actionCalculation,
		Data: map[string]any{
			"expression": expression,
			"result":     reply,
		},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAny(v any) string {
	if f, ok := v.(float64); ok {
		return formatNumber(f)
	}
	return fmt.Sprintf("%v", v)
}

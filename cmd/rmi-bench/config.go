package main

import (
	"fmt"

	"github.com/BigDataAnalyticsGroup/rmi-go/bound"
	"github.com/BigDataAnalyticsGroup/rmi-go/rmi"
	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
	"github.com/spf13/cobra"
)

// configFromFlags reads the persistent submodel/bound-mode/layer2-size
// flags root.go declares into an rmi.Config, the way
// 4thel00z-memories/cmd/mem/get.go reads its own persistent flags directly
// off cmd.Flags() rather than through a separate config-file layer.
func configFromFlags(cmd *cobra.Command) (rmi.Config, error) {
	layer1Str, _ := cmd.Flags().GetString("layer1")
	layer2Str, _ := cmd.Flags().GetString("layer2")
	layer2Size, _ := cmd.Flags().GetInt("layer2-size")
	boundModeStr, _ := cmd.Flags().GetString("bound-mode")

	layer1Kind, err := parseSubmodelKind(layer1Str)
	if err != nil {
		return rmi.Config{}, fmt.Errorf("--layer1: %w", err)
	}
	layer2Kind, err := parseSubmodelKind(layer2Str)
	if err != nil {
		return rmi.Config{}, fmt.Errorf("--layer2: %w", err)
	}
	boundMode, err := parseBoundMode(boundModeStr)
	if err != nil {
		return rmi.Config{}, fmt.Errorf("--bound-mode: %w", err)
	}

	return rmi.NewConfig(
		rmi.WithLayer1Kind(layer1Kind),
		rmi.WithLayer2Kind(layer2Kind),
		rmi.WithLayer2Size(layer2Size),
		rmi.WithBoundMode(boundMode),
	), nil
}

func parseSubmodelKind(s string) (submodel.Kind, error) {
	switch s {
	case "linear_spline":
		return submodel.LinearSplineKind, nil
	case "linear_regression":
		return submodel.LinearRegressionKind, nil
	case "cubic_spline":
		return submodel.CubicSplineKind, nil
	case "radix":
		return submodel.RadixKind, nil
	default:
		return 0, fmt.Errorf("unknown submodel kind %q", s)
	}
}

func parseBoundMode(s string) (bound.Mode, error) {
	switch s {
	case "lind":
		return bound.LIND, nil
	case "labs":
		return bound.LABS, nil
	case "gind":
		return bound.GIND, nil
	case "gabs":
		return bound.GABS, nil
	case "nb":
		return bound.NB, nil
	default:
		return 0, fmt.Errorf("unknown bound mode %q", s)
	}
}

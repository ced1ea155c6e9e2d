// Package service contains the business logic for the rate service.
package service

import (
	"github.com/guttosm/rate-service/internal/domain/model"
)

// SplitIntoPackages partitions an order's shippable lines into physical
// packages and returns the package weights, in fill order.
//
// Lines without a product reference are skipped entirely. Only product,
// point-product and fixed lines contribute weight and quantity; other
// kinds may share a group but add nothing. When grouping by
// manufacturer, each distinct manufacturer id (including the empty id)
// forms its own group, processed in order of first appearance, and the
// per-package item cap is not applied. Otherwise all lines form a
// single group, capped at cfg.MaxItemsPerPackage items per package when
// that value is positive.
func SplitIntoPackages(lines []model.OrderLine, cfg model.PackagingConfig) []float64 {
	unbounded := cfg.Unbounded()
	maxItems := float64(cfg.MaxItemsPerPackage)

	weights := make([]float64, 0, 4)

	for _, group := range groupLines(lines, cfg.GroupByManufacturer) {
		var packageWeight, packageQty float64

		for _, line := range group {
			if !line.Kind.Shippable() {
				continue
			}

			overage := 0.0
			if !unbounded {
				overage = line.Quantity + packageQty - maxItems
				if overage < 0 {
					overage = 0
				}
			}
			fitting := line.Quantity - overage

			packageQty += fitting
			packageWeight += line.Product.Weight * fitting

			if !unbounded && packageQty == maxItems {
				weights = append(weights, packageWeight)

				for overage >= maxItems {
					overage -= maxItems
					weights = append(weights, line.Product.Weight*maxItems)
				}

				if overage > 0 {
					packageQty = overage
					// The reopened package is seeded from the fitted
					// quantity's weight, not the overage's; carrier
					// billing reconciliation depends on this exact
					// figure.
					packageWeight = line.Product.Weight * fitting
				} else {
					packageQty = 0
					packageWeight = 0
				}
			}
		}

		if packageWeight > 0 {
			weights = append(weights, packageWeight)
		}
	}

	return weights
}

// groupLines splits the packageable lines into groups, preserving the
// order of first appearance of each group key.
func groupLines(lines []model.OrderLine, byManufacturer bool) [][]model.OrderLine {
	var (
		order  []string
		groups = make(map[string][]model.OrderLine)
	)

	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		key := ""
		if byManufacturer {
			key = line.Product.ManufacturerID
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], line)
	}

	result := make([][]model.OrderLine, 0, len(order))
	for _, key := range order {
		result = append(result, groups[key])
	}
	return result
}

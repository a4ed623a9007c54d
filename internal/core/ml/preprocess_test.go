package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"churn-prediction-service/internal/core/domain"
)

func testFrame() *domain.Frame {
	f := domain.NewFrame([]string{
		"customerID", "tenure", "MonthlyCharges", "TotalCharges",
		"OnlineSecurity", "Partner", "MultipleLines",
	})
	f.Rows = [][]string{
		{"A-1", "0", "50", " ", "No internet service", "Yes", "No phone service"},
		{"A-2", "13", "80", "1040", "Yes", "No", "Yes"},
		{"A-3", "70", "20", "1400", "No", "No", "No"},
	}
	return f
}

func TestPreprocess_TotalChargesCoercion(t *testing.T) {
	out := Preprocess(testFrame())

	assert.Equal(t, "0", out.Value(0, "TotalCharges"))
	assert.Equal(t, "1040", out.Value(1, "TotalCharges"))
}

func TestPreprocess_CollapseAndBinary(t *testing.T) {
	out := Preprocess(testFrame())

	// "No internet service" collapses to No, then encodes to 0
	assert.Equal(t, "0", out.Value(0, "OnlineSecurity"))
	assert.Equal(t, "1", out.Value(1, "OnlineSecurity"))
	assert.Equal(t, "0", out.Value(0, "MultipleLines"))
	assert.Equal(t, "1", out.Value(0, "Partner"))
	assert.Equal(t, "0", out.Value(1, "Partner"))
}

func TestPreprocess_DerivedFeatures(t *testing.T) {
	out := Preprocess(testFrame())

	assert.True(t, out.HasColumn("TotalSpend"))
	assert.True(t, out.HasColumn("AvgChargesPerMonth"))
	assert.True(t, out.HasColumn("tenure_group"))

	// TotalSpend = MonthlyCharges * tenure
	assert.Equal(t, "0", out.Value(0, "TotalSpend"))
	assert.Equal(t, "1040", out.Value(1, "TotalSpend"))

	// tenure 0 divides by 1, not 0
	assert.Equal(t, "0", out.Value(0, "AvgChargesPerMonth"))
	assert.Equal(t, "80", out.Value(1, "AvgChargesPerMonth"))
	assert.Equal(t, "20", out.Value(2, "AvgChargesPerMonth"))
}

func TestPreprocess_DoesNotMutateInput(t *testing.T) {
	in := testFrame()
	_ = Preprocess(in)

	assert.Equal(t, "No internet service", in.Value(0, "OnlineSecurity"))
	assert.False(t, in.HasColumn("tenure_group"))
}

func TestTenureGroup(t *testing.T) {
	cases := []struct {
		tenure float64
		group  string
	}{
		{0, "0-12"},
		{12, "0-12"},
		{13, "13-24"},
		{24, "13-24"},
		{25, "25-48"},
		{48, "25-48"},
		{49, "49-60"},
		{60, "49-60"},
		{61, "61+"},
		{72, "61+"},
	}
	for _, c := range cases {
		assert.Equal(t, c.group, tenureGroup(c.tenure), "tenure %v", c.tenure)
	}
}

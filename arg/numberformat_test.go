package arg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgIntDecimal(t *testing.T) {
	got := ArgInt("n=%1", 42, IntOptions{})
	assert.Equal(t, "n=42", got)
}

func TestArgIntNegative(t *testing.T) {
	got := ArgInt("n=%1", -7, IntOptions{})
	assert.Equal(t, "n=-7", got)
}

func TestArgIntForceSign(t *testing.T) {
	got := ArgInt("n=%1", 7, IntOptions{ForceSign: true})
	assert.Equal(t, "n=+7", got)
}

func TestArgIntHexBase(t *testing.T) {
	got := ArgInt("n=%1", 255, IntOptions{Base: 16})
	assert.Equal(t, "n=ff", got)
}

func TestArgIntZeroPad(t *testing.T) {
	got := ArgInt("n=%1", 7, IntOptions{ZeroPad: true, FieldWidth: 4})
	assert.Equal(t, "n=0007", got)
}

func TestArgIntZeroPadWithSign(t *testing.T) {
	got := ArgInt("n=%1", -7, IntOptions{ZeroPad: true, FieldWidth: 4})
	assert.Equal(t, "n=-007", got)
}

func TestArgIntGrouping(t *testing.T) {
	got := ArgInt("n=%1", 1234567, IntOptions{Group: true})
	assert.Equal(t, "n=1,234,567", got)
}

func TestArgIntBlankSign(t *testing.T) {
	got := ArgInt("n=%1", 7, IntOptions{BlankSign: true})
	assert.Equal(t, "n= 7", got)
}

func TestArgIntCapitalHex(t *testing.T) {
	got := ArgInt("n=%1", 255, IntOptions{Base: 16, Capital: true})
	assert.Equal(t, "n=FF", got)
}

func TestArgDoubleFixed(t *testing.T) {
	got := ArgDouble("x=%1", 3.14159, DoubleOptions{Format: DFDecimal, Precision: 2})
	assert.Equal(t, "x=3.14", got)
}

func TestArgDoubleExponent(t *testing.T) {
	got := ArgDouble("x=%1", 150.0, DoubleOptions{Format: DFExponent, Precision: 1})
	assert.Equal(t, "x=1.5e+02", got)
}

func TestArgDoubleZeroPadExponent(t *testing.T) {
	got := ArgDouble("x=%1", 150.0, DoubleOptions{Format: DFExponent, Precision: 1, ZeroPadExponent: true})
	assert.Equal(t, "x=1.5e+02", got)
}

func TestArgDoubleBlankSign(t *testing.T) {
	got := ArgDouble("x=%1", 3.5, DoubleOptions{Format: DFDecimal, Precision: 1, BlankSign: true})
	assert.Equal(t, "x= 3.5", got)
}

func TestArgDoubleCapitalExponent(t *testing.T) {
	got := ArgDouble("x=%1", 150.0, DoubleOptions{Format: DFExponent, Precision: 1, Capital: true})
	assert.Equal(t, "x=1.5E+02", got)
}

func TestArgDoubleCapitalSignificantDigits(t *testing.T) {
	got := ArgDouble("x=%1", 150000.0, DoubleOptions{Format: DFSignificantDigits, Precision: 3, Capital: true})
	assert.Equal(t, "x=1.5E+05", got)
}

func TestZeroPadExponentWidensSingleDigit(t *testing.T) {
	assert.Equal(t, "1e+05", zeroPadExponent("1e+5"))
	assert.Equal(t, "1e+05", zeroPadExponent("1e+05"))
	assert.Equal(t, "1e-05", zeroPadExponent("1e-5"))
}

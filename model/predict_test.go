package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	p := PredictInfo{HeightCM: 170, WeightKG: 65}
	assert.InDelta(t, 22.5, p.BMI(), 0.01)

	// 身高体重缺失时不计算
	assert.Zero(t, PredictInfo{WeightKG: 65}.BMI())
	assert.Zero(t, PredictInfo{HeightCM: 170}.BMI())
}

func TestBMICategories(t *testing.T) {
	assert.Equal(t, "体重过轻", BMICategory(17.0))
	assert.Equal(t, "健康体重", BMICategory(22.4))
	assert.Equal(t, "体重超重", BMICategory(25.0))
	assert.Equal(t, "体重肥胖", BMICategory(30.0))
}

func TestBMIProgressBand(t *testing.T) {
	assert.Equal(t, 10, BMIProgressPercent(17.0))
	assert.Equal(t, 50, BMIProgressPercent(20.0))
	assert.Equal(t, 75, BMIProgressPercent(25.0))
	assert.Equal(t, 90, BMIProgressPercent(30.0))
}

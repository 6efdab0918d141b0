// internals/features/students/service/student_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	// 150cm 45kg → 45 / 1.5^2 = 20
	assert.Equal(t, 20.0, BMI(150, 45))
	// pembulatan 2 desimal
	assert.Equal(t, 19.95, BMI(160, 51.08))
	// tinggi 0 tidak boleh membagi nol
	assert.Equal(t, 0.0, BMI(0, 45))
}

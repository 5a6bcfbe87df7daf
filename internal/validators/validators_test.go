package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Secret1!"))
	assert.True(t, IsStrongPassword("Tr4iner#2024"))

	assert.False(t, IsStrongPassword("Sec1!"), "too short")
	assert.False(t, IsStrongPassword("secret1!"), "no uppercase")
	assert.False(t, IsStrongPassword("Secret!!"), "no digit")
	assert.False(t, IsStrongPassword("Secret12"), "no special")
}

func TestIsHHMM(t *testing.T) {
	assert.True(t, IsHHMM("00:00"))
	assert.True(t, IsHHMM("09:30"))
	assert.True(t, IsHHMM("23:59"))

	assert.False(t, IsHHMM("9:30"))
	assert.False(t, IsHHMM("24:00"))
	assert.False(t, IsHHMM("12:60"))
	assert.False(t, IsHHMM("09:30:00"))
	assert.False(t, IsHHMM(""))
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday("monday"))
	assert.True(t, IsWeekday("sunday"))
	assert.False(t, IsWeekday("Monday"))
	assert.False(t, IsWeekday("lunes"))
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
}

func TestRegisterBindings(t *testing.T) {
	require.NoError(t, RegisterBindings())

	type req struct {
		Start string `binding:"required,hhmm"`
		Day   string `binding:"required,weekday"`
		Pass  string `binding:"required,password"`
	}

	assert.NoError(t, binding.Validator.ValidateStruct(req{Start: "10:00", Day: "friday", Pass: "Secret1!"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Start: "10", Day: "friday", Pass: "Secret1!"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Start: "10:00", Day: "fri", Pass: "Secret1!"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Start: "10:00", Day: "friday", Pass: "weak"}))
}

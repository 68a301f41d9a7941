package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alowish/internal/profile"
)

func TestSystemInstructionWithoutProfile(t *testing.T) {
	s := systemInstruction(nil)
	assert.Contains(t, s, "You are Alowish")
	assert.NotContains(t, s, "USER CONTEXT")
}

func TestSystemInstructionWithProfile(t *testing.T) {
	s := systemInstruction(&profile.Profile{
		Name:    "Asha",
		Work:    "Architect",
		Hobbies: "cricket, cooking",
		EmergencyContacts: []profile.EmergencyContact{
			{Name: "Ravi", Number: "9876543210"},
			{Name: "Meena", Number: "9123456780"},
		},
	})
	assert.Contains(t, s, "You are speaking to **Asha**")
	assert.Contains(t, s, "Architect")
	assert.Contains(t, s, "Ravi, Meena")
}

func TestSystemInstructionNoContactsFallback(t *testing.T) {
	s := systemInstruction(&profile.Profile{Name: "Asha"})
	assert.True(t, strings.Contains(s, "None set"))
}

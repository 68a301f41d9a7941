package intent

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteDeterministic(t *testing.T) {
	for _, text := range []string{"flashlight on", "10 km to miles", "kuch bhi"} {
		first := Route(text)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Route(text))
		}
	}
}

func TestEmergencyWinsOverFlashlight(t *testing.T) {
	resp := Route("help, flashlight on")
	require.NotNil(t, resp.Action)
	assert.Equal(t, TriggerSOS, resp.Action.Type)
}

func TestEmergencyKeywords(t *testing.T) {
	for _, text := range []string{"SOS", "save me", "bachao", "there is danger", "emergency!"} {
		resp := Route(text)
		require.NotNil(t, resp.Action, text)
		assert.Equal(t, TriggerSOS, resp.Action.Type, text)
	}
}

func TestFlashlight(t *testing.T) {
	on := Route("turn the flashlight on")
	require.NotNil(t, on.Action)
	assert.Equal(t, ToggleFlashlight, on.Action.Type)
	assert.True(t, on.Action.Value)

	off := Route("torch band karo")
	require.NotNil(t, off.Action)
	assert.Equal(t, ToggleFlashlight, off.Action.Type)
	assert.False(t, off.Action.Value)

	// bare keyword with no on/off falls through to the default reply
	bare := Route("flashlight")
	assert.Nil(t, bare.Action)
}

func TestMusic(t *testing.T) {
	play := Route("gaana chalao")
	require.NotNil(t, play.Action)
	assert.Equal(t, PlayMusic, play.Action.Type)

	pause := Route("music pause karo")
	require.NotNil(t, pause.Action)
	assert.Equal(t, PauseMusic, pause.Action.Type)
}

func TestScan(t *testing.T) {
	resp := Route("scan this label")
	require.NotNil(t, resp.Action)
	assert.Equal(t, OpenCamera, resp.Action.Type)
}

func TestTranslate(t *testing.T) {
	hit := Route("translate thank you")
	assert.Contains(t, hit.Text, "dhanyavaad")
	assert.Nil(t, hit.Action)

	rev := Route("paani ka matlab?")
	assert.Contains(t, rev.Text, "water")

	miss := Route("translate serendipity")
	assert.Contains(t, miss.Text, "offline dictionary")
	assert.Contains(t, miss.Text, "serendipity")
}

func TestDictionaryIsBidirectional(t *testing.T) {
	for _, p := range phrasePairs {
		assert.Equal(t, p[1], dictionary[p[0]], p[0])
		assert.Equal(t, p[0], dictionary[p[1]], p[1])
	}
}

func TestEMI(t *testing.T) {
	resp := Route("calculate emi for 500000 at 8 for 5 years")

	r := 8.0 / 1200
	n := 60.0
	want := 500000 * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)

	assert.Contains(t, resp.Text, "₹5,00,000.00")
	assert.Contains(t, resp.Text, "Rate: 8%")
	assert.Contains(t, resp.Text, "Time: 5 yrs")
	assert.Contains(t, resp.Text, formatINR(want))
}

func TestEMIUsagePrompt(t *testing.T) {
	resp := Route("calculate emi for 500000")
	assert.Contains(t, resp.Text, "Amount, Rate aur Time")
}

func TestConversions(t *testing.T) {
	assert.Contains(t, Route("10 km to miles").Text, "6.21")
	assert.Contains(t, Route("5 kg to lbs").Text, "11.02")
	assert.Contains(t, Route("100 c to f").Text, "212.0")
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, "Result: 70", Route("calculate 50 + 20").Text)
	assert.Equal(t, "Result: 16", Route("10+2*3").Text)
}

func TestArithmeticSafety(t *testing.T) {
	resp := Route("calculate 10 + alert('x')")
	assert.False(t, strings.HasPrefix(resp.Text, "Result:"))
	assert.Nil(t, resp.Action)
}

func TestArithmeticStripsTriggerOnce(t *testing.T) {
	// a repeated trigger word stays in the expression and fails the
	// whitelist instead of being evaluated
	resp := Route("calculate calculate 1 + 1")
	assert.False(t, strings.HasPrefix(resp.Text, "Result:"))
}

func TestPercentage(t *testing.T) {
	assert.Contains(t, Route("20% of 500").Text, "100")
	assert.Contains(t, Route("500 ka 20%").Text, "100")
}

func TestOnlineOnlyTopics(t *testing.T) {
	resp := Route("what's the weather today")
	assert.Contains(t, resp.Text, "internet nahi hai")
}

func TestDefaultFallback(t *testing.T) {
	resp := Route("tell me a story")
	assert.Contains(t, resp.Text, "Main offline hoon")
	assert.Nil(t, resp.Action)
}

func TestFormatINR(t *testing.T) {
	cases := map[float64]string{
		500:      "₹500.00",
		5000:     "₹5,000.00",
		500000:   "₹5,00,000.00",
		12345678: "₹1,23,45,678.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatINR(in), fmt.Sprint(in))
	}
}
